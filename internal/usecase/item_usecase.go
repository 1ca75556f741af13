package usecase

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"estoque_gelb/internal/domain/entities"
	"estoque_gelb/internal/usecase/interfaces"
	"estoque_gelb/pkg"
)

const itemsPageSize = 100

// IItemUseCase aggregates the line items of a picklist.
type IItemUseCase interface {
	ListByPicklist(ctx context.Context, picklistID string) ([]entities.Item, error)
}

// ItemUseCase pages through pick_list_items sequentially and projects each
// line's planogram_item/good/planogram nesting into a canonical Item.
//
// Unlike the other resolvers this one is strict: a VMpay 404 means "picklist
// not there" and yields an empty result, but any other failure surfaces to
// the caller.
type ItemUseCase struct {
	vmpay interfaces.IVMPayClient
	now   func() time.Time
}

var _ IItemUseCase = (*ItemUseCase)(nil)

func NewItemUseCase(vmpay interfaces.IVMPayClient) *ItemUseCase {
	return &ItemUseCase{vmpay: vmpay, now: time.Now}
}

func (u *ItemUseCase) ListByPicklist(ctx context.Context, picklistID string) ([]entities.Item, error) {
	if picklistID == "" {
		return []entities.Item{}, nil
	}

	detail, err := u.vmpay.Get(ctx, "pick_lists/"+url.PathEscape(picklistID), nil)
	if err != nil {
		if pkg.IsUpstreamNotFound(err) {
			return []entities.Item{}, nil
		}
		return nil, err
	}

	det := asMap(detail)
	start := strValue(det["created_at"])
	end := u.windowEnd(start, strValue(det["updated_at"]))

	items := make([]entities.Item, 0)
	for page := 1; ; page++ {
		raw, err := u.vmpay.Get(ctx, "pick_list_items", url.Values{
			"pick_list_id": {picklistID},
			"start_date":   {start},
			"end_date":     {end},
			"include":      {"planogram_item.planogram,planogram_item.good"},
			"page":         {strconv.Itoa(page)},
			"per_page":     {strconv.Itoa(itemsPageSize)},
		})
		if err != nil {
			if pkg.IsUpstreamNotFound(err) {
				return []entities.Item{}, nil
			}
			return nil, err
		}

		recs := asList(raw)
		for _, rec := range recs {
			if item, ok := projectItem(asMap(rec)); ok {
				items = append(items, item)
			}
		}
		if len(recs) < itemsPageSize {
			break
		}
	}
	return items, nil
}

// windowEnd computes the end of the line-item fetch window. The upstream
// range filter is half-open, so when the picklist was updated after creation
// the window must extend one second past the update timestamp to keep
// boundary updates in.
func (u *ItemUseCase) windowEnd(created, updated string) string {
	if updated != "" && updated != created {
		if t, err := time.Parse(time.RFC3339, updated); err == nil {
			return t.Add(time.Second).UTC().Format(time.RFC3339)
		}
	}
	return u.now().UTC().Format(time.RFC3339)
}

func projectItem(rec map[string]any) (entities.Item, bool) {
	pl := asMap(rec["planogram_item"])
	good := asMap(pl["good"])
	planogram := asMap(pl["planogram"])

	quantity := numValue(pl["quantity"])
	if quantity <= 0 {
		return entities.Item{}, false
	}
	return entities.Item{
		ID:         strValue(pl["id"]),
		Canaleta:   FirstNonEmpty([]any{planogram["slot"], planogram["code"]}, "-"),
		EAN:        strValue(good["barcode"]),
		Descricao:  strValue(good["name"]),
		Quantidade: int(quantity),
		ImageURL:   strValue(good["image"]),
	}, true
}
