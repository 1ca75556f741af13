package usecase

import (
	"context"
	"log"
	"net/url"

	"estoque_gelb/internal/domain/entities"
	"estoque_gelb/internal/usecase/interfaces"
)

// IPicklistUseCase resolves the pending picklists of a route in a date
// window.
type IPicklistUseCase interface {
	ListByRoute(ctx context.Context, routeID, startDate, endDate string) ([]entities.Picklist, error)
}

type PicklistUseCase struct {
	vmpay interfaces.IVMPayClient
}

var _ IPicklistUseCase = (*PicklistUseCase)(nil)

func NewPicklistUseCase(vmpay interfaces.IVMPayClient) *PicklistUseCase {
	return &PicklistUseCase{vmpay: vmpay}
}

// ListByRoute keeps the picklists whose embedded routes include routeID and
// reconciles each display label. Output order follows the upstream pending
// feed; the app relies on that.
func (u *PicklistUseCase) ListByRoute(ctx context.Context, routeID, startDate, endDate string) ([]entities.Picklist, error) {
	if routeID == "" {
		return []entities.Picklist{}, nil
	}

	raw, err := u.vmpay.Get(ctx, "pick_lists", url.Values{
		"status":     {"pending"},
		"start_date": {startDate},
		"end_date":   {endDate},
		"include":    {"routes"},
	})
	if err != nil {
		return nil, err
	}

	assetTags := u.machineAssetTags(ctx)

	picklists := make([]entities.Picklist, 0)
	for _, rec := range asList(raw) {
		p := asMap(rec)
		if !servesRoute(p, routeID) {
			continue
		}
		id := strValue(p["id"])
		if id == "" {
			continue
		}
		picklists = append(picklists, entities.Picklist{
			ID: id,
			Nome: FirstNonEmpty([]any{
				p["name"],
				assetTags[strValue(p["machine_id"])],
				p["machine_asset_number"],
				p["asset_number"],
			}, "Picklist "+id),
		})
	}
	return picklists, nil
}

// machineAssetTags fetches the machine catalog keyed by machine id. Best
// effort: a failure yields an empty catalog and the label chain moves on to
// the picklist's own fields.
func (u *PicklistUseCase) machineAssetTags(ctx context.Context) map[string]string {
	raw, err := u.vmpay.Get(ctx, "machines", nil)
	if err != nil {
		log.Printf("[picklist][usecase] machine catalog skipped: %v", err)
		return map[string]string{}
	}

	tags := map[string]string{}
	for _, rec := range asList(raw) {
		m := asMap(rec)
		id := strValue(m["id"])
		if id == "" {
			continue
		}
		if tag := FirstNonEmpty([]any{m["asset_number"], m["asset_tag"]}, ""); tag != "" {
			tags[id] = tag
		}
	}
	return tags
}

func servesRoute(picklist map[string]any, routeID string) bool {
	for _, route := range embeddedRoutes(picklist) {
		if strValue(route["id"]) == routeID {
			return true
		}
	}
	return false
}
