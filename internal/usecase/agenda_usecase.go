package usecase

import (
	"context"
	"log"
	"net/url"
	"sort"
	"strings"

	"estoque_gelb/internal/domain/entities"
	"estoque_gelb/internal/usecase/interfaces"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// RouteNamePrefix marks the route names the warehouse actually operates.
// Anything VMpay returns without it is noise from other teams' routes.
const RouteNamePrefix = "ROTA "

// IAgendaUseCase resolves the canonical set of routes active in a date
// window.
type IAgendaUseCase interface {
	ListRoutes(ctx context.Context, startDate, endDate string) ([]entities.Route, error)
}

// AgendaUseCase cross-references scheduled visits (authoritative for which
// routes are active) with the route catalog and with route names observed on
// pending picklists (advisory, used when the catalog entry has no usable
// name).
type AgendaUseCase struct {
	vmpay interfaces.IVMPayClient
}

var _ IAgendaUseCase = (*AgendaUseCase)(nil)

func NewAgendaUseCase(vmpay interfaces.IVMPayClient) *AgendaUseCase {
	return &AgendaUseCase{vmpay: vmpay}
}

func (u *AgendaUseCase) ListRoutes(ctx context.Context, startDate, endDate string) ([]entities.Route, error) {
	candidates := u.pendingRouteNames(ctx, startDate, endDate)

	raw, err := u.vmpay.Get(ctx, "scheduled_visits", url.Values{
		"start_date": {startDate},
		"end_date":   {endDate},
		"include":    {"routes"},
	})
	if err != nil {
		return nil, err
	}

	ids := distinctRouteIDs(asList(raw))
	routes := make([]entities.Route, 0, len(ids))
	for _, id := range ids {
		routes = append(routes, entities.Route{ID: id, Name: u.resolveRouteName(ctx, id, candidates)})
	}

	// pt-BR collation: the app shows this list verbatim and operators expect
	// accent-aware, case-insensitive ordering.
	col := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
	sort.SliceStable(routes, func(i, j int) bool {
		return col.CompareString(routes[i].Name, routes[j].Name) < 0
	})
	return routes, nil
}

// pendingRouteNames is the advisory first pass: route names seen on pending
// picklists, kept only when they carry the prefix. Any failure here is
// swallowed; the resolution proceeds without candidates.
func (u *AgendaUseCase) pendingRouteNames(ctx context.Context, startDate, endDate string) []string {
	raw, err := u.vmpay.Get(ctx, "pick_lists", url.Values{
		"status":     {"pending"},
		"start_date": {startDate},
		"end_date":   {endDate},
		"include":    {"routes"},
	})
	if err != nil {
		log.Printf("[agenda][usecase] candidate-name pass skipped: %v", err)
		return nil
	}

	var names []string
	seen := map[string]bool{}
	for _, rec := range asList(raw) {
		for _, route := range embeddedRoutes(asMap(rec)) {
			name := strValue(route["name"])
			if strings.HasPrefix(name, RouteNamePrefix) && !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

// resolveRouteName looks the route up in the catalog. A per-route failure
// never fails the whole resolution, it degrades straight to the generated
// label; candidate substitution only applies when the catalog answered but
// the name lacks the prefix.
func (u *AgendaUseCase) resolveRouteName(ctx context.Context, id string, candidates []string) string {
	raw, err := u.vmpay.Get(ctx, "routes/"+id, nil)
	if err != nil {
		log.Printf("[agenda][usecase] route lookup failed id=%s err=%v", id, err)
		return "Rota " + id
	}
	if name := strValue(asMap(raw)["name"]); strings.HasPrefix(name, RouteNamePrefix) {
		return name
	}
	if len(candidates) > 0 {
		return candidates[0]
	}
	return "Rota " + id
}

func distinctRouteIDs(visits []any) []string {
	var ids []string
	seen := map[string]bool{}
	for _, v := range visits {
		for _, route := range embeddedRoutes(asMap(v)) {
			if id := strValue(route["id"]); id != "" && !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids
}
