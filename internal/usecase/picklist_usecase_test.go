package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	mock_interfaces "estoque_gelb/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func pendingPicklist(id, name, machineID string, routeIDs ...string) map[string]any {
	routes := make([]any, 0, len(routeIDs))
	for _, rid := range routeIDs {
		routes = append(routes, map[string]any{"id": json.Number(rid)})
	}
	p := map[string]any{"id": json.Number(id), "routes": routes}
	if name != "" {
		p["name"] = name
	}
	if machineID != "" {
		p["machine_id"] = json.Number(machineID)
	}
	return p
}

func TestPicklistUseCase_ListByRoute(t *testing.T) {
	t.Run("empty route id short-circuits with zero upstream calls", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vm := mock_interfaces.NewMockIVMPayClient(ctrl)
		uc := NewPicklistUseCase(vm)

		picklists, err := uc.ListByRoute(context.Background(), "", "2024-05-01", "2024-05-02")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(picklists) != 0 {
			t.Fatalf("expected empty result, got %d", len(picklists))
		}
	})

	t.Run("keeps only picklists serving the route, in upstream order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vm := mock_interfaces.NewMockIVMPayClient(ctrl)
		uc := NewPicklistUseCase(vm)

		vm.EXPECT().Get(gomock.Any(), "pick_lists", gomock.Any()).Return(any([]any{
			pendingPicklist("10", "Reposição manhã", "", "5"),
			pendingPicklist("11", "Outra rota", "", "6"),
			pendingPicklist("12", "Reposição tarde", "", "6", "5"),
		}), nil)
		vm.EXPECT().Get(gomock.Any(), "machines", gomock.Nil()).Return(any([]any{}), nil)

		picklists, err := uc.ListByRoute(context.Background(), "5", "2024-05-01", "2024-05-02")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(picklists) != 2 || picklists[0].ID != "10" || picklists[1].ID != "12" {
			t.Fatalf("unexpected picklists: %+v", picklists)
		}
	})

	t.Run("label falls back to the linked machine asset tag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vm := mock_interfaces.NewMockIVMPayClient(ctrl)
		uc := NewPicklistUseCase(vm)

		vm.EXPECT().Get(gomock.Any(), "pick_lists", gomock.Any()).Return(any([]any{
			pendingPicklist("10", "", "77", "5"),
		}), nil)
		vm.EXPECT().Get(gomock.Any(), "machines", gomock.Nil()).Return(any([]any{
			map[string]any{"id": json.Number("77"), "asset_number": "VM-0077"},
		}), nil)

		picklists, err := uc.ListByRoute(context.Background(), "5", "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if picklists[0].Nome != "VM-0077" {
			t.Fatalf("expected machine asset tag, got %q", picklists[0].Nome)
		}
	})

	t.Run("machine catalog failure degrades to generated label", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vm := mock_interfaces.NewMockIVMPayClient(ctrl)
		uc := NewPicklistUseCase(vm)

		vm.EXPECT().Get(gomock.Any(), "pick_lists", gomock.Any()).Return(any([]any{
			pendingPicklist("10", "", "77", "5"),
		}), nil)
		vm.EXPECT().Get(gomock.Any(), "machines", gomock.Nil()).Return(nil, errors.New("boom"))

		picklists, err := uc.ListByRoute(context.Background(), "5", "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if picklists[0].Nome != "Picklist 10" {
			t.Fatalf("expected generated label, got %q", picklists[0].Nome)
		}
	})

	t.Run("own asset tag beats the generated label", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vm := mock_interfaces.NewMockIVMPayClient(ctrl)
		uc := NewPicklistUseCase(vm)

		p := pendingPicklist("10", "", "", "5")
		p["asset_number"] = "VM-0123"
		vm.EXPECT().Get(gomock.Any(), "pick_lists", gomock.Any()).Return(any([]any{p}), nil)
		vm.EXPECT().Get(gomock.Any(), "machines", gomock.Nil()).Return(any([]any{}), nil)

		picklists, err := uc.ListByRoute(context.Background(), "5", "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if picklists[0].Nome != "VM-0123" {
			t.Fatalf("expected own asset tag, got %q", picklists[0].Nome)
		}
	})

	t.Run("pending fetch failure propagates for the handler to swallow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vm := mock_interfaces.NewMockIVMPayClient(ctrl)
		uc := NewPicklistUseCase(vm)

		vm.EXPECT().Get(gomock.Any(), "pick_lists", gomock.Any()).Return(nil, errors.New("boom"))

		if _, err := uc.ListByRoute(context.Background(), "5", "", ""); err == nil {
			t.Fatalf("expected error")
		}
	})
}
