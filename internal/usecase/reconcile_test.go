package usecase

import (
	"encoding/json"
	"testing"
)

func TestFirstNonEmpty(t *testing.T) {
	t.Run("first non-blank candidate wins", func(t *testing.T) {
		got := FirstNonEmpty([]any{"", nil, "  ", "x", "y"}, "Z")
		if got != "x" {
			t.Fatalf("expected %q, got %q", "x", got)
		}
	})

	t.Run("all empty falls back", func(t *testing.T) {
		got := FirstNonEmpty([]any{"", nil, "   "}, "Z")
		if got != "Z" {
			t.Fatalf("expected fallback, got %q", got)
		}
	})

	t.Run("empty candidate list falls back", func(t *testing.T) {
		if got := FirstNonEmpty(nil, "Z"); got != "Z" {
			t.Fatalf("expected fallback, got %q", got)
		}
	})

	t.Run("json numbers stringify losslessly", func(t *testing.T) {
		got := FirstNonEmpty([]any{nil, json.Number("9007199254740993")}, "")
		if got != "9007199254740993" {
			t.Fatalf("expected exact number string, got %q", got)
		}
	})
}

func TestAsList(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		if got := asList([]any{1, 2}); len(got) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(got))
		}
	})

	t.Run("data wrapper", func(t *testing.T) {
		raw := map[string]any{"data": []any{"a"}}
		if got := asList(raw); len(got) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(got))
		}
	})

	t.Run("anything else is nil", func(t *testing.T) {
		if got := asList("nope"); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})
}

func TestEmbeddedRoutes(t *testing.T) {
	t.Run("routes array", func(t *testing.T) {
		rec := map[string]any{"routes": []any{
			map[string]any{"id": json.Number("7")},
			map[string]any{"id": json.Number("8")},
		}}
		if got := embeddedRoutes(rec); len(got) != 2 {
			t.Fatalf("expected 2 routes, got %d", len(got))
		}
	})

	t.Run("single route object", func(t *testing.T) {
		rec := map[string]any{"route": map[string]any{"id": json.Number("7")}}
		got := embeddedRoutes(rec)
		if len(got) != 1 || strValue(got[0]["id"]) != "7" {
			t.Fatalf("unexpected routes: %v", got)
		}
	})

	t.Run("bare route_id", func(t *testing.T) {
		rec := map[string]any{"route_id": json.Number("12")}
		got := embeddedRoutes(rec)
		if len(got) != 1 || strValue(got[0]["id"]) != "12" {
			t.Fatalf("unexpected routes: %v", got)
		}
	})
}
