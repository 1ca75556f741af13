package usecase

import (
	"encoding/json"
	"strconv"
	"strings"
)

// VMpay names equivalent fields inconsistently across resource versions, so
// every canonical projection goes through FirstNonEmpty: the first candidate
// whose string form is non-empty after trimming wins, otherwise the fallback.
func FirstNonEmpty(candidates []any, fallback string) string {
	for _, v := range candidates {
		if s := strValue(v); s != "" {
			return s
		}
	}
	return fallback
}

// strValue renders a loose JSON value as a trimmed string. json.Number is the
// common case because the VMpay client decodes with UseNumber, which keeps
// numeric ids exact.
func strValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func numValue(v any) float64 {
	switch t := v.(type) {
	case json.Number:
		f, _ := t.Float64()
		return f
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f
	default:
		return 0
	}
}

// asList unwraps a VMpay collection response. Some resources answer a bare
// array, others wrap it in {"data": [...]}.
func asList(v any) []any {
	switch t := v.(type) {
	case []any:
		return t
	case map[string]any:
		if inner, ok := t["data"].([]any); ok {
			return inner
		}
	}
	return nil
}

func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// embeddedRoutes collects the route associations of a picklist or scheduled
// visit record, whether embedded as a "routes" array or a single "route".
func embeddedRoutes(rec map[string]any) []map[string]any {
	if list, ok := rec["routes"].([]any); ok {
		out := make([]map[string]any, 0, len(list))
		for _, r := range list {
			if m, ok := r.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	}
	if m, ok := rec["route"].(map[string]any); ok {
		return []map[string]any{m}
	}
	if id := strValue(rec["route_id"]); id != "" {
		return []map[string]any{{"id": id}}
	}
	return nil
}
