package request

import (
	"encoding/json"
	"strconv"
	"strings"
)

// CompletePicklistRequest marks a picklist as done for an operator. Both
// fields are required; the usecase rejects anything missing with the single
// 400 this API surfaces.
type CompletePicklistRequest struct {
	// OperadorID stays untyped because the app has sent both 7 and "7".
	OperadorID any    `json:"operadorId"`
	PicklistID string `json:"picklistId"`
}

// ResolveOperadorID accepts the operator id as a JSON number or a numeric
// string. Anything else resolves to 0, which the usecase rejects.
func (r CompletePicklistRequest) ResolveOperadorID() int64 {
	switch v := r.OperadorID.(type) {
	case float64:
		return int64(v)
	case json.Number:
		n, _ := v.Int64()
		return n
	case string:
		n, _ := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return n
	}
	return 0
}

func (r CompletePicklistRequest) ResolvePicklistID() string {
	return strings.TrimSpace(r.PicklistID)
}
