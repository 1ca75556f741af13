package entities

// Operator is a warehouse operator identity from the usuarios table. When the
// credentials store is unreachable the fixed fallback operator (id 1) stands
// in for every request.
type Operator struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}
