package request

import "strings"

// AuthRequest is the login payload the operator app posts. Field names are
// the app's Portuguese contract. An empty or malformed body is rejected with
// 400 before the credentials are ever checked.
type AuthRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

func (r AuthRequest) ResolveEmail() string {
	return strings.TrimSpace(r.Email)
}
