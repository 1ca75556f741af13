package interfaces

import (
	"context"
	"net/url"
)

// IVMPayClient abstracts authenticated GETs against the VMpay management API.
//
// The concrete client appends the access token, enforces the transport
// timeout and decodes the JSON body with json.Number preservation. Resolvers
// only ever see the decoded loose shape.
type IVMPayClient interface {
	Get(ctx context.Context, path string, query url.Values) (any, error)
}
