package vmpay

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"estoque_gelb/pkg"
)

const requestTimeout = 15 * time.Second

// Client issues authenticated GETs against the VMpay management API. The
// access token travels as a query parameter on every call, which is how VMpay
// expects it. No retries, no backoff; the timeout is the only transport bound.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClientFromEnv builds the client from VMPAY_BASE / VMPAY_TOKEN. Missing
// credentials are allowed at boot; every call then fails with
// pkg.ErrUpstreamNotConfigured before touching the network.
func NewClientFromEnv() *Client {
	base := strings.TrimRight(os.Getenv("VMPAY_BASE"), "/")
	token := os.Getenv("VMPAY_TOKEN")
	if base == "" || token == "" {
		log.Printf("[vmpay][client] missing VMPAY_BASE/VMPAY_TOKEN, upstream calls will answer 501")
	} else {
		log.Printf("[vmpay][client] initialized base=%s", base)
	}
	return &Client{
		baseURL: base,
		token:   token,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Get fetches path with query and decodes the JSON body. Numbers decode as
// json.Number so upstream ids survive stringification losslessly.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (any, error) {
	if c.baseURL == "" || c.token == "" {
		return nil, pkg.ErrUpstreamNotConfigured
	}

	q := url.Values{}
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("access_token", c.token)

	path = strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, &pkg.UpstreamError{Path: path, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[vmpay][client] request failed path=%s err=%v", path, err)
		return nil, &pkg.UpstreamError{Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Printf("[vmpay][client] non-2xx path=%s status=%d", path, resp.StatusCode)
		return nil, &pkg.UpstreamError{StatusCode: resp.StatusCode, Path: path}
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		log.Printf("[vmpay][client] undecodable body path=%s err=%v", path, err)
		return nil, &pkg.UpstreamError{Path: path, Err: err}
	}
	return out, nil
}
