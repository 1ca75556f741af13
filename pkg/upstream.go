package pkg

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUpstreamNotConfigured is returned before any network call when the VMpay
// credentials are absent. Handlers answer it with 501 so a misconfigured
// deploy is visible instead of silently degraded.
var ErrUpstreamNotConfigured = errors.New("vmpay not configured (VMPAY_BASE/VMPAY_TOKEN)")

// UpstreamError carries the VMpay response status for a failed call.
// StatusCode 0 means the call never produced a response (network error,
// timeout, undecodable body).
type UpstreamError struct {
	StatusCode int
	Path       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("vmpay %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("vmpay %s: status %d", e.Path, e.StatusCode)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsUpstreamNotFound reports whether err is a VMpay 404. Callers treat that as
// "resource simply not there", never as a failure.
func IsUpstreamNotFound(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue) && ue.StatusCode == http.StatusNotFound
}

// UpstreamStatus maps an upstream failure to the HTTP status this service
// should answer with when the calling endpoint propagates errors.
func UpstreamStatus(err error) int {
	if errors.Is(err, ErrUpstreamNotConfigured) {
		return http.StatusNotImplemented
	}
	var ue *UpstreamError
	if errors.As(err, &ue) && ue.StatusCode > 0 {
		return ue.StatusCode
	}
	return http.StatusInternalServerError
}
