package handlers

import (
	"log"
	"net/http"

	"estoque_gelb/pkg"

	"github.com/gin-gonic/gin"
)

// failurePolicy decides what a read endpoint does with a resolver failure.
// The operator app prefers a silently degraded (empty) list over a broken
// screen, so most endpoints tolerate; the item listing propagates.
type failurePolicy int

const (
	tolerate failurePolicy = iota
	propagate
)

// respondList finishes a list endpoint under the given policy. Swallowed
// failures are still logged.
func respondList[T any](c *gin.Context, scope string, policy failurePolicy, items []T, err error) {
	if err != nil {
		log.Printf("[%s][handler] list failed: %v", scope, err)
		if policy == tolerate {
			c.JSON(http.StatusOK, []T{})
			return
		}
		appErr := mapUpstreamError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, items)
}

func mapUpstreamError(err error) *pkg.AppError {
	status := pkg.UpstreamStatus(err)
	if status == http.StatusNotImplemented {
		return pkg.NewDomainError("UPSTREAM_NOT_CONFIGURED", "VMpay não configurado (VMPAY_BASE/VMPAY_TOKEN)", err, status)
	}
	return pkg.NewDomainError("UPSTREAM_ERROR", "Erro inesperado", err, status)
}
