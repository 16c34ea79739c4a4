package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platescan/backend/internal/service"
)

// statusFor maps pipeline failure categories to HTTP statuses. Input
// problems are the caller's; everything else is a service-side failure.
func statusFor(code service.ErrorCode) int {
	switch code {
	case service.CodeInvalidInput:
		return http.StatusBadRequest
	case service.CodeUpstreamFailure, service.CodeMalformedResponse:
		return http.StatusBadGateway
	case service.CodePersistenceFailure:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the machine-readable failure envelope.
func respondError(c *gin.Context, err error, fallback string) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		c.JSON(statusFor(svcErr.Code), gin.H{
			"error": svcErr.Message,
			"code":  string(svcErr.Code),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": fallback,
		"code":  string(service.CodeUpstreamFailure),
	})
}

// respondBindError reports a request body rejected by binding validation.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": err.Error(),
		"code":  string(service.CodeInvalidInput),
	})
}
