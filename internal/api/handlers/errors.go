package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"diagramadoria/internal/api"
	"diagramadoria/internal/domain"
	"diagramadoria/internal/metrics"
)

// handleDomainError обрабатывает domain ошибки и возвращает правильный HTTP response
func handleDomainError(c *gin.Context, err error) {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		metrics.DomainErrorsTotal.WithLabelValues(string(domainErr.Code)).Inc()

		c.JSON(domainErr.Status, api.ErrorResponse{
			Error: api.Error{
				Code:    string(domainErr.Code),
				Message: domainErr.Message,
			},
		})
		return
	}

	// Fallback на internal error
	metrics.DomainErrorsTotal.WithLabelValues(api.ErrCodeInternalError).Inc()
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{
		Error: api.Error{
			Code:    api.ErrCodeInternalError,
			Message: "internal server error",
		},
	})
}
