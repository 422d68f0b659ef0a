package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/similar_products/internal/domain"
)

const (
	msgInvalidProductID = "Product id must be a positive integer value, greater than zero"
	msgNotFound         = "Product %s not found"
	msgUpstreamTimeout  = "Timeout when trying to reach external product service"
	msgUnexpected       = "Unexpected error: "
)

// errorMessage — текст ответа для ошибки.
func errorMessage(err error) string {
	var notFound *domain.NotFoundError
	switch {
	case errors.Is(err, domain.ErrInvalidProductID):
		return msgInvalidProductID
	case errors.As(err, &notFound):
		return fmt.Sprintf(msgNotFound, notFound.ID)
	case errors.Is(err, domain.ErrUpstreamTimeout), errors.Is(err, context.DeadlineExceeded):
		return msgUpstreamTimeout
	default:
		return msgUnexpected + err.Error()
	}
}

// renderError — любая ошибка отдаётся статусом 200 и текстом в теле.
func (h *Handler) renderError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var unexpected *domain.UnexpectedError
	var upstream *domain.UpstreamError
	if errors.As(err, &unexpected) || errors.As(err, &upstream) {
		h.log.Errorf(ctx, "request failed path=%s err=%v", c.Request.URL.Path, err)
	} else {
		h.log.Warnf(ctx, "request failed path=%s err=%v", c.Request.URL.Path, err)
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(errorMessage(err)))
}

// recoverPanic — паника в обработчике становится UnexpectedError.
func (h *Handler) recoverPanic(c *gin.Context, recovered any) {
	h.renderError(c, &domain.UnexpectedError{Cause: fmt.Errorf("%v", recovered)})
	c.Abort()
}
