package ports

import (
	"context"

	"github.com/Gunvolt24/similar_products/internal/domain"
)

// QueryDispatcher — шина запросов на чтение.
type QueryDispatcher interface {
	Dispatch(ctx context.Context, q domain.Query) (any, error)
}
