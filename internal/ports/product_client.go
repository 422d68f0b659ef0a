package ports

import (
	"context"

	"github.com/Gunvolt24/similar_products/internal/domain"
)

// ProductClient — клиент внешнего каталога. Одна попытка на вызов, без повторов.
type ProductClient interface {
	FetchDetail(ctx context.Context, productID string) (domain.ProductDetail, error)
	FetchSimilarIDs(ctx context.Context, productID string) ([]string, error)
}
