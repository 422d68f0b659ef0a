package ports

import (
	"context"

	"github.com/Gunvolt24/similar_products/internal/domain"
)

// ProductRepository — доступ к товарам: валидация, затем кэш, затем каталог.
type ProductRepository interface {
	FindProductDetail(ctx context.Context, productID string) (domain.ProductDetail, error)
	FindSimilarProductIDs(ctx context.Context, productID string) ([]string, error)
	Invalidate(ctx context.Context, productID string) error
}

// SimilarProductsStreamer — карточки похожих товаров в порядке готовности.
type SimilarProductsStreamer interface {
	StreamSimilarProducts(ctx context.Context, productID string) (<-chan domain.ProductDetail, error)
}
