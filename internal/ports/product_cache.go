package ports

import (
	"context"

	"github.com/Gunvolt24/similar_products/internal/domain"
)

// ProductDetailCache — кэш карточек товаров.
// Требования к реализации: потокобезопасность; ошибки load не кэшируются;
// конкурентные промахи по одному ключу объединяются в одну загрузку.
type ProductDetailCache interface {
	GetOrLoad(ctx context.Context, productID string, load func(context.Context) (domain.ProductDetail, error)) (domain.ProductDetail, error)
	Delete(ctx context.Context, productID string)
}

// SimilarIDsCache — кэш списков похожих товаров. Те же требования, что и у ProductDetailCache;
// возвращаемый срез принадлежит вызывающему.
type SimilarIDsCache interface {
	GetOrLoad(ctx context.Context, productID string, load func(context.Context) ([]string, error)) ([]string, error)
	Delete(ctx context.Context, productID string)
}
