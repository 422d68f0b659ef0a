package memory

import (
	"time"

	"github.com/Gunvolt24/similar_products/internal/domain"
	"github.com/Gunvolt24/similar_products/internal/ports"
)

const (
	// DefaultCapacity — максимум записей в каждом кэше.
	DefaultCapacity = 500
	// DefaultTTL — время жизни записи с момента сохранения.
	DefaultTTL = 10 * time.Minute

	ProductDetailsCacheName = "productDetails"
	SimilarIDsCacheName     = "similarIds"
)

var (
	_ ports.ProductDetailCache = (*LRUCacheTTL[domain.ProductDetail])(nil)
	_ ports.SimilarIDsCache    = (*LRUCacheTTL[[]string])(nil)
)

// NewProductDetailsCache — кэш карточек: id → ProductDetail.
func NewProductDetailsCache() *LRUCacheTTL[domain.ProductDetail] {
	return NewLRUCacheTTL[domain.ProductDetail](ProductDetailsCacheName, DefaultCapacity, DefaultTTL, nil)
}

// NewSimilarIDsCache — кэш списков похожих: id → []string.
func NewSimilarIDsCache() *LRUCacheTTL[[]string] {
	return NewLRUCacheTTL(SimilarIDsCacheName, DefaultCapacity, DefaultTTL, cloneIDs)
}

// cloneIDs — копия среза, чтобы изменения у вызывающего не попадали в кэш.
func cloneIDs(ids []string) []string {
	if ids == nil {
		return nil
	}
	return append([]string(nil), ids...)
}
