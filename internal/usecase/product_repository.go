package usecase

import (
	"context"
	"strings"

	"github.com/Gunvolt24/similar_products/internal/domain"
	"github.com/Gunvolt24/similar_products/internal/ports"
)

// Проверка, что ProductRepository удовлетворяет порту.
var _ ports.ProductRepository = (*ProductRepository)(nil)

// ProductRepository — доступ к товарам: валидация → кэш → каталог.
// Невалидный id не доходит ни до кэша, ни до каталога.
type ProductRepository struct {
	validator  ports.ProductIDValidator
	details    ports.ProductDetailCache
	similarIDs ports.SimilarIDsCache
	client     ports.ProductClient
	log        ports.Logger
}

// NewProductRepository — DI-конструктор.
func NewProductRepository(
	validator ports.ProductIDValidator,
	details ports.ProductDetailCache,
	similarIDs ports.SimilarIDsCache,
	client ports.ProductClient,
	log ports.Logger,
) *ProductRepository {
	return &ProductRepository{
		validator:  validator,
		details:    details,
		similarIDs: similarIDs,
		client:     client,
		log:        log,
	}
}

// FindProductDetail — карточка товара; ошибки клиента возвращаются без изменений.
func (r *ProductRepository) FindProductDetail(ctx context.Context, productID string) (domain.ProductDetail, error) {
	if err := r.validator.Validate(ctx, productID); err != nil {
		return domain.ProductDetail{}, err
	}
	return r.details.GetOrLoad(ctx, productID, func(ctx context.Context) (domain.ProductDetail, error) {
		return r.client.FetchDetail(ctx, productID)
	})
}

// FindSimilarProductIDs — идентификаторы похожих товаров в порядке каталога.
func (r *ProductRepository) FindSimilarProductIDs(ctx context.Context, productID string) ([]string, error) {
	if err := r.validator.Validate(ctx, productID); err != nil {
		return nil, err
	}
	return r.similarIDs.GetOrLoad(ctx, productID, func(ctx context.Context) ([]string, error) {
		return r.client.FetchSimilarIDs(ctx, productID)
	})
}

// Invalidate — удаляет товар из обоих кэшей по id как есть и по id без пробелов по краям.
// Кэш хранит ключи в том виде, в каком их прислали, поэтому прочие записи того же
// числа ("007" для "7") доживают до TTL.
func (r *ProductRepository) Invalidate(ctx context.Context, productID string) error {
	if err := r.validator.Validate(ctx, productID); err != nil {
		return err
	}
	keys := []string{productID}
	if trimmed := strings.TrimSpace(productID); trimmed != productID {
		keys = append(keys, trimmed)
	}
	for _, key := range keys {
		r.details.Delete(ctx, key)
		r.similarIDs.Delete(ctx, key)
	}
	r.log.Infof(ctx, "cache invalidated product_id=%s", productID)
	return nil
}
