package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Gunvolt24/similar_products/internal/domain"
	"github.com/Gunvolt24/similar_products/internal/ports"
	"github.com/Gunvolt24/similar_products/pkg/metrics"
)

// Проверка, что SimilarProductsService удовлетворяет порту.
var _ ports.SimilarProductsStreamer = (*SimilarProductsService)(nil)

// SimilarProductsService — сборка карточек похожих товаров.
type SimilarProductsService struct {
	repo        ports.ProductRepository
	log         ports.Logger
	fanOutLimit int // <= 0 — без ограничения
}

// NewSimilarProductsService — DI-конструктор; fanOutLimit ограничивает число параллельных запросов карточек.
func NewSimilarProductsService(repo ports.ProductRepository, log ports.Logger, fanOutLimit int) *SimilarProductsService {
	return &SimilarProductsService{repo: repo, log: log, fanOutLimit: fanOutLimit}
}

// StreamSimilarProducts — ошибка списка id завершает операцию целиком;
// после этого карточки запрашиваются параллельно и отдаются в порядке готовности.
// Карточка, которую не удалось получить, пропускается. Канал закрывается,
// когда обработаны все id или отменён ctx.
func (s *SimilarProductsService) StreamSimilarProducts(ctx context.Context, productID string) (<-chan domain.ProductDetail, error) {
	ids, err := s.repo.FindSimilarProductIDs(ctx, productID)
	if err != nil {
		return nil, err
	}

	out := make(chan domain.ProductDetail, len(ids))
	go func() {
		defer close(out)

		group, groupCtx := errgroup.WithContext(ctx)
		if s.fanOutLimit > 0 {
			group.SetLimit(s.fanOutLimit)
		}

		for _, similarID := range ids {
			if groupCtx.Err() != nil {
				break
			}
			group.Go(func() error {
				detail, err := s.repo.FindProductDetail(groupCtx, similarID)
				if err != nil {
					metrics.SimilarProductsDropped.Inc()
					s.log.Warnf(groupCtx, "similar product dropped product_id=%s similar_id=%s err=%v", productID, similarID, err)
					return nil
				}
				select {
				case out <- detail:
				case <-groupCtx.Done():
				}
				return nil
			})
		}
		_ = group.Wait()
	}()

	return out, nil
}

// Collect — вычитывает поток до конца или до отмены ctx.
func Collect(ctx context.Context, stream <-chan domain.ProductDetail) ([]domain.ProductDetail, error) {
	details := make([]domain.ProductDetail, 0)
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case detail, ok := <-stream:
			if !ok {
				return details, nil
			}
			details = append(details, detail)
		}
	}
}
