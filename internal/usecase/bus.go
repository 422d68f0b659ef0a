package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/similar_products/internal/domain"
	"github.com/Gunvolt24/similar_products/internal/ports"
)

// Проверка, что Bus удовлетворяет порту.
var _ ports.QueryDispatcher = (*Bus)(nil)

var (
	// ErrNoHandlerFound — для типа запроса не зарегистрирован обработчик.
	ErrNoHandlerFound = errors.New("no handler found")
	// ErrUnexpectedQuery — обработчик получил запрос чужого типа.
	ErrUnexpectedQuery = errors.New("unexpected query type")
	// ErrUnexpectedResult — результат обработчика не приводится к ожидаемому типу.
	ErrUnexpectedResult = errors.New("unexpected result type")
)

// HandlerFunc — обработчик запроса одного типа.
type HandlerFunc func(ctx context.Context, q domain.Query) (any, error)

// Bus — шина запросов на чтение: явная таблица «тип запроса → обработчик».
type Bus struct {
	handlers map[domain.QueryKind]HandlerFunc
}

// NewBus — таблица обработчиков заполняется один раз при сборке.
func NewBus(repo ports.ProductRepository, similar ports.SimilarProductsStreamer) *Bus {
	return &Bus{handlers: map[domain.QueryKind]HandlerFunc{
		domain.QueryProductDetail: handle(func(ctx context.Context, q domain.GetProductDetail) (domain.ProductDetail, error) {
			return repo.FindProductDetail(ctx, q.ProductID)
		}),
		domain.QuerySimilarProductIDs: handle(func(ctx context.Context, q domain.GetSimilarProductIDs) ([]string, error) {
			return repo.FindSimilarProductIDs(ctx, q.ProductID)
		}),
		domain.QuerySimilarProducts: handle(func(ctx context.Context, q domain.GetSimilarProducts) (<-chan domain.ProductDetail, error) {
			return similar.StreamSimilarProducts(ctx, q.ProductID)
		}),
	}}
}

// Dispatch — вызывает обработчик по типу запроса.
func (b *Bus) Dispatch(ctx context.Context, q domain.Query) (any, error) {
	if q == nil {
		return nil, fmt.Errorf("%w: nil query", ErrNoHandlerFound)
	}
	handler, ok := b.handlers[q.Kind()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoHandlerFound, q.Kind())
	}
	return handler(ctx, q)
}

// Ask — Dispatch с приведением результата к типу R.
func Ask[R any](ctx context.Context, dispatcher ports.QueryDispatcher, q domain.Query) (R, error) {
	var zero R
	res, err := dispatcher.Dispatch(ctx, q)
	if err != nil {
		return zero, err
	}
	typed, ok := res.(R)
	if !ok {
		return zero, fmt.Errorf("%w: %T for %s", ErrUnexpectedResult, res, q.Kind())
	}
	return typed, nil
}

// handle — адаптер типизированного обработчика к HandlerFunc.
func handle[Q domain.Query, R any](fn func(context.Context, Q) (R, error)) HandlerFunc {
	return func(ctx context.Context, q domain.Query) (any, error) {
		typed, ok := q.(Q)
		if !ok {
			return nil, fmt.Errorf("%w: %T for %s", ErrUnexpectedQuery, q, q.Kind())
		}
		return fn(ctx, typed)
	}
}
