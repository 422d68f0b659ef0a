package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"

	cachemem "github.com/Gunvolt24/similar_products/internal/cache/memory"
	"github.com/Gunvolt24/similar_products/internal/domain"
	"github.com/Gunvolt24/similar_products/internal/ports/mocks"
	"github.com/Gunvolt24/similar_products/internal/usecase"
	"github.com/Gunvolt24/similar_products/pkg/validate"
)

const productID = "1"

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func shirt() domain.ProductDetail {
	return domain.ProductDetail{ID: productID, Name: "Shirt", Price: decimal.RequireFromString("9.99"), Availability: true}
}

type repoMocks struct {
	validator  *mocks.MockProductIDValidator
	details    *mocks.MockProductDetailCache
	similarIDs *mocks.MockSimilarIDsCache
	client     *mocks.MockProductClient
}

func newRepoWithMocks(t *testing.T) (*usecase.ProductRepository, repoMocks) {
	ctrl := gomock.NewController(t)
	m := repoMocks{
		validator:  mocks.NewMockProductIDValidator(ctrl),
		details:    mocks.NewMockProductDetailCache(ctrl),
		similarIDs: mocks.NewMockSimilarIDsCache(ctrl),
		client:     mocks.NewMockProductClient(ctrl),
	}
	repo := usecase.NewProductRepository(m.validator, m.details, m.similarIDs, m.client, noopLogger{})
	return repo, m
}

func TestFindProductDetail_InvalidID_NoCacheNoClient(t *testing.T) {
	repo, m := newRepoWithMocks(t)

	m.validator.EXPECT().Validate(gomock.Any(), "abc").Return(domain.ErrInvalidProductID)
	// ни кэш, ни клиент не ожидаются: любой вызов уронит тест

	if _, err := repo.FindProductDetail(context.Background(), "abc"); !errors.Is(err, domain.ErrInvalidProductID) {
		t.Fatalf("want ErrInvalidProductID, got %v", err)
	}
	if _, err := repo.FindSimilarProductIDs(context.Background(), "abc"); err == nil {
		t.Fatalf("expected error for invalid id")
	}
}

func TestFindProductDetail_CacheMiss_LoadsFromClient(t *testing.T) {
	repo, m := newRepoWithMocks(t)
	want := shirt()

	gomock.InOrder(
		m.validator.EXPECT().Validate(gomock.Any(), productID).Return(nil),
		m.details.EXPECT().GetOrLoad(gomock.Any(), productID, gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ string, load func(context.Context) (domain.ProductDetail, error)) (domain.ProductDetail, error) {
				return load(ctx)
			}),
		m.client.EXPECT().FetchDetail(gomock.Any(), productID).Return(want, nil),
	)

	got, err := repo.FindProductDetail(context.Background(), productID)
	if err != nil || got.Name != want.Name {
		t.Fatalf("unexpected result %+v err=%v", got, err)
	}
}

func TestFindProductDetail_CacheHit_SkipsClient(t *testing.T) {
	repo, m := newRepoWithMocks(t)
	want := shirt()

	m.validator.EXPECT().Validate(gomock.Any(), productID).Return(nil)
	m.details.EXPECT().GetOrLoad(gomock.Any(), productID, gomock.Any()).Return(want, nil)

	got, err := repo.FindProductDetail(context.Background(), productID)
	if err != nil || got.ID != productID {
		t.Fatalf("unexpected result %+v err=%v", got, err)
	}
}

func TestFindProductDetail_ClientErrorPassedThrough(t *testing.T) {
	repo, m := newRepoWithMocks(t)
	notFound := &domain.NotFoundError{ID: productID}

	m.validator.EXPECT().Validate(gomock.Any(), productID).Return(nil)
	m.details.EXPECT().GetOrLoad(gomock.Any(), productID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, load func(context.Context) (domain.ProductDetail, error)) (domain.ProductDetail, error) {
			return load(ctx)
		})
	m.client.EXPECT().FetchDetail(gomock.Any(), productID).Return(domain.ProductDetail{}, notFound)

	_, err := repo.FindProductDetail(context.Background(), productID)
	if err != notFound {
		t.Fatalf("error must be returned unchanged, got %v", err)
	}
}

func TestFindSimilarProductIDs_LoadsFromClient(t *testing.T) {
	repo, m := newRepoWithMocks(t)

	m.validator.EXPECT().Validate(gomock.Any(), productID).Return(nil)
	m.similarIDs.EXPECT().GetOrLoad(gomock.Any(), productID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, load func(context.Context) ([]string, error)) ([]string, error) {
			return load(ctx)
		})
	m.client.EXPECT().FetchSimilarIDs(gomock.Any(), productID).Return([]string{"2", "3"}, nil)

	got, err := repo.FindSimilarProductIDs(context.Background(), productID)
	if err != nil || len(got) != 2 || got[0] != "2" || got[1] != "3" {
		t.Fatalf("unexpected result %v err=%v", got, err)
	}
}

func TestInvalidate_DeletesFromBothCaches(t *testing.T) {
	repo, m := newRepoWithMocks(t)

	m.validator.EXPECT().Validate(gomock.Any(), productID).Return(nil)
	m.details.EXPECT().Delete(gomock.Any(), productID)
	m.similarIDs.EXPECT().Delete(gomock.Any(), productID)

	if err := repo.Invalidate(context.Background(), productID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestInvalidate_PaddedIDAlsoDeletesTrimmedKey(t *testing.T) {
	repo, m := newRepoWithMocks(t)

	m.validator.EXPECT().Validate(gomock.Any(), " 7 ").Return(nil)
	m.details.EXPECT().Delete(gomock.Any(), " 7 ")
	m.similarIDs.EXPECT().Delete(gomock.Any(), " 7 ")
	m.details.EXPECT().Delete(gomock.Any(), "7")
	m.similarIDs.EXPECT().Delete(gomock.Any(), "7")

	if err := repo.Invalidate(context.Background(), " 7 "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestInvalidate_InvalidID(t *testing.T) {
	repo, m := newRepoWithMocks(t)

	m.validator.EXPECT().Validate(gomock.Any(), "0").Return(domain.ErrInvalidProductID)

	if err := repo.Invalidate(context.Background(), "0"); !errors.Is(err, domain.ErrInvalidProductID) {
		t.Fatalf("want ErrInvalidProductID, got %v", err)
	}
}

// С настоящими кэшами: повторный запрос не доходит до клиента, ошибка не кэшируется.
func TestProductRepository_WithMemoryCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockProductClient(ctrl)

	repo := usecase.NewProductRepository(
		validate.NewProductIDValidator(),
		cachemem.NewProductDetailsCache(),
		cachemem.NewSimilarIDsCache(),
		client,
		noopLogger{},
	)
	ctx := context.Background()

	client.EXPECT().FetchDetail(gomock.Any(), productID).Return(shirt(), nil).Times(1)
	for i := 0; i < 3; i++ {
		if _, err := repo.FindProductDetail(ctx, productID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	gomock.InOrder(
		client.EXPECT().FetchSimilarIDs(gomock.Any(), "2").Return(nil, domain.ErrUpstreamTimeout),
		client.EXPECT().FetchSimilarIDs(gomock.Any(), "2").Return([]string{"3"}, nil),
	)
	if _, err := repo.FindSimilarProductIDs(ctx, "2"); !errors.Is(err, domain.ErrUpstreamTimeout) {
		t.Fatalf("want ErrUpstreamTimeout, got %v", err)
	}
	if ids, err := repo.FindSimilarProductIDs(ctx, "2"); err != nil || len(ids) != 1 {
		t.Fatalf("failure must not be cached, got %v err=%v", ids, err)
	}

	// после Invalidate карточка снова запрашивается у клиента
	client.EXPECT().FetchDetail(gomock.Any(), productID).Return(shirt(), nil).Times(1)
	if err := repo.Invalidate(ctx, productID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.FindProductDetail(ctx, productID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
