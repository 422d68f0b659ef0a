package rest_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/similar_products/internal/cache/memory"
	"github.com/Gunvolt24/similar_products/internal/repo/catalog"
	rest "github.com/Gunvolt24/similar_products/internal/transport/http"
	"github.com/Gunvolt24/similar_products/internal/usecase"
	"github.com/Gunvolt24/similar_products/pkg/validate"
)

// fakeCatalog — каталог на httptest: 1 → [2,3,4,5], 4 отсутствует, 5 падает, 7 отвечает медленно.
func fakeCatalog(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/product/", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		path := strings.TrimPrefix(r.URL.Path, "/product/")

		if id, ok := strings.CutSuffix(path, "/similarids"); ok {
			switch id {
			case "1":
				_, _ = w.Write([]byte(`["2","3","4","5"]`))
			case "9":
				http.Error(w, "catalog down", http.StatusInternalServerError)
			default:
				_, _ = w.Write([]byte(`[]`))
			}
			return
		}

		switch path {
		case "1", "2", "3":
			_, _ = w.Write([]byte(`{"id":"` + path + `","name":"Item ` + path + `","price":10.5,"availability":true}`))
		case "5":
			http.Error(w, "boom", http.StatusInternalServerError)
		case "7":
			time.Sleep(300 * time.Millisecond)
			_, _ = w.Write([]byte(`{"id":"7","name":"Slow","price":1,"availability":false}`))
		default:
			http.NotFound(w, r)
		}
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newFullStack(t *testing.T, upstreamURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client, err := catalog.NewClient(catalog.Config{
		BaseURL:         upstreamURL,
		DetailPath:      "/product/{id}",
		SimilarIDsPath:  "/product/{id}/similarids",
		ResponseTimeout: 100 * time.Millisecond,
	}, noopLogger{})
	require.NoError(t, err)

	repo := usecase.NewProductRepository(
		validate.NewProductIDValidator(),
		memory.NewProductDetailsCache(),
		memory.NewSimilarIDsCache(),
		client,
		noopLogger{},
	)
	similar := usecase.NewSimilarProductsService(repo, noopLogger{}, 0)
	bus := usecase.NewBus(repo, similar)

	return rest.NewRouter(rest.NewHandler(bus, noopLogger{}, 0), "")
}

func TestFullStack_SimilarProducts_DropsFailuresAndCaches(t *testing.T) {
	var hits atomic.Int64
	r := newFullStack(t, fakeCatalog(t, &hits).URL)

	w := serve(r, "/product/1/similar", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got []struct {
		Name         string  `json:"name"`
		Price        float64 `json:"price"`
		Availability bool    `json:"availability"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))

	names := make([]string, 0, len(got))
	for _, d := range got {
		names = append(names, d.Name)
		require.Equal(t, 10.5, d.Price)
	}
	sort.Strings(names)
	require.Equal(t, []string{"Item 2", "Item 3"}, names)

	// 1 список + 4 карточки
	require.Equal(t, int64(5), hits.Load())

	// ids и успешные карточки в кэше; неудачные 4 и 5 запрашиваются снова
	w = serve(r, "/product/1/similar", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, int64(7), hits.Load())
}

func TestFullStack_ProductDetail(t *testing.T) {
	var hits atomic.Int64
	r := newFullStack(t, fakeCatalog(t, &hits).URL)

	w := serve(r, "/product/2", "")
	require.Equal(t, `{"name":"Item 2","price":10.5,"availability":true}`, w.Body.String())

	w = serve(r, "/product/4", "")
	require.Equal(t, "Product 4 not found", w.Body.String())

	w = serve(r, "/product/7", "")
	require.Equal(t, "Timeout when trying to reach external product service", w.Body.String())
}

func TestFullStack_InvalidIDNeverReachesCatalog(t *testing.T) {
	var hits atomic.Int64
	r := newFullStack(t, fakeCatalog(t, &hits).URL)

	for _, path := range []string{"/product/abc", "/product/0", "/product/-1/similarids", "/product/99999999999999999999/similar"} {
		w := serve(r, path, "")
		require.Equal(t, http.StatusOK, w.Code, path)
		require.Equal(t, "Product id must be a positive integer value, greater than zero", w.Body.String(), path)
	}
	require.Zero(t, hits.Load())
}

func TestFullStack_SimilarIDsUpstreamFailure(t *testing.T) {
	var hits atomic.Int64
	r := newFullStack(t, fakeCatalog(t, &hits).URL)

	w := serve(r, "/product/9/similar", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, strings.HasPrefix(w.Body.String(), "Unexpected error: "), w.Body.String())

	w = serve(r, "/product/1/similarids", "text/plain")
	require.Equal(t, "2345", w.Body.String())
}
