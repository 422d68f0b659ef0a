//go:build integration

package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
)

// CatalogStub — фейковый каталог товаров на httptest.
// Товары задаются через Put, счётчик Hits считает все запросы.
type CatalogStub struct {
	Server *httptest.Server
	Hits   atomic.Int64

	mu      sync.RWMutex
	details map[string]string
	similar map[string][]string
}

// StartCatalogStub — поднимает каталог с путями /product/{id} и /product/{id}/similarids.
func StartCatalogStub() *CatalogStub {
	s := &CatalogStub{details: map[string]string{}, similar: map[string][]string{}}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	return s
}

// Put — кладёт (или заменяет) карточку товара.
func (s *CatalogStub) Put(id, name, price string, available bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.details[id] = fmt.Sprintf(`{"id":%q,"name":%q,"price":%s,"availability":%t}`, id, name, price, available)
}

// PutSimilar — список похожих для товара.
func (s *CatalogStub) PutSimilar(id string, similar ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.similar[id] = similar
}

func (s *CatalogStub) Close() { s.Server.Close() }

func (s *CatalogStub) serve(w http.ResponseWriter, r *http.Request) {
	s.Hits.Add(1)
	path := strings.TrimPrefix(r.URL.Path, "/product/")

	s.mu.RLock()
	defer s.mu.RUnlock()

	if id, ok := strings.CutSuffix(path, "/similarids"); ok {
		ids, found := s.similar[id]
		if !found {
			http.NotFound(w, r)
			return
		}
		quoted := make([]string, 0, len(ids))
		for _, v := range ids {
			quoted = append(quoted, fmt.Sprintf("%q", v))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[" + strings.Join(quoted, ",") + "]"))
		return
	}

	body, found := s.details[path]
	if !found {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}
