//go:build integration

package kafka_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/similar_products/internal/cache/memory"
	ikafka "github.com/Gunvolt24/similar_products/internal/kafka"
	"github.com/Gunvolt24/similar_products/internal/ports"
	"github.com/Gunvolt24/similar_products/internal/repo/catalog"
	"github.com/Gunvolt24/similar_products/internal/testutil"
	"github.com/Gunvolt24/similar_products/internal/usecase"
	"github.com/Gunvolt24/similar_products/pkg/logger"
	"github.com/Gunvolt24/similar_products/pkg/validate"
)

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func safe(t *testing.T) string { return reUnsafe.ReplaceAllString(t.Name(), "-") }

type stack struct {
	ctx     context.Context
	kf      *testutil.KafkaEnv
	catalog *testutil.CatalogStub
	repo    *usecase.ProductRepository
	log     ports.Logger
}

func newStack(t *testing.T) *stack {
	t.Helper()

	// длинный контекст только на старт контейнера
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancelStart)

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "product-changes-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	// короткий контекст на сам тест
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	t.Cleanup(cancel)

	logg, closer, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer() })

	stub := testutil.StartCatalogStub()
	t.Cleanup(stub.Close)

	client, err := catalog.NewClient(catalog.Config{
		BaseURL:        stub.Server.URL,
		DetailPath:     "/product/{id}",
		SimilarIDsPath: "/product/{id}/similarids",
	}, logg)
	require.NoError(t, err)

	repo := usecase.NewProductRepository(
		validate.NewProductIDValidator(),
		memory.NewProductDetailsCache(),
		memory.NewSimilarIDsCache(),
		client,
		logg,
	)

	return &stack{ctx: ctx, kf: kf, catalog: stub, repo: repo, log: logg}
}

func (s *stack) startConsumer(t *testing.T, topic, group, startOffset string) {
	t.Helper()

	consumer := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:        s.kf.Brokers,
		Topic:          topic,
		GroupID:        group,
		StartOffset:    startOffset,
		ProcessTimeout: 3 * time.Second,
		RetryInitial:   200 * time.Millisecond,
		RetryMax:       2 * time.Second,
	}, usecase.NewProductEventHandler(s.repo, s.log), s.log)

	runCtx, cancelRun := context.WithCancel(s.ctx)
	t.Cleanup(func() {
		cancelRun()
		_ = consumer.Close()
	})
	go func() { _ = consumer.Run(runCtx) }()

	// даём консьюмеру присоединиться к группе/получить assignment
	time.Sleep(1500 * time.Millisecond)
}

// waitFresh — ждёт, пока репозиторий отдаст новое имя (кэш сброшен событием).
func (s *stack) waitFresh(t *testing.T, id, want string) {
	t.Helper()

	deadline := time.Now().Add(20 * time.Second)
	for {
		got, err := s.repo.FindProductDetail(s.ctx, id)
		require.NoError(t, err)
		if got.Name == want {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("product %s still cached as %q, want %q", id, got.Name, want)
		}
		time.Sleep(200 * time.Millisecond)
	}
}

// 1) Событие об изменении товара сбрасывает кэш карточки
func TestKafka_ProductChanged_InvalidatesCache_TC(t *testing.T) {
	s := newStack(t)

	topic, group := testutil.UniqueTopicAndGroup(s.kf.BaseTopic + "-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(s.ctx, s.kf.Brokers[0], topic))
	s.startConsumer(t, topic, group, "first")

	s.catalog.Put("1", "Shirt", "9.99", true)
	got, err := s.repo.FindProductDetail(s.ctx, "1")
	require.NoError(t, err)
	require.Equal(t, "Shirt", got.Name)

	// каталог поменялся, но кэш ещё отдаёт старое
	s.catalog.Put("1", "Shirt v2", "12.50", false)
	got, err = s.repo.FindProductDetail(s.ctx, "1")
	require.NoError(t, err)
	require.Equal(t, "Shirt", got.Name)

	require.NoError(t, testutil.WriteProductEvent(s.ctx, s.kf.Brokers, topic, "1"))
	s.waitFresh(t, "1", "Shirt v2")
}

// 2) Мусор и невалидный id пропускаются; следующее событие обрабатывается
func TestKafka_Skip_InvalidEvents_Then_Invalidate_TC(t *testing.T) {
	s := newStack(t)

	topic, group := testutil.UniqueTopicAndGroup(s.kf.BaseTopic + "-invalid-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(s.ctx, s.kf.Brokers[0], topic))
	s.startConsumer(t, topic, group, "first")

	s.catalog.Put("2", "Mug", "3", true)
	_, err := s.repo.FindProductDetail(s.ctx, "2")
	require.NoError(t, err)
	s.catalog.Put("2", "Mug XL", "4", true)

	require.NoError(t, testutil.WriteRaw(s.ctx, s.kf.Brokers, topic, "junk", []byte("not-a-json{")))
	require.NoError(t, testutil.WriteProductEvent(s.ctx, s.kf.Brokers, topic, "-7"))
	require.NoError(t, testutil.WriteProductEvent(s.ctx, s.kf.Brokers, topic, "2"))

	s.waitFresh(t, "2", "Mug XL")
}

// 3) Сброс затрагивает и список похожих
func TestKafka_ProductChanged_InvalidatesSimilarIDs_TC(t *testing.T) {
	s := newStack(t)

	topic, group := testutil.UniqueTopicAndGroup(s.kf.BaseTopic + "-similar-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(s.ctx, s.kf.Brokers[0], topic))
	s.startConsumer(t, topic, group, "first")

	s.catalog.PutSimilar("3", "4", "5")
	ids, err := s.repo.FindSimilarProductIDs(s.ctx, "3")
	require.NoError(t, err)
	require.Equal(t, []string{"4", "5"}, ids)

	s.catalog.PutSimilar("3", "6")
	require.NoError(t, testutil.WriteProductEvent(s.ctx, s.kf.Brokers, topic, "3"))

	deadline := time.Now().Add(20 * time.Second)
	for {
		ids, err = s.repo.FindSimilarProductIDs(s.ctx, "3")
		require.NoError(t, err)
		if len(ids) == 1 && ids[0] == "6" {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("similar ids still cached: %v", ids)
		}
		time.Sleep(200 * time.Millisecond)
	}
}
