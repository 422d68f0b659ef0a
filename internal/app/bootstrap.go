package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	faster "github.com/go-faster/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Gunvolt24/similar_products/config"
	"github.com/Gunvolt24/similar_products/internal/cache/memory"
	"github.com/Gunvolt24/similar_products/internal/kafka"
	"github.com/Gunvolt24/similar_products/internal/ports"
	"github.com/Gunvolt24/similar_products/internal/repo/catalog"
	rest "github.com/Gunvolt24/similar_products/internal/transport/http"
	"github.com/Gunvolt24/similar_products/internal/usecase"
	"github.com/Gunvolt24/similar_products/pkg/logger"
	"github.com/Gunvolt24/similar_products/pkg/metrics"
	"github.com/Gunvolt24/similar_products/pkg/telemetry"
	"github.com/Gunvolt24/similar_products/pkg/validate"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, metrics, consumer).
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // HTTP-сервер API
	MetricsServer   *http.Server          // отдельный /metrics; nil — только на основном сервере
	KafkaConsumer   ports.MessageConsumer // консьюмер событий; nil — выключен
	gracefulTimeout time.Duration         // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, faster.Wrap(err, "init logger")
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Клиент каталога: ошибка тут — это ошибка конфигурации.
	client, err := catalog.NewClient(catalog.Config{
		BaseURL:         cfg.Upstream.BaseURL,
		DetailPath:      cfg.Upstream.DetailPath,
		SimilarIDsPath:  cfg.Upstream.SimilarIDsPath,
		ConnectTimeout:  cfg.Upstream.ConnectTimeout,
		ResponseTimeout: cfg.Upstream.ResponseTimeout,
		MaxIdleConns:    cfg.Upstream.MaxIdleConns,
	}, logg)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, faster.Wrap(err, "init catalog client")
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Доменный слой: валидатор → кэши → каталог.
	repo := usecase.NewProductRepository(
		validate.NewProductIDValidator(),
		memory.NewProductDetailsCache(),
		memory.NewSimilarIDsCache(),
		client,
		logg,
	)
	similar := usecase.NewSimilarProductsService(repo, logg, cfg.Aggregate.FanOutLimit)
	bus := usecase.NewBus(repo, similar)

	logg.Infof(ctx, "catalog upstream=%s connect_timeout=%s response_timeout=%s fan_out_limit=%d",
		cfg.Upstream.BaseURL, cfg.Upstream.ConnectTimeout, cfg.Upstream.ResponseTimeout, cfg.Aggregate.FanOutLimit)

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	router := rest.NewRouter(rest.NewHandler(bus, logg, cfg.HTTP.HandlerTimeout), otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		MetricsServer:   newMetricsServer(cfg.Metrics.Addr, cfg.HTTP.Addr, cfg.HTTP.ReadHeaderTimeout),
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Консьюмер событий об изменении товаров (сброс кэша).
	if cfg.Kafka.Enabled {
		kafkaCfg := kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        cfg.Kafka.GroupID,
			Topic:          cfg.Kafka.Topic,
			StartOffset:    cfg.Kafka.StartOffset,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
		}
		app.KafkaConsumer = kafka.NewConsumer(&kafkaCfg, usecase.NewProductEventHandler(repo, logg), logg)
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if app.KafkaConsumer != nil {
			if err := app.KafkaConsumer.Close(); err != nil {
				logg.Warnf(ctx, "kafka consumer close error: %v", err)
			}
		}
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// newMetricsServer — отдельный сервер /metrics, если адрес задан и не совпадает с основным.
func newMetricsServer(addr, httpAddr string, readHeaderTimeout time.Duration) *http.Server {
	if addr == "" || addr == httpAddr {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: readHeaderTimeout}
}

// Run — запускает HTTP-серверы и консьюмера; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 3)

	// Запуск консьюмера.
	if a.KafkaConsumer != nil {
		go func() {
			a.Logger.Infof(ctx, "kafka consumer starting")
			if err := a.KafkaConsumer.Run(ctx); err != nil {
				errCh <- err
			}
		}()
	}

	// Запуск HTTP-серверов.
	for _, srv := range a.servers() {
		srv := srv
		go func() {
			a.Logger.Infof(ctx, "http server starting (addr=%s)", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	// Ожидание сигнала остановки или фоновой ошибки.
	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Errorf(ctx, "background error: %v", err)
			runErr = err
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-серверов.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	for _, srv := range a.servers() {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warnf(ctx, "http server %s shutdown failed: %v", srv.Addr, err)
		} else {
			a.Logger.Infof(ctx, "http server %s stopped gracefully", srv.Addr)
		}
	}

	// Остановка Kafka-консьюмера
	if a.KafkaConsumer != nil {
		if err := a.KafkaConsumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return runErr
}

func (a *App) servers() []*http.Server {
	servers := []*http.Server{a.HTTPServer}
	if a.MetricsServer != nil {
		servers = append(servers, a.MetricsServer)
	}
	return servers
}
