package logger

import (
	"context"

	"go.uber.org/zap"

	"github.com/Gunvolt24/similar_products/pkg/ctxmeta"
)

// ZapLogger — реализация ports.Logger поверх zap.
// Метаданные запроса из контекста попадают в поля записи.
type ZapLogger struct {
	base   *zap.Logger
	sugar  *zap.SugaredLogger
	isProd bool
}

func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if isProd {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, nil, err
	}

	loggerWrap := newZapLogger(logger, isProd)
	cleanup := func() error { return loggerWrap.base.Sync() }
	return loggerWrap, cleanup, nil
}

// NewFromZap — обёртка над готовым *zap.Logger (тесты, observer).
func NewFromZap(base *zap.Logger) *ZapLogger {
	return newZapLogger(base, false)
}

func newZapLogger(base *zap.Logger, isProd bool) *ZapLogger {
	return &ZapLogger{base: base, sugar: base.Sugar(), isProd: isProd}
}

func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.with(ctx).Infof(format, args...)
}
func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Warnf(format, args...)
}
func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Errorf(format, args...)
}

func (z *ZapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return z.sugar
	}
	fields := make([]any, 0, 6)
	if v, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		fields = append(fields, "request_id", v)
	}
	if v, ok := ctxmeta.ProductIDFromContext(ctx); ok {
		fields = append(fields, "product_id", v)
	}
	if v, ok := ctxmeta.TraceIDFromContext(ctx); ok {
		fields = append(fields, "trace_id", v)
	}
	if len(fields) == 0 {
		return z.sugar
	}
	return z.sugar.With(fields...)
}

func (z *ZapLogger) Base() *zap.Logger           { return z.base }
func (z *ZapLogger) Sugared() *zap.SugaredLogger { return z.sugar }
