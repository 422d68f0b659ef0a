// Пакет ctxmeta — метаданные запроса в context.Context (request_id, product_id, trace_id).
// HTTP-слой и логгер зависят от него, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	KeyRequestID ctxKey = "request_id"
	KeyProductID ctxKey = "product_id"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withString(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return stringFrom(ctx, KeyRequestID)
}

// WithProductID кладёт id товара, которым занят запрос.
func WithProductID(ctx context.Context, productID string) context.Context {
	return withString(ctx, KeyProductID, productID)
}

func ProductIDFromContext(ctx context.Context) (string, bool) {
	return stringFrom(ctx, KeyProductID)
}

func withString(ctx context.Context, key ctxKey, v string) context.Context {
	if ctx == nil || v == "" {
		return ctx
	}
	return context.WithValue(ctx, key, v)
}

func stringFrom(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
