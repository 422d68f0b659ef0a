package kafka

import (
	"context"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/similar_products/internal/domain"
	"github.com/Gunvolt24/similar_products/pkg/metrics"
)

// isPoison — событие, которое никогда не обработается успешно.
func isPoison(err error) bool {
	return errors.Is(err, domain.ErrInvalidEvent) || errors.Is(err, domain.ErrInvalidProductID)
}

// handleMessage обрабатывает одно сообщение и определяет нужно ли коммитить оффсет.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) bool {
	ctxTimeout, cancel := context.WithTimeout(ctx, c.processTimeout)
	err := c.handler.HandleMessage(ctxTimeout, msg.Value)
	cancel()

	switch {
	case err == nil:
		// Кэш сброшен: фиксируем метрику и коммитим оффсет
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return true
	case isPoison(err):
		// Нечитаемое событие или невалидный id: логируем и коммитим
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "invalid event partition=%d offset=%d key=%q: %v (skipped)", msg.Partition, msg.Offset, msg.Key, err)
		return true
	default:
		// Временная ошибка (таймаут обработки и т.п.): НЕ коммитим, событие придёт снова
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "process failed offset=%d: %v (will retry without commit)", msg.Offset, err)
		return false
	}
}

// commitSafely пытается закоммитить оффсет и залогировать ошибку.
func (c *Consumer) commitSafely(ctx context.Context, msg *kafka.Message) {
	if commitErr := c.reader.CommitMessages(ctx, *msg); commitErr != nil {
		c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, commitErr)
	}
}

// sleepWithBackoff ждет backoff или останавливается по контексту.
func (c *Consumer) sleepWithBackoff(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

// nextBackoff возвращает следующее время ожидания повтора с учетом retryMax.
func (c *Consumer) nextBackoff(current time.Duration) time.Duration {
	current *= 2
	if current > c.retryMax {
		return c.retryMax
	}
	return current
}

// withJitterEqual — умеренная случайность: половина задержки фиксирована,
// вторая половина — случайная. Баланс между стабильностью и случайностью.
func (c *Consumer) withJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	jitter := time.Duration(c.jitterRand.Int63n(int64(d-half) + 1))
	return half + jitter
}

// minDuration возвращает минимальное время из двух.
func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
