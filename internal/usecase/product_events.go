package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Gunvolt24/similar_products/internal/domain"
	"github.com/Gunvolt24/similar_products/internal/ports"
)

// productChanged — событие изменения товара в каталоге.
type productChanged struct {
	ProductID json.RawMessage `json:"product_id"`
}

// ProductEventHandler — сбрасывает кэши товара по событиям из очереди.
type ProductEventHandler struct {
	repo ports.ProductRepository
	log  ports.Logger
}

// NewProductEventHandler — DI-конструктор.
func NewProductEventHandler(repo ports.ProductRepository, log ports.Logger) *ProductEventHandler {
	return &ProductEventHandler{repo: repo, log: log}
}

// HandleMessage — принимает {"product_id": "1"}, {"product_id": 1}, "1" или просто 1.
// Нечитаемое событие → domain.ErrInvalidEvent, невалидный id → domain.ErrInvalidProductID.
func (h *ProductEventHandler) HandleMessage(ctx context.Context, raw []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	productID, err := parseProductEvent(raw)
	if err != nil {
		h.log.Warnf(ctx, "invalid product event err=%v", err)
		return err
	}

	if err := h.repo.Invalidate(ctx, productID); err != nil {
		return fmt.Errorf("invalidate product %q: %w", productID, err)
	}
	return nil
}

func parseProductEvent(raw []byte) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "", fmt.Errorf("%w: empty message", domain.ErrInvalidEvent)
	}

	switch trimmed[0] {
	case '{':
	case '"':
		var id string
		if err := json.Unmarshal(trimmed, &id); err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrInvalidEvent, err)
		}
		return id, nil
	default:
		return strings.TrimSpace(string(trimmed)), nil
	}

	var event productChanged
	if err := json.Unmarshal(trimmed, &event); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidEvent, err)
	}
	if len(event.ProductID) == 0 {
		return "", fmt.Errorf("%w: product_id is required", domain.ErrInvalidEvent)
	}

	var asString string
	if err := json.Unmarshal(event.ProductID, &asString); err == nil {
		return asString, nil
	}
	var asNumber json.Number
	if err := json.Unmarshal(event.ProductID, &asNumber); err == nil {
		return asNumber.String(), nil
	}
	return "", fmt.Errorf("%w: product_id must be a string or a number", domain.ErrInvalidEvent)
}
