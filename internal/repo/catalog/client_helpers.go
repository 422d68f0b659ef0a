package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"os"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/similar_products/internal/domain"
)

const (
	maxBodyBytes      = 1 << 20
	maxErrorBodyBytes = 512
)

// detailPayload — карточка в формате каталога.
type detailPayload struct {
	ID           flexibleID          `json:"id"`
	Name         *string             `json:"name"`
	Price        decimal.NullDecimal `json:"price"`
	Availability bool                `json:"availability"`
}

// validate — name и неотрицательная price обязательны.
func (p detailPayload) validate() error {
	switch {
	case p.Name == nil:
		return errors.New("missing name")
	case !p.Price.Valid:
		return errors.New("missing price")
	case p.Price.Decimal.IsNegative():
		return errors.Errorf("negative price %s", p.Price.Decimal)
	}
	return nil
}

func (p detailPayload) toDomain(requestedID string) domain.ProductDetail {
	id := string(p.ID)
	if id == "" {
		id = requestedID
	}
	return domain.ProductDetail{
		ID:           id,
		Name:         *p.Name,
		Price:        p.Price.Decimal,
		Availability: p.Availability,
	}
}

type validator interface {
	validate() error
}

// flexibleID — идентификатор, который каталог может прислать числом или строкой.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexibleID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrap(err, "id must be a string or a number")
	}
	*f = flexibleID(n.String())
	return nil
}

// decodeBody — строгий разбор одного JSON-значения без хвоста; null вместо значения — ошибка.
func decodeBody(body io.Reader, dst any) error {
	dec := json.NewDecoder(io.LimitReader(body, maxBodyBytes))
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if err := dec.Decode(new(json.RawMessage)); err != io.EOF {
		if err != nil && isTimeout(err) {
			return err
		}
		return errors.New("trailing data after JSON value")
	}
	if bytes.Equal(raw, []byte("null")) {
		return errors.New("null body")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return err
	}
	if v, ok := dst.(validator); ok {
		return v.validate()
	}
	return nil
}

// readErrorBody — обрезанное тело ответа с ошибкой для логов и текста ошибки.
func readErrorBody(body io.Reader) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBodyBytes))
	return strings.TrimSpace(string(raw)), err
}

// drain — дочитывает тело, чтобы соединение вернулось в пул.
func drain(body io.Reader) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, maxBodyBytes))
}

// classifyTransportError — таймауты (подключение, ответ, дедлайн) → ErrUpstreamTimeout,
// остальное → UpstreamError без статуса.
func classifyTransportError(op string, err error) error {
	if isTimeout(err) {
		return errors.Wrap(domain.ErrUpstreamTimeout, op)
	}
	return &domain.UpstreamError{Op: op, Err: err}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// outcome — метка исхода для метрик.
func outcome(err error) string {
	var notFound *domain.NotFoundError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &notFound):
		return "not_found"
	case errors.Is(err, domain.ErrUpstreamTimeout):
		return "timeout"
	default:
		return "error"
	}
}
