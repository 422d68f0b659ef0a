package validate

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Gunvolt24/similar_products/internal/domain"
	"github.com/Gunvolt24/similar_products/internal/ports"
)

// Проверка, что ProductIDValidator удовлетворяет порту валидатора.
var _ ports.ProductIDValidator = (*ProductIDValidator)(nil)

var digitsOnly = regexp.MustCompile(`^\d+$`)

// ProductID — true, если после обрезки пробелов строка состоит только из цифр
// и её значение больше нуля. Число, не влезающее в int64, считается невалидным.
func ProductID(raw string) bool {
	id := strings.TrimSpace(raw)
	if !digitsOnly.MatchString(id) {
		return false
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return false
	}
	return n > 0
}

// ProductIDValidator — адаптер ProductID под порт ports.ProductIDValidator.
type ProductIDValidator struct{}

// NewProductIDValidator — конструктор ProductIDValidator.
func NewProductIDValidator() *ProductIDValidator { return &ProductIDValidator{} }

// Validate — возвращает domain.ErrInvalidProductID (с обёрнутым значением), если id невалиден.
func (v *ProductIDValidator) Validate(_ context.Context, productID string) error {
	if !ProductID(productID) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidProductID, productID)
	}
	return nil
}
