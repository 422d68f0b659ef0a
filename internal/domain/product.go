package domain

import "github.com/shopspring/decimal"

// ProductDetail — карточка товара, полученная от каталога.
// Создаётся только из успешного ответа и дальше не меняется.
type ProductDetail struct {
	ID           string
	Name         string
	Price        decimal.Decimal
	Availability bool
}
