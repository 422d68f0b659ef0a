package ports

import "context"

// ProductIDValidator — проверка идентификатора товара до обращения к кэшу и каталогу.
type ProductIDValidator interface {
	Validate(ctx context.Context, productID string) error
}
