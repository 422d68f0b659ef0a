package domain

// QueryKind — тег запроса на чтение, по которому шина выбирает обработчик.
type QueryKind string

const (
	QueryProductDetail     QueryKind = "product_detail"
	QuerySimilarProductIDs QueryKind = "similar_product_ids"
	QuerySimilarProducts   QueryKind = "similar_products"
)

// Query — запрос на чтение, отправляемый через шину.
type Query interface {
	Kind() QueryKind
}

// GetProductDetail — карточка товара по идентификатору.
type GetProductDetail struct {
	ProductID string
}

func (GetProductDetail) Kind() QueryKind { return QueryProductDetail }

// GetSimilarProductIDs — идентификаторы похожих товаров.
type GetSimilarProductIDs struct {
	ProductID string
}

func (GetSimilarProductIDs) Kind() QueryKind { return QuerySimilarProductIDs }

// GetSimilarProducts — поток карточек похожих товаров.
type GetSimilarProducts struct {
	ProductID string
}

func (GetSimilarProducts) Kind() QueryKind { return QuerySimilarProducts }
