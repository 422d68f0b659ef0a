package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/similar_products/internal/domain"
	"github.com/Gunvolt24/similar_products/internal/ports"
	"github.com/Gunvolt24/similar_products/internal/usecase"
	"github.com/Gunvolt24/similar_products/pkg/ctxmeta"
)

const mimeNDJSON = "application/x-ndjson"

// Handler — HTTP-обработчики поверх шины запросов.
type Handler struct {
	bus     ports.QueryDispatcher
	log     ports.Logger
	timeout time.Duration // 0 — без ограничения
}

// NewHandler — timeout ограничивает обработку одного запроса.
func NewHandler(bus ports.QueryDispatcher, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{bus: bus, log: log, timeout: timeout}
}

// productDetailResponse — карточка в ответе; цена отдаётся JSON-числом без потери точности.
type productDetailResponse struct {
	Name         string      `json:"name"`
	Price        json.Number `json:"price"`
	Availability bool        `json:"availability"`
}

func toProductDetailResponse(d domain.ProductDetail) productDetailResponse {
	return productDetailResponse{
		Name:         d.Name,
		Price:        json.Number(d.Price.String()),
		Availability: d.Availability,
	}
}

// GET /product/:id
func (h *Handler) getProductDetail(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	detail, err := usecase.Ask[domain.ProductDetail](ctx, h.bus, domain.GetProductDetail{ProductID: c.Param("id")})
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductDetailResponse(detail))
}

// GET /product/:id/similarids — JSON-массив; склейка строкой, если клиент принимает только text/plain.
func (h *Handler) getSimilarProductIDs(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	ids, err := usecase.Ask[[]string](ctx, h.bus, domain.GetSimilarProductIDs{ProductID: c.Param("id")})
	if err != nil {
		h.renderError(c, err)
		return
	}

	if c.NegotiateFormat(gin.MIMEJSON, gin.MIMEPlain) == gin.MIMEPlain {
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(strings.Join(ids, "")))
		return
	}
	if ids == nil {
		ids = []string{}
	}
	c.JSON(http.StatusOK, ids)
}

// GET /product/:id/similar — карточки в порядке готовности: JSON-массив или NDJSON по мере получения.
func (h *Handler) getSimilarProducts(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	stream, err := usecase.Ask[<-chan domain.ProductDetail](ctx, h.bus, domain.GetSimilarProducts{ProductID: c.Param("id")})
	if err != nil {
		h.renderError(c, err)
		return
	}

	if c.NegotiateFormat(gin.MIMEJSON, mimeNDJSON) == mimeNDJSON {
		h.streamNDJSON(ctx, c, stream)
		return
	}

	details, err := usecase.Collect(ctx, stream)
	if err != nil {
		h.renderError(c, err)
		return
	}
	resp := make([]productDetailResponse, 0, len(details))
	for _, d := range details {
		resp = append(resp, toProductDetailResponse(d))
	}
	c.JSON(http.StatusOK, resp)
}

// streamNDJSON — по строке на карточку, с flush после каждой; уход клиента отменяет ctx.
func (h *Handler) streamNDJSON(ctx context.Context, c *gin.Context, stream <-chan domain.ProductDetail) {
	c.Header("Content-Type", mimeNDJSON)
	c.Status(http.StatusOK)
	c.Writer.WriteHeaderNow()

	enc := json.NewEncoder(c.Writer)
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-stream:
			if !ok {
				return
			}
			if err := enc.Encode(toProductDetailResponse(d)); err != nil {
				h.log.Warnf(ctx, "ndjson write failed: %v", err)
				return
			}
			c.Writer.Flush()
		}
	}
}

func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	ctx := ctxmeta.WithProductID(c.Request.Context(), c.Param("id"))
	if h.timeout > 0 {
		return context.WithTimeout(ctx, h.timeout)
	}
	return context.WithCancel(ctx)
}
