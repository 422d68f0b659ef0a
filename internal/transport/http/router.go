package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/similar_products/pkg/httpx"
)

// NewRouter — gin-роутер с middleware и маршрутами.
// otelServiceName == "" — без otelgin.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(httpx.RequestIDMiddleware())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(gin.CustomRecovery(h.recoverPanic))
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	product := r.Group("/product/:id")
	product.GET("", h.getProductDetail)
	product.GET("/similarids", h.getSimilarProductIDs)
	product.GET("/similar", h.getSimilarProducts)

	return r
}
