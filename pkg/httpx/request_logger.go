package httpx

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/similar_products/internal/ports"
	"github.com/Gunvolt24/similar_products/pkg/ctxmeta"
)

// RequestLogger — middleware для логирования HTTP-запросов.
// request_id и trace_id добавляет сам логгер из контекста.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// не логируем служебные маршруты
		switch c.FullPath() {
		case "/metrics", "/ping":
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		sp, _ := ctxmeta.SpanIDFromContext(c.Request.Context())

		log.Infof(
			c.Request.Context(),
			"request span=%s method=%s path=%s product_id=%s accept=%q status=%d ip=%s duration=%s size=%d",
			sp,
			c.Request.Method,
			path,
			c.Param("id"),
			c.GetHeader("Accept"),
			c.Writer.Status(),
			c.ClientIP(),
			time.Since(start),
			c.Writer.Size(),
		)
	}
}
