package catalog

import (
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// DefaultConnectTimeout — время на установку TCP-соединения с каталогом.
const DefaultConnectTimeout = 5000 * time.Millisecond

// NewHTTPClient — общий *http.Client для каталога.
// Таймаут подключения задаётся на dialer, таймаут ответа — на каждый вызов через контекст.
// Транспорт обёрнут otelhttp: исходящие запросы попадают в трейс.
func NewHTTPClient(connectTimeout time.Duration, maxIdleConnsPerHost int) *http.Client {
	if connectTimeout <= 0 {
		connectTimeout = DefaultConnectTimeout
	}

	dialer := &net.Dialer{
		Timeout:   connectTimeout,
		KeepAlive: 30 * time.Second,
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = dialer.DialContext
	transport.TLSHandshakeTimeout = connectTimeout
	if maxIdleConnsPerHost > 0 {
		transport.MaxIdleConnsPerHost = maxIdleConnsPerHost
	}

	return &http.Client{Transport: otelhttp.NewTransport(transport)}
}
