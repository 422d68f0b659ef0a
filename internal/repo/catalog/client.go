package catalog

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-faster/errors"

	"github.com/Gunvolt24/similar_products/internal/domain"
	"github.com/Gunvolt24/similar_products/internal/ports"
	"github.com/Gunvolt24/similar_products/pkg/metrics"
)

// Проверка, что Client удовлетворяет порту ProductClient.
var _ ports.ProductClient = (*Client)(nil)

const (
	opDetail     = "detail"
	opSimilarIDs = "similar_ids"

	idPlaceholder = "{id}"

	// DefaultResponseTimeout — время на получение ответа, если в конфиге не задано.
	DefaultResponseTimeout = 5 * time.Second
)

// Config — адрес каталога, шаблоны путей с плейсхолдером {id} и таймауты.
type Config struct {
	BaseURL         string
	DetailPath      string
	SimilarIDsPath  string
	ConnectTimeout  time.Duration
	ResponseTimeout time.Duration
	MaxIdleConns    int
}

// Client — HTTP-клиент каталога товаров. Без состояния, безопасен для конкурентного использования.
type Client struct {
	httpClient      *http.Client
	baseURL         string
	detailPath      string
	similarIDsPath  string
	responseTimeout time.Duration
	log             ports.Logger
}

// NewClient — собирает клиент с собственным транспортом (см. NewHTTPClient).
func NewClient(cfg Config, log ports.Logger) (*Client, error) {
	return NewClientWithHTTP(cfg, NewHTTPClient(cfg.ConnectTimeout, cfg.MaxIdleConns), log)
}

// NewClientWithHTTP — то же, что NewClient, но с переданным *http.Client.
func NewClientWithHTTP(cfg Config, httpClient *http.Client, log ports.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil {
		return nil, errors.Wrap(err, "parse base url")
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("base url %q must be absolute", cfg.BaseURL)
	}

	for name, path := range map[string]string{"detail": cfg.DetailPath, "similar ids": cfg.SimilarIDsPath} {
		if !strings.Contains(path, idPlaceholder) {
			return nil, errors.Errorf("%s path %q must contain %s", name, path, idPlaceholder)
		}
	}

	timeout := cfg.ResponseTimeout
	if timeout <= 0 {
		timeout = DefaultResponseTimeout
	}

	return &Client{
		httpClient:      httpClient,
		baseURL:         strings.TrimRight(base.String(), "/"),
		detailPath:      cfg.DetailPath,
		similarIDsPath:  cfg.SimilarIDsPath,
		responseTimeout: timeout,
		log:             log,
	}, nil
}

// FetchDetail — GET карточки товара.
func (c *Client) FetchDetail(ctx context.Context, productID string) (domain.ProductDetail, error) {
	var payload detailPayload
	if err := c.getJSON(ctx, opDetail, c.detailPath, productID, &payload); err != nil {
		return domain.ProductDetail{}, err
	}
	return payload.toDomain(productID), nil
}

// FetchSimilarIDs — GET идентификаторов похожих товаров в порядке каталога.
func (c *Client) FetchSimilarIDs(ctx context.Context, productID string) ([]string, error) {
	var payload []flexibleID
	if err := c.getJSON(ctx, opSimilarIDs, c.similarIDsPath, productID, &payload); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(payload))
	for _, id := range payload {
		ids = append(ids, string(id))
	}
	return ids, nil
}

// getJSON — один запрос без повторов; всё время до конца чтения тела ограничено responseTimeout.
func (c *Client) getJSON(ctx context.Context, op, pathTemplate, productID string, dst any) (err error) {
	start := time.Now()
	defer func() {
		metrics.UpstreamDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
		metrics.UpstreamRequests.WithLabelValues(op, outcome(err)).Inc()
	}()

	ctx, cancel := context.WithTimeout(ctx, c.responseTimeout)
	defer cancel()

	endpoint := c.endpoint(pathTemplate, productID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return &domain.UpstreamError{Op: op, Err: errors.Wrap(err, "build request")}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransportError(op, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		drain(resp.Body)
		return &domain.NotFoundError{ID: productID}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, readErr := readErrorBody(resp.Body)
		if readErr != nil && isTimeout(readErr) {
			return classifyTransportError(op, readErr)
		}
		c.log.Warnf(ctx, "catalog %s id=%s status=%d body=%q", op, productID, resp.StatusCode, body)
		return &domain.UpstreamError{Op: op, StatusCode: resp.StatusCode, Body: body}
	}

	if err := decodeBody(resp.Body, dst); err != nil {
		if isTimeout(err) {
			return classifyTransportError(op, err)
		}
		return &domain.UpstreamError{Op: op, StatusCode: resp.StatusCode, Err: errors.Wrap(err, "decode body")}
	}
	return nil
}

// endpoint — baseURL + шаблон пути с экранированным id вместо {id}.
func (c *Client) endpoint(pathTemplate, productID string) string {
	path := strings.ReplaceAll(pathTemplate, idPlaceholder, url.PathEscape(productID))
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}
