package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Prefix — префикс переменных окружения сервиса.
const Prefix = "PRODUCT"

type HTTP struct {
	Addr              string        `default:":5000" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"30s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	// HandlerTimeout — ограничение на обработку одного запроса (0 отключает).
	HandlerTimeout  time.Duration `default:"20s" envconfig:"HANDLER_TIMEOUT"`
	GracefulTimeout time.Duration `default:"10s" envconfig:"GRACEFUL_TIMEOUT"`
}

type Metrics struct {
	Addr string `default:":2112" envconfig:"ADDR"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"similar-products" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"OTEL_SAMPLE_RATIO"`
}

// Upstream — внешний каталог товаров. Пути содержат плейсхолдер {id}.
type Upstream struct {
	BaseURL         string        `default:"http://localhost:3001" envconfig:"BASE_URL"`
	DetailPath      string        `default:"/product/{id}" envconfig:"DETAIL_PATH"`
	SimilarIDsPath  string        `default:"/product/{id}/similarids" envconfig:"SIMILAR_IDS_PATH"`
	ConnectTimeout  time.Duration `default:"5000ms" envconfig:"CONNECT_TIMEOUT"`
	ResponseTimeout time.Duration `default:"5s" envconfig:"RESPONSE_TIMEOUT"`
	MaxIdleConns    int           `default:"100" envconfig:"MAX_IDLE_CONNS"`
}

// Aggregate — параллельная загрузка похожих товаров; FanOutLimit <= 0 снимает ограничение.
type Aggregate struct {
	FanOutLimit int `default:"0" envconfig:"FAN_OUT_LIMIT"`
}

// Kafka — события об изменении товаров для сброса кэша.
type Kafka struct {
	Enabled        bool          `default:"false" envconfig:"ENABLED"`
	Brokers        []string      `default:"kafka:9092" envconfig:"BROKERS"`
	Topic          string        `default:"product-changes" envconfig:"TOPIC"`
	GroupID        string        `default:"similar-products" envconfig:"GROUP_ID"`
	StartOffset    string        `default:"last" envconfig:"START_OFFSET"`
	ProcessTimeout time.Duration `default:"5s" envconfig:"PROCESS_TIMEOUT"`
	RetryInitial   time.Duration `default:"1s" envconfig:"RETRY_INITIAL"`
	RetryMax       time.Duration `default:"30s" envconfig:"RETRY_MAX"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

type Config struct {
	HTTP      HTTP
	Metrics   Metrics
	Tracing   Tracing
	Upstream  Upstream
	Aggregate Aggregate
	Kafka     Kafka
	Logger    Logger
}

// Load — конфиг из переменных окружения с префиксом PRODUCT.
func Load() (Config, error) {
	return LoadWithPrefix(Prefix)
}

// LoadWithPrefix — то же с произвольным префиксом (тесты).
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config

	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}

	return c, nil
}
