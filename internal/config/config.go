package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Data sources for the reference datasets.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Config is read from a YAML file; every value can be overridden by the
// environment variable named in its env tag.
type Config struct {
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default level when set.
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	HTTP struct {
		Addr              string        `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout bounds a single request, including a synchronous analysis.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		MaxHeaderBytes int           `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		MetricsPath    string        `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	Database struct {
		Username           string        `env:"DATABASE_USERNAME" env-default:"evdemand" yaml:"username"`
		Password           string        `env:"DATABASE_PASSWORD" env-default:"evdemand" yaml:"password"`
		Host               string        `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		Port               int           `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		SslMode            string        `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		DatabaseName       string        `env:"DATABASE_NAME" env-default:"evdemand" yaml:"name"`
		MaxOpenConnections int           `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		MaxIdleConnections int           `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"2" yaml:"maxIdleConnections"`
		ConnMaxLifetime    time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		ConnMaxIdleTime    time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Data locates the public CSV exports. Source selects whether analyses
	// read reference data straight from the files or from the tables filled
	// by the import command.
	Data struct {
		Source         string `env:"DATA_SOURCE" env-default:"postgres" yaml:"source"`
		StationsPath   string `env:"DATA_STATIONS_PATH" env-default:"datasets/Ladesaeulenregister.csv" yaml:"stationsPath"`
		PopulationPath string `env:"DATA_POPULATION_PATH" env-default:"datasets/plz_einwohner.csv" yaml:"populationPath"`
		GeoDataPath    string `env:"DATA_GEODATA_PATH" env-default:"datasets/geodata_berlin_plz.csv" yaml:"geoDataPath"`
	} `yaml:"data"`

	Worker struct {
		MaxWorkers  int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// RefreshInterval schedules a full re-analysis. Unset disables it.
		RefreshInterval time.Duration `env:"WORKER_REFRESH_INTERVAL" yaml:"refreshInterval"`
	} `yaml:"worker"`

	Kafka struct {
		Enabled      bool          `env:"KAFKA_ENABLED" env-default:"false" yaml:"enabled"`
		Brokers      []string      `env:"KAFKA_BROKERS" env-default:"localhost:9092" env-separator:"," yaml:"brokers"`
		Topic        string        `env:"KAFKA_TOPIC" env-default:"evdemand.events" yaml:"topic"`
		WriteTimeout time.Duration `env:"KAFKA_WRITE_TIMEOUT" env-default:"10s" yaml:"writeTimeout"`
	} `yaml:"kafka"`

	JWT struct {
		// PublicKey verifies API tokens. An empty key disables authentication.
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is only needed by the jwt command.
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load reads the YAML file at configPath and applies environment overrides.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Data.Source {
	case SourceCSV, SourcePostgres:
	default:
		return fmt.Errorf("invalid data source %q, want %q or %q", c.Data.Source, SourceCSV, SourcePostgres)
	}
	if c.Worker.MaxWorkers <= 0 {
		return fmt.Errorf("worker.maxWorkers must be positive, got %d", c.Worker.MaxWorkers)
	}

	return nil
}
