// Package config carga la configuración del servicio: defaults, archivo YAML
// opcional y overrides por variables de entorno (en ese orden).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Storage   StorageConfig   `yaml:"storage"`
	Recency   RecencyConfig   `yaml:"recency"`
	Adoptions AdoptionsConfig `yaml:"adoptions"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	// TrustProxy habilita X-Forwarded-For/X-Real-IP para la IP del cliente.
	// Solo detrás de un proxy que reescriba esos headers.
	TrustProxy   bool          `yaml:"trust_proxy"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	// PageSize es el tamaño de página por defecto del listado.
	PageSize int `yaml:"page_size"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	App    string `yaml:"app"`
}

// Catalog sources soportadas.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceHTTP     = "http"
	SourceS3       = "s3"
)

type CatalogConfig struct {
	Source string `yaml:"source"`
	// Path es el archivo local (file) o, con source http, el documento
	// relativo a URL.
	Path    string        `yaml:"path"`
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
	S3      S3Config      `yaml:"s3"`
}

type S3Config struct {
	Bucket    string `yaml:"bucket"`
	Key       string `yaml:"key"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	PathStyle bool   `yaml:"path_style"`
}

// Storage drivers para las listas de recientes.
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

type StorageConfig struct {
	Driver     string `yaml:"driver"`
	SQLitePath string `yaml:"sqlite_path"`
	DSN        string `yaml:"dsn"`
}

type RecencyConfig struct {
	Cap            int `yaml:"cap"`
	CachedVisitors int `yaml:"cached_visitors"`
}

type AdoptionsConfig struct {
	// RatePerMinute por IP; 0 desactiva el límite.
	RatePerMinute int `yaml:"rate_per_minute"`
	Burst         int `yaml:"burst"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			PageSize:     12,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			App:    "pet-adoption-catalog",
		},
		Catalog: CatalogConfig{
			Source:  SourceEmbedded,
			Timeout: 10 * time.Second,
		},
		Storage: StorageConfig{
			Driver:     StorageMemory,
			SQLitePath: "data/pet-adoption.db",
		},
		Recency: RecencyConfig{
			Cap:            3,
			CachedVisitors: 4096,
		},
		Adoptions: AdoptionsConfig{
			RatePerMinute: 10,
			Burst:         3,
		},
	}
}

// Load arma la config: defaults, luego path (si no es vacío), luego env.
func Load(path string) (*Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type lookupFunc func(string) (string, bool)

func (c *Config) applyEnv(lookup lookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", key, err)
		}
		*dst = n
		return nil
	}

	if v, ok := lookup("PORT"); ok && strings.TrimSpace(v) != "" {
		c.Server.Addr = ":" + strings.TrimSpace(v)
	}
	if v, ok := lookup("TRUST_PROXY"); ok {
		c.Server.TrustProxy = strings.EqualFold(strings.TrimSpace(v), "true")
	}
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)
	str("APP_NAME", &c.Log.App)

	str("CATALOG_SOURCE", &c.Catalog.Source)
	str("CATALOG_PATH", &c.Catalog.Path)
	str("CATALOG_URL", &c.Catalog.URL)
	str("CATALOG_S3_BUCKET", &c.Catalog.S3.Bucket)
	str("CATALOG_S3_KEY", &c.Catalog.S3.Key)
	str("CATALOG_S3_REGION", &c.Catalog.S3.Region)
	str("CATALOG_S3_ENDPOINT", &c.Catalog.S3.Endpoint)
	if v, ok := lookup("CATALOG_S3_PATH_STYLE"); ok {
		c.Catalog.S3.PathStyle = strings.EqualFold(strings.TrimSpace(v), "true")
	}

	str("STORAGE_DRIVER", &c.Storage.Driver)
	str("SQLITE_PATH", &c.Storage.SQLitePath)
	// Compat: DB_DSN sin driver explícito implica postgres.
	if v, ok := lookup("DB_DSN"); ok && strings.TrimSpace(v) != "" {
		c.Storage.DSN = strings.TrimSpace(v)
		if _, explicit := lookup("STORAGE_DRIVER"); !explicit {
			c.Storage.Driver = StoragePostgres
		}
	}

	if err := num("RECENCY_CAP", &c.Recency.Cap); err != nil {
		return err
	}
	if err := num("PAGE_SIZE", &c.Server.PageSize); err != nil {
		return err
	}
	if err := num("ADOPTIONS_RATE_PER_MIN", &c.Adoptions.RatePerMinute); err != nil {
		return err
	}
	return nil
}

func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if c.Server.PageSize < 1 {
		errs = append(errs, errors.New("server.page_size must be >= 1"))
	}
	if c.Recency.Cap < 1 {
		errs = append(errs, errors.New("recency.cap must be >= 1"))
	}
	if c.Adoptions.RatePerMinute < 0 {
		errs = append(errs, errors.New("adoptions.rate_per_minute must be >= 0"))
	}

	switch c.Catalog.Source {
	case SourceEmbedded:
	case SourceFile:
		if c.Catalog.Path == "" {
			errs = append(errs, errors.New("catalog.path is required for file source"))
		}
	case SourceHTTP:
		if c.Catalog.URL == "" {
			errs = append(errs, errors.New("catalog.url is required for http source"))
		}
	case SourceS3:
		if c.Catalog.S3.Bucket == "" || c.Catalog.S3.Key == "" {
			errs = append(errs, errors.New("catalog.s3.bucket and catalog.s3.key are required for s3 source"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown catalog.source %q", c.Catalog.Source))
	}

	switch c.Storage.Driver {
	case StorageMemory, StorageSQLite:
	case StoragePostgres:
		if c.Storage.DSN == "" {
			errs = append(errs, errors.New("storage.dsn is required for postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage.driver %q", c.Storage.Driver))
	}

	return errors.Join(errs...)
}
