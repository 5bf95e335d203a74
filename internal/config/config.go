package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	configPathEnv     = "ARTICLES_EXPLORER_CONFIG"
	dotenvPathEnv     = "ARTICLES_EXPLORER_DOTENV"
	logLevelEnv       = "LOG_LEVEL"
	httpAddrEnv       = "HTTP_ADDR"
	storageBackendEnv = "STORAGE_BACKEND"
	storagePathEnv    = "STORAGE_PATH"
	databaseDSNEnv    = "DATABASE_DSN"
	redisAddrEnv      = "REDIS_ADDR"
	redisDBEnv        = "REDIS_DB"
	redisPasswordEnv  = "REDIS_PASSWORD"
	catalogPathEnv    = "CATALOG_PATH"
)

// Storage backend names understood by the storage registry.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	Search  SearchConfig  `yaml:"search"`
	Storage StorageConfig `yaml:"storage"`
	Catalog CatalogConfig `yaml:"catalog"`
}

// LoggingConfig selects the minimum log level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// ServerConfig describes the HTTP listener and viewer cookie.
type ServerConfig struct {
	Addr       string `yaml:"addr"`
	CookieName string `yaml:"cookieName"`
}

// SearchConfig tunes the search surface. Zero means "use the default" for
// both fields; minQueryLength 1 searches on any non-blank query, which is
// the loosest gate, since blank queries never match.
type SearchConfig struct {
	PreviewLimit   int `yaml:"previewLimit"`
	MinQueryLength int `yaml:"minQueryLength"`
}

// StorageConfig picks where interaction state is persisted.
type StorageConfig struct {
	Backend   string      `yaml:"backend"`
	Path      string      `yaml:"path"`
	DSN       string      `yaml:"dsn"`
	Namespace string      `yaml:"namespace"`
	Redis     RedisConfig `yaml:"redis"`
}

// RedisConfig describes the Redis connection for the redis backend.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	DB       int    `yaml:"db"`
	Password string `yaml:"password"`
}

// CatalogConfig optionally replaces the bundled catalog with a YAML file.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// Load reads YAML configuration (if present), an optional .env file, and applies environment overrides.
func Load() Config {
	cfg := Default()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	loadDotenv()
	cfg.applyEnvOverrides()
	cfg.normalize()

	return cfg
}

// loadDotenv populates unset environment variables from .env; a missing file is fine.
func loadDotenv() {
	path := os.Getenv(dotenvPathEnv)
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		log.Printf("config: cannot load %s: %v", path, err)
	}
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(httpAddrEnv); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(storageBackendEnv); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv(storagePathEnv); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Storage.DSN = v
	}
	if v := os.Getenv(redisAddrEnv); v != "" {
		c.Storage.Redis.Addr = v
	}
	if v := os.Getenv(redisDBEnv); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			c.Storage.Redis.DB = db
		} else {
			log.Printf("config: invalid %s=%q, keeping %d", redisDBEnv, v, c.Storage.Redis.DB)
		}
	}
	if v := os.Getenv(redisPasswordEnv); v != "" {
		c.Storage.Redis.Password = v
	}
	if v := os.Getenv(catalogPathEnv); v != "" {
		c.Catalog.Path = v
	}
}

func (c *Config) normalize() {
	def := Default()
	if c.Search.PreviewLimit <= 0 {
		log.Printf("config: previewLimit %d is not positive, reverting to %d", c.Search.PreviewLimit, def.Search.PreviewLimit)
		c.Search.PreviewLimit = def.Search.PreviewLimit
	}
	if c.Search.MinQueryLength <= 0 {
		c.Search.MinQueryLength = def.Search.MinQueryLength
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = def.Storage.Backend
	}
	if c.Server.CookieName == "" {
		c.Server.CookieName = def.Server.CookieName
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if override.Server.Addr != "" {
		base.Server.Addr = override.Server.Addr
	}
	if override.Server.CookieName != "" {
		base.Server.CookieName = override.Server.CookieName
	}

	if override.Search.PreviewLimit != 0 {
		base.Search.PreviewLimit = override.Search.PreviewLimit
	}
	if override.Search.MinQueryLength != 0 {
		base.Search.MinQueryLength = override.Search.MinQueryLength
	}

	if override.Storage.Backend != "" {
		base.Storage.Backend = override.Storage.Backend
	}
	if override.Storage.Path != "" {
		base.Storage.Path = override.Storage.Path
	}
	if override.Storage.DSN != "" {
		base.Storage.DSN = override.Storage.DSN
	}
	if override.Storage.Namespace != "" {
		base.Storage.Namespace = override.Storage.Namespace
	}
	if override.Storage.Redis.Addr != "" {
		base.Storage.Redis = override.Storage.Redis
	}

	if override.Catalog.Path != "" {
		base.Catalog.Path = override.Catalog.Path
	}

	return base
}

// Default returns the configuration used when nothing else is provided.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Server:  ServerConfig{Addr: ":8080", CookieName: "articles_profile"},
		Search:  SearchConfig{PreviewLimit: 5, MinQueryLength: 2},
		Storage: StorageConfig{
			Backend: BackendFile,
			Path:    "articles-state.json",
			DSN:     "file:articles-state.db",
			Redis:   RedisConfig{Addr: "localhost:6379"},
		},
	}
}
