package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	CatalogSourceFixture  = "fixture"
	CatalogSourcePostgres = "postgres"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
	Catalog  CatalogConfig
	Ranking  RankingConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
	AllowOrigins   []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type SessionConfig struct {
	Secret string
	TTL    time.Duration
	// how often idle session histories are dropped
	PruneInterval time.Duration
	// shared key for the admin routes; empty disables them
	AdminKey string
}

type CatalogConfig struct {
	// fixture or postgres
	Source string
	// optional YAML file replacing the embedded fixture
	File string
}

type RankingConfig struct {
	DefaultProfile string
	TopN           int
	HistoryLimit   int
	// profiles are stored in postgres; without a database only compiled-in defaults apply
	UseProfiles bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	topN, err := getEnvInt("RANKING_TOP_N", 3)
	if err != nil {
		return nil, err
	}

	historyLimit, err := getEnvInt("HISTORY_LIMIT", 5)
	if err != nil {
		return nil, err
	}

	sessionTTL, err := getEnvDuration("SESSION_TTL", 12*time.Hour)
	if err != nil {
		return nil, err
	}

	pruneInterval, err := getEnvDuration("SESSION_PRUNE_INTERVAL", 10*time.Minute)
	if err != nil {
		return nil, err
	}

	requestTimeout, err := getEnvDuration("REQUEST_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	useProfiles, err := strconv.ParseBool(getEnv("RANKING_USE_PROFILES", "false"))
	if err != nil {
		return nil, errors.New("invalid RANKING_USE_PROFILES")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Store Ranker API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RequestTimeout: requestTimeout,
			AllowOrigins:   []string{"http://localhost:3000", "http://localhost:8080"},
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "store_ranker"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Session: SessionConfig{
			Secret:        getEnv("SESSION_SECRET", ""),
			TTL:           sessionTTL,
			PruneInterval: pruneInterval,
			AdminKey:      getEnv("ADMIN_API_KEY", ""),
		},
		Catalog: CatalogConfig{
			Source: getEnv("CATALOG_SOURCE", CatalogSourceFixture),
			File:   getEnv("CATALOG_FILE", ""),
		},
		Ranking: RankingConfig{
			DefaultProfile: getEnv("RANKING_PROFILE", "default"),
			TopN:           topN,
			HistoryLimit:   historyLimit,
			UseProfiles:    useProfiles,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.Session.Secret == "" {
		return errors.New("missing session secret")
	}

	switch c.Catalog.Source {
	case CatalogSourceFixture, CatalogSourcePostgres:
	default:
		return fmt.Errorf("unknown catalog source %q", c.Catalog.Source)
	}

	if c.NeedsDatabase() && c.Database.Password == "" {
		return errors.New("missing database password")
	}

	if c.Session.TTL <= 0 || c.Session.PruneInterval <= 0 {
		return errors.New("session ttl and prune interval must be positive")
	}

	if c.Ranking.TopN <= 0 {
		return errors.New("ranking top n must be positive")
	}

	if c.Ranking.HistoryLimit <= 0 {
		return errors.New("history limit must be positive")
	}

	return nil
}

// NeedsDatabase reports whether any configured component reads postgres.
func (c *Config) NeedsDatabase() bool {
	return c.Catalog.Source == CatalogSourcePostgres || c.Ranking.UseProfiles
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return n, nil
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return d, nil
}
