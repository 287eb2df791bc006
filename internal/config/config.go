package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	defaultAppMode    = "dev"
	defaultAppPort    = "8080"
	defaultAppPath    = "/"
	defaultAppTimeout = 60 * time.Second

	defaultTokenSalt    = "IP03O5Ekg91g5jw=="
	defaultTokenExpires = 3600 * time.Second

	defaultRepositoryTimeout  = 30 * time.Second
	defaultRepositoryPageSize = 100
	defaultRepositoryCacheTTL = 300 * time.Second
)

type (
	Configs struct {
		APP        AppConfig
		TOKEN      TokenConfig
		CURRENCY   ClientConfig
		POSTGRES   StoreConfig
		REPOSITORY RepositoryConfig
	}

	AppConfig struct {
		Mode    string `required:"true"`
		Port    string
		Path    string
		Timeout time.Duration
	}

	TokenConfig struct {
		Salt    string
		Expires time.Duration
	}

	ClientConfig struct {
		URL      string
		Login    string
		Password string
	}

	StoreConfig struct {
		DSN string
	}

	// RepositoryConfig holds the sqlrepo defaults (spec §5 query timeout,
	// §4.5.1 cache TTL), overridable per deployment via REPOSITORY_* env vars.
	RepositoryConfig struct {
		QueryTimeout time.Duration
		PageSize     int
		CacheTTL     time.Duration
	}
)

// New populates Configs struct with values from config file
// located at filepath and environment variables.
func New() (cfg Configs, err error) {
	root, err := os.Getwd()
	if err != nil {
		return
	}
	godotenv.Load(filepath.Join(root, ".env"))

	cfg.APP = AppConfig{
		Mode:    defaultAppMode,
		Port:    defaultAppPort,
		Path:    defaultAppPath,
		Timeout: defaultAppTimeout,
	}

	cfg.TOKEN = TokenConfig{
		Salt:    defaultTokenSalt,
		Expires: defaultTokenExpires,
	}

	cfg.REPOSITORY = RepositoryConfig{
		QueryTimeout: defaultRepositoryTimeout,
		PageSize:     defaultRepositoryPageSize,
		CacheTTL:     defaultRepositoryCacheTTL,
	}

	if err = envconfig.Process("APP", &cfg.APP); err != nil {
		return
	}

	if err = envconfig.Process("CURRENCY", &cfg.CURRENCY); err != nil {
		return
	}

	if err = envconfig.Process("POSTGRES", &cfg.POSTGRES); err != nil {
		return
	}

	if err = envconfig.Process("REPOSITORY", &cfg.REPOSITORY); err != nil {
		return
	}

	return
}
