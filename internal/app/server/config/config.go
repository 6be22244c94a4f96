package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = "../../.env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

const (
	defaultRunAddress   = ":8000"
	defaultMigrations   = "migrations"
	defaultPublicURL    = "http://localhost:5173"
	defaultAuthUsers    = "user:user123,admin:admin123"
	defaultReadTimeout  = 15
	defaultWriteTimeout = 60
)

type Config struct {
	Env       string
	Storage   string
	PublicURL string
	AuthUsers map[string]string
	DB        db
	Server    server
	Logger    logger
}

type db struct {
	DatabaseURI string
	Migrations  string
}

type server struct {
	RunAddress   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type logger struct {
	LogLevel string
}

// MustLoad читает .env, если он есть, и переменные окружения
func MustLoad() *Config {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			log.Fatalf("load .env: %v", err)
		}
	}

	cfg, err := Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("app_env", EnvProd)
	viper.SetDefault("run_address", defaultRunAddress)
	viper.SetDefault("migrations_path", defaultMigrations)
	viper.SetDefault("public_url", defaultPublicURL)
	viper.SetDefault("auth_users", defaultAuthUsers)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("read_timeout_seconds", defaultReadTimeout)
	viper.SetDefault("write_timeout_seconds", defaultWriteTimeout)

	users, err := ParseUsers(viper.GetString("auth_users"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:       viper.GetString("app_env"),
		Storage:   viper.GetString("storage"),
		PublicURL: strings.TrimRight(viper.GetString("public_url"), "/"),
		AuthUsers: users,
		DB: db{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server: server{
			RunAddress:   viper.GetString("run_address"),
			ReadTimeout:  time.Duration(viper.GetInt("read_timeout_seconds")) * time.Second,
			WriteTimeout: time.Duration(viper.GetInt("write_timeout_seconds")) * time.Second,
		},
		Logger: logger{LogLevel: viper.GetString("log_level")},
	}

	if cfg.Storage == "" {
		cfg.Storage = StorageMemory
		if cfg.DB.DatabaseURI != "" {
			cfg.Storage = StoragePostgres
		}
	}

	switch cfg.Storage {
	case StorageMemory:
	case StoragePostgres:
		if cfg.DB.DatabaseURI == "" {
			return nil, fmt.Errorf("DATABASE_URI is required for postgres storage")
		}
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}

	return cfg, nil
}

// ParseUsers разбирает список вида "user:pass,admin:pass"
func ParseUsers(raw string) (map[string]string, error) {
	users := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, pass, ok := strings.Cut(pair, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" || pass == "" {
			return nil, fmt.Errorf("bad AUTH_USERS entry %q", pair)
		}
		users[name] = pass
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("AUTH_USERS is empty")
	}
	return users, nil
}
