package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	defaultServerAddress  = "localhost:8000"
	defaultEnv            = EnvProd
	defaultConfigDir      = ".invtrack"
	defaultAdminSecret    = "admin123"
	defaultPublicURL      = "http://localhost:5173"
	defaultPageSize       = 10
	defaultRequestTimeout = 30
	defaultLang           = "ru"
)

type Config struct {
	Env            string
	ServerAddress  string
	EnableTLS      bool
	ConfigDir      string
	DataPath       string
	AdminSecret    string
	PublicURL      string
	PageSize       int
	RequestTimeout time.Duration
	Lang           string
}

// Load загружает конфигурацию клиента из .env, файла конфигурации viper и
// переменных окружения
func Load() (*Config, error) {
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	viper.SetDefault("ENABLE_TLS", false)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("ADMIN_SECRET", defaultAdminSecret)
	viper.SetDefault("PUBLIC_URL", defaultPublicURL)
	viper.SetDefault("PAGE_SIZE", defaultPageSize)
	viper.SetDefault("REQUEST_TIMEOUT_SECONDS", defaultRequestTimeout)
	viper.SetDefault("LANG", defaultLang)

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		configDir = filepath.Join(homeDir, configDir)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("ошибка создания директории конфигурации: %w", err)
	}

	dataPath := viper.GetString("DATA_PATH")
	if dataPath == "" {
		dataPath = filepath.Join(configDir, "client.db")
	}

	config := &Config{
		Env:            viper.GetString("APP_ENV"),
		ServerAddress:  viper.GetString("SERVER_ADDRESS"),
		EnableTLS:      viper.GetBool("ENABLE_TLS"),
		ConfigDir:      configDir,
		DataPath:       dataPath,
		AdminSecret:    viper.GetString("ADMIN_SECRET"),
		PublicURL:      viper.GetString("PUBLIC_URL"),
		PageSize:       viper.GetInt("PAGE_SIZE"),
		RequestTimeout: time.Duration(viper.GetInt("REQUEST_TIMEOUT_SECONDS")) * time.Second,
		Lang:           normalizeLang(viper.GetString("LANG")),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("ошибка конфигурации: %w", err)
	}

	return config, nil
}

// MustLoad загружает конфигурацию и паникует при ошибке
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("server_address не может быть пустым")
	}
	if c.AdminSecret == "" {
		return fmt.Errorf("admin_secret не может быть пустым")
	}
	if c.PageSize < 1 {
		c.PageSize = defaultPageSize
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = defaultRequestTimeout * time.Second
	}
	return nil
}

// normalizeLang оставляет только поддерживаемые языки. Системное значение
// LANG вида ru_RU.UTF-8 сводится к ru.
func normalizeLang(lang string) string {
	if len(lang) >= 2 {
		switch lang[:2] {
		case "ru", "uz":
			return lang[:2]
		}
	}
	return defaultLang
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal
}
