package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

// Backend is the upstream currency-exchange API this service fronts.
type Backend struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type Session struct {
	CookieName string `mapstructure:"cookie_name"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Secure     bool   `mapstructure:"secure"`
}

type Poll struct {
	RatesIntervalSeconds  int `mapstructure:"rates_interval_seconds"`
	WalletIntervalSeconds int `mapstructure:"wallet_interval_seconds"`
}

type Form struct {
	DebounceMillis int `mapstructure:"debounce_ms"`
}

type Notifications struct {
	TTLSeconds int `mapstructure:"ttl_seconds"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	HTTPServer    HTTPServer    `mapstructure:"http_server"`
	Backend       Backend       `mapstructure:"backend"`
	Session       Session       `mapstructure:"session"`
	Poll          Poll          `mapstructure:"poll"`
	Form          Form          `mapstructure:"form"`
	Notifications Notifications `mapstructure:"notifications"`
	// Currencies is the fallback foreign-currency set offered before the
	// first successful rate poll.
	Currencies []string `mapstructure:"currencies"`
	Logging    Logging  `mapstructure:"logging"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	viper.SetDefault("http_server.port", "8080")
	viper.SetDefault("backend.timeout_seconds", 10)
	viper.SetDefault("session.cookie_name", "accessToken")
	viper.SetDefault("session.max_age_days", 7)
	viper.SetDefault("poll.rates_interval_seconds", 10)
	viper.SetDefault("poll.wallet_interval_seconds", 30)
	viper.SetDefault("form.debounce_ms", 500)
	viper.SetDefault("notifications.ttl_seconds", 3)
	viper.SetDefault("currencies", []string{"USD", "EUR", "JPY"})
	viper.SetDefault("logging.level", "info")

	// backend env vars
	_ = viper.BindEnv("backend.base_url", "BACKEND_BASE_URL")
	_ = viper.BindEnv("backend.timeout_seconds", "BACKEND_TIMEOUT_SECONDS")

	// http server env vars
	_ = viper.BindEnv("http_server.port", "HTTP_PORT")

	// session env vars
	_ = viper.BindEnv("session.secure", "SESSION_SECURE")

	// logging env vars
	_ = viper.BindEnv("logging.level", "LOG_LEVEL")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
