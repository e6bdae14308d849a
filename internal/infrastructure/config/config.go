package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "aster/internal/shared/config"
)

type Config struct {
	App      sharedConfig.AppConfig      `mapstructure:"app"`
	Server   sharedConfig.ServerConfig   `mapstructure:"server"`
	Database sharedConfig.DatabaseConfig `mapstructure:"database"`
	Logger   sharedConfig.LoggerConfig   `mapstructure:"logger"`
	Email    sharedConfig.EmailConfig    `mapstructure:"email"`
	Ticket   sharedConfig.TicketConfig   `mapstructure:"ticket"`
	Webhook  sharedConfig.WebhookConfig  `mapstructure:"webhook"`
	Payment  sharedConfig.PaymentConfig  `mapstructure:"payment"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables.
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("ASTER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A config file is optional; env vars and defaults cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration.
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults() {
	viper.SetDefault("app.name", "Aster")
	viper.SetDefault("app.base_url", "http://localhost:8080")
	viper.SetDefault("app.timezone", "Asia/Shanghai")

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")

	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.database", "aster_dev")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	viper.SetDefault("email.host", "localhost")
	viper.SetDefault("email.port", 587)
	viper.SetDefault("email.from_address", "noreply@localhost")
	viper.SetDefault("email.from_name", "Aster")

	viper.SetDefault("ticket.notify_admins", true)

	viper.SetDefault("webhook.enabled", false)
	viper.SetDefault("webhook.base_url", "https://sctapi.ftqq.com")
	viper.SetDefault("webhook.key", "")

	viper.SetDefault("payment.theadpay.merchant_id", "")
	viper.SetDefault("payment.theadpay.gateway_url", "")
	viper.SetDefault("payment.theadpay.key", "")
	viper.SetDefault("payment.theadpay.notify_url", "")
	viper.SetDefault("payment.theadpay.return_url", "")
	viper.SetDefault("payment.theadpay.insecure_skip_verify", false)
	viper.SetDefault("payment.theadpay.timeout_seconds", 10)
}
