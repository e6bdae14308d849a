// Package config defines the configuration structs shared across the
// application. Values are populated by internal/infrastructure/config.
package config

import "fmt"

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

func (c *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type AppConfig struct {
	Name     string `mapstructure:"name"`
	BaseURL  string `mapstructure:"base_url"`
	Timezone string `mapstructure:"timezone"`
}

type EmailConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// TicketConfig holds the ticket module feature toggles.
type TicketConfig struct {
	// NotifyAdmins enables the admin email fan-out on ticket create/reply.
	NotifyAdmins bool `mapstructure:"notify_admins"`
}

// WebhookConfig holds the push-notification webhook settings
// (ServerChan-compatible endpoint).
type WebhookConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	BaseURL string `mapstructure:"base_url"`
	Key     string `mapstructure:"key"`
}

// THeadPayConfig holds the THeadPay gateway credentials and endpoint.
type THeadPayConfig struct {
	MerchantID string `mapstructure:"merchant_id"`
	GatewayURL string `mapstructure:"gateway_url"`
	Key        string `mapstructure:"key"`
	NotifyURL  string `mapstructure:"notify_url"`
	ReturnURL  string `mapstructure:"return_url"`
	// InsecureSkipVerify disables TLS peer verification on the outbound
	// payment call. Only for legacy gateways with broken certificates.
	InsecureSkipVerify bool `mapstructure:"insecure_skip_verify"`
	TimeoutSeconds     int  `mapstructure:"timeout_seconds"`
}

type PaymentConfig struct {
	THeadPay THeadPayConfig `mapstructure:"theadpay"`
}
