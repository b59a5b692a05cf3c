package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string           `mapstructure:"environment"`
	Server      ServerConfig     `mapstructure:"server"`
	Database    DatabaseConfig   `mapstructure:"database"`
	Logger      LoggerConfig     `mapstructure:"logger"`
	Ledger      LedgerConfig     `mapstructure:"ledger"`
	Payment     PaymentConfig    `mapstructure:"payment"`
	Withdrawal  WithdrawalConfig `mapstructure:"withdrawal"`
	Auth        AuthConfig       `mapstructure:"auth"`
	Notifier    NotifierConfig   `mapstructure:"notifier"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres or sqlite
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	Path            string        `mapstructure:"path"` // sqlite file, or :memory:
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
	SQLLevel   string `mapstructure:"sqlLevel"`
}

// LedgerConfig contains unit-of-work and per-key queue settings
type LedgerConfig struct {
	LockTimeoutMs    int64         `mapstructure:"lockTimeoutMs"`
	MaxRetries       int           `mapstructure:"maxRetries"`
	QueueSize        int           `mapstructure:"queueSize"`
	QueueIdleTimeout time.Duration `mapstructure:"queueIdleTimeout"` // seconds
}

// PaymentConfig selects the gateway behaviour and purchase funding
type PaymentConfig struct {
	Mode           string        `mapstructure:"mode"`    // immediate or deferred
	Funding        string        `mapstructure:"funding"` // external or wallet
	WebhookSecret  string        `mapstructure:"webhookSecret"`
	GatewayTimeout time.Duration `mapstructure:"gatewayTimeout"` // seconds
}

// WithdrawalConfig contains payout settings
type WithdrawalConfig struct {
	FeeBasisPoints int64 `mapstructure:"feeBasisPoints"`
}

// AuthConfig contains the admin credential
type AuthConfig struct {
	AdminKeyHash string `mapstructure:"adminKeyHash"` // bcrypt
}

// NotifierConfig contains operator notification settings
type NotifierConfig struct {
	Telegram TelegramConfig `mapstructure:"telegram"`
}

// TelegramConfig contains the bot credentials for admin notifications
type TelegramConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Token   string `mapstructure:"token"`
	ChatID  int64  `mapstructure:"chatId"`
}
