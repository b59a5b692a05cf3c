package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "PW"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
	"../../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.Environment = env

	processDurations(&config)

	return &config, nil
}

func loadDotEnvFile() error {
	var lastError error
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.path", "pollwin.db")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)
	v.SetDefault("logger.sqlLevel", "warn")

	v.SetDefault("ledger.lockTimeoutMs", 5000)
	v.SetDefault("ledger.maxRetries", 3)
	v.SetDefault("ledger.queueSize", 100)
	v.SetDefault("ledger.queueIdleTimeout", 60) // seconds

	v.SetDefault("payment.mode", "immediate")
	v.SetDefault("payment.funding", "external")
	v.SetDefault("payment.gatewayTimeout", 10) // seconds

	v.SetDefault("withdrawal.feeBasisPoints", 1000)

	v.SetDefault("notifier.telegram.enabled", false)
}

// getEnvironment determines the environment from PW_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides lets environment variables with short names override
// the nested keys that carry secrets or per-host settings
func processEnvOverrides(v *viper.Viper) {
	overrides := map[string]string{
		"DB_DRIVER":          "database.driver",
		"DB_HOST":            "database.host",
		"DB_PORT":            "database.port",
		"DB_USERNAME":        "database.username",
		"DB_PASSWORD":        "database.password",
		"DB_NAME":            "database.database",
		"DB_SSL_MODE":        "database.sslMode",
		"DB_PATH":            "database.path",
		"SERVER_HOST":        "server.host",
		"SERVER_PORT":        "server.port",
		"LOGGER_LEVEL":       "logger.level",
		"PAYMENT_MODE":       "payment.mode",
		"PAYMENT_FUNDING":    "payment.funding",
		"WEBHOOK_SECRET":     "payment.webhookSecret",
		"ADMIN_KEY_HASH":     "auth.adminKeyHash",
		"TELEGRAM_TOKEN":     "notifier.telegram.token",
		"TELEGRAM_CHAT_ID":   "notifier.telegram.chatId",
		"TELEGRAM_ENABLED":   "notifier.telegram.enabled",
		"WITHDRAWAL_FEE_BPS": "withdrawal.feeBasisPoints",
	}
	for env, key := range overrides {
		if value := os.Getenv(EnvPrefix + "_" + env); value != "" {
			v.Set(key, value)
		}
	}

	if maxOpenConns := getEnvInt(EnvPrefix+"_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxRetries := getEnvInt(EnvPrefix+"_LEDGER_MAX_RETRIES", -1); maxRetries >= 0 {
		v.Set("ledger.maxRetries", maxRetries)
	}
}

func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Ledger.QueueIdleTimeout = time.Duration(config.Ledger.QueueIdleTimeout) * time.Second
	config.Payment.GatewayTimeout = time.Duration(config.Payment.GatewayTimeout) * time.Second
}
