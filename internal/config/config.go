package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address     string   `mapstructure:"address"`
	Port        int      `mapstructure:"port"`
	Mode        string   `mapstructure:"mode"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type DatabaseConfig struct {
	Driver       string `mapstructure:"driver"` // sqlite / postgres
	Path         string `mapstructure:"path"`   // sqlite file
	DSN          string `mapstructure:"dsn"`    // postgres connection string
	LogMode      bool   `mapstructure:"log_mode"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	Issuer      string `mapstructure:"issuer"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

type SecurityConfig struct {
	PasswordScheme string `mapstructure:"password_scheme"` // bcrypt / pbkdf2
	BcryptCost     int    `mapstructure:"bcrypt_cost"`
}

type LogConfig struct {
	File string `mapstructure:"file"`
}

type ExportConfig struct {
	SheetName string `mapstructure:"sheet_name"`
}

type NotifyConfig struct {
	DiscordWebhookID    string `mapstructure:"discord_webhook_id"`
	DiscordWebhookToken string `mapstructure:"discord_webhook_token"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Security SecurityConfig `mapstructure:"security"`
	Log      LogConfig      `mapstructure:"log"`
	Export   ExportConfig   `mapstructure:"export"`
	Notify   NotifyConfig   `mapstructure:"notify"`
}

var (
	appConfig *Config
	once      sync.Once
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "data/zumpfinanc.db")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("jwt.issuer", "zumpfinanc")
	v.SetDefault("jwt.expire_hours", 24)
	v.SetDefault("security.password_scheme", "bcrypt")
	v.SetDefault("security.bcrypt_cost", 12)
	v.SetDefault("log.file", "")
	v.SetDefault("export.sheet_name", "Entries")
	v.SetDefault("server.cors_origins", []string{})
	v.SetDefault("notify.discord_webhook_id", "")
	v.SetDefault("notify.discord_webhook_token", "")
}

// Load loads configuration from given file path (e.g. "config.yaml").
// If path is empty, it defaults to "config.yaml" in current working directory.
func Load(path string) (*Config, error) {
	var err error
	once.Do(func() {
		appConfig, err = read(path)
	})

	if err != nil {
		return nil, err
	}
	return appConfig, nil
}

func read(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	// environment overrides, e.g. ZF_SERVER_PORT=9000
	v.SetEnvPrefix("ZF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Get returns the loaded global configuration.
// Call Load() once at application startup.
func Get() *Config {
	return appConfig
}
