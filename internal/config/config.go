package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the application configuration, constructed once at process
// start and passed by reference to every component that needs it.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Supabase SupabaseConfig `mapstructure:"supabase"`
	SendGrid SendGridConfig `mapstructure:"sendgrid"`
	Chat     ChatConfig     `mapstructure:"chat"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host               string        `mapstructure:"host"`
	Port               int           `mapstructure:"port"`
	Mode               string        `mapstructure:"mode"`
	ReadTimeout        time.Duration `mapstructure:"read_timeout"`
	WriteTimeout       time.Duration `mapstructure:"write_timeout"`
	MaxRequestBodySize int           `mapstructure:"max_request_body_size"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level     string `mapstructure:"level"`
	Format    string `mapstructure:"format"`
	Output    string `mapstructure:"output"`
	FilePath  string `mapstructure:"file_path"`
	AddSource bool   `mapstructure:"add_source"`
}

// AdminConfig holds dashboard authentication settings.
// PasswordHash is a bcrypt hash; the plaintext password never appears in config.
type AdminConfig struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"`
	JWTSecret    string `mapstructure:"jwt_secret"`
}

// SupabaseConfig holds the backend-as-a-service connection settings.
// AnonKey is attached to every request as the apikey header. ServiceKey,
// when set, is used by the server as a static bearer token for privileged
// reads (admin dashboard queries).
type SupabaseConfig struct {
	RestURL    string `mapstructure:"rest_url"`
	AuthURL    string `mapstructure:"auth_url"`
	StorageURL string `mapstructure:"storage_url"`
	AnonKey    string `mapstructure:"anon_key"`
	ServiceKey string `mapstructure:"service_key"`
}

// SendGridConfig holds transactional email settings.
// An empty APIKey disables the notifier; lead storage is unaffected.
type SendGridConfig struct {
	APIKey    string `mapstructure:"api_key"`
	FromEmail string `mapstructure:"from_email"`
	FromName  string `mapstructure:"from_name"`
	ToEmail   string `mapstructure:"to_email"`
	ToName    string `mapstructure:"to_name"`
}

// ChatConfig holds scripted-chat settings
type ChatConfig struct {
	BaseDelay   time.Duration `mapstructure:"base_delay"`   // minimum "thinking" time
	DelayJitter time.Duration `mapstructure:"delay_jitter"` // random extra added to base
}

// Load reads the configuration file and environment overrides
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("INVESTI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills optional settings that have a sensible default
func (c *Config) applyDefaults() {
	if c.Chat.BaseDelay == 0 {
		c.Chat.BaseDelay = 2 * time.Second
	}
	if c.Chat.DelayJitter == 0 {
		c.Chat.DelayJitter = time.Second
	}
	if c.Server.MaxRequestBodySize == 0 {
		c.Server.MaxRequestBodySize = 4
	}
}

// Validate checks the configuration for invalid or missing values
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server mode: %s, must be 'debug' or 'release'", c.Server.Mode)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("invalid log format: %s, must be 'json' or 'text'", c.Log.Format)
	}

	if c.Admin.Username == "" {
		return fmt.Errorf("admin.username is required")
	}
	if c.Admin.PasswordHash == "" {
		return fmt.Errorf("admin.password_hash is required")
	}
	if len(c.Admin.JWTSecret) < 32 {
		return fmt.Errorf("admin.jwt_secret must be at least 32 characters")
	}

	if c.Supabase.RestURL == "" {
		return fmt.Errorf("supabase.rest_url is required")
	}
	if c.Supabase.AuthURL == "" {
		return fmt.Errorf("supabase.auth_url is required")
	}
	if c.Supabase.StorageURL == "" {
		return fmt.Errorf("supabase.storage_url is required")
	}
	if c.Supabase.AnonKey == "" {
		return fmt.Errorf("supabase.anon_key is required")
	}

	// SendGrid is optional: a missing key disables the notifier instead of
	// failing startup, but a key without addresses is a misconfiguration.
	if c.SendGrid.APIKey != "" {
		if c.SendGrid.FromEmail == "" || c.SendGrid.ToEmail == "" {
			return fmt.Errorf("sendgrid.from_email and sendgrid.to_email are required when api_key is set")
		}
	}

	return nil
}

// GetServerAddr returns the host:port listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetReadTimeout returns the server read timeout
func (c *Config) GetReadTimeout() time.Duration {
	return c.Server.ReadTimeout
}

// GetWriteTimeout returns the server write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Server.WriteTimeout
}
