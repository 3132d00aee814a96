package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Gemini - generation provider
	Gemini GeminiConfig

	// Genesys Cloud - contact-center platform
	Genesys GenesysConfig

	// Internal caller authentication (optional)
	JWT            JWTConfig
	Encrypter      EncrypterConfig
	InternalConfig InternalConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server.
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GeminiConfig is the configuration for the Gemini API. The key lives only
// here: it is a shared secret and is never read from request headers.
type GeminiConfig struct {
	APIKey          string
	Model           string
	SupportedModels []string
	Timeout         int // in seconds
}

// GenesysConfig is the configuration for Genesys Cloud. ClientID/ClientSecret
// are the fallback credentials when a request carries none in its headers.
type GenesysConfig struct {
	Domain       string
	ClientID     string
	ClientSecret string
	Timeout      int // in seconds
}

// JWTConfig is used to verify internal-caller bearer tokens. Optional; leave
// the secret empty to disable.
type JWTConfig struct {
	Issuer    string
	Audience  []string
	SecretKey string
	TTL       int // in seconds
}

// EncrypterConfig is the configuration for the service-key encrypter.
type EncrypterConfig struct {
	Key string
}

// InternalConfig is the configuration for internal service authentication.
type InternalConfig struct {
	ServiceKeys map[string]string
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper.
func Load() (*Config, error) {
	viper.SetConfigName("bridge-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/aibridge/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.SupportedModels = viper.GetStringSlice("gemini.supported_models")
	cfg.Gemini.Timeout = viper.GetInt("gemini.timeout")

	// Genesys Cloud
	cfg.Genesys.Domain = viper.GetString("genesys.domain")
	cfg.Genesys.ClientID = viper.GetString("genesys.client_id")
	cfg.Genesys.ClientSecret = viper.GetString("genesys.client_secret")
	cfg.Genesys.Timeout = viper.GetInt("genesys.timeout")

	// JWT
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.Audience = viper.GetStringSlice("jwt.audience")
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	cfg.JWT.TTL = viper.GetInt("jwt.ttl")

	// Encrypter and internal service keys
	cfg.Encrypter.Key = viper.GetString("encrypter.key")
	serviceKeys := make(map[string]string)
	if viper.IsSet("internal.service_keys") {
		for service, key := range viper.GetStringMapString("internal.service_keys") {
			serviceKeys[service] = key
		}
	}
	cfg.InternalConfig.ServiceKeys = serviceKeys

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "release")

	// Logger
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)

	// Gemini
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("gemini.supported_models", []string{
		"gemini-2.5-pro",
		"gemini-2.5-flash",
		"gemini-2.0-flash",
	})
	viper.SetDefault("gemini.timeout", 120)

	// Genesys Cloud
	viper.SetDefault("genesys.domain", "mypurecloud.com")
	viper.SetDefault("genesys.timeout", 30)

	// JWT (disabled unless a secret is configured)
	viper.SetDefault("jwt.issuer", "aibridge-srv")
	viper.SetDefault("jwt.audience", []string{"aibridge-srv"})
	viper.SetDefault("jwt.ttl", 3600)
}

func validate(cfg *Config) error {
	if cfg.Gemini.APIKey == "" {
		return fmt.Errorf("gemini.api_key is required")
	}
	if cfg.HTTPServer.Port == 0 {
		return fmt.Errorf("http_server.port is required")
	}
	if cfg.Genesys.Domain == "" {
		return fmt.Errorf("genesys.domain is required")
	}

	// Optional auth knobs still get sanity checks when set
	if cfg.JWT.SecretKey != "" && len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters for security")
	}
	if cfg.Encrypter.Key != "" {
		if n := len(cfg.Encrypter.Key); n != 16 && n != 24 && n != 32 {
			return fmt.Errorf("encrypter.key must be 16, 24, or 32 bytes long")
		}
	}
	if len(cfg.InternalConfig.ServiceKeys) > 0 && cfg.Encrypter.Key == "" {
		return fmt.Errorf("encrypter.key is required when internal.service_keys is set")
	}

	return nil
}
