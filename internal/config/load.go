package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Auditor names used when service.auditor is not configured.
var defaultAuditors = map[string]string{
	"accounts": "ACCOUNTS_MS",
	"cards":    "CARDS_MS",
	"loans":    "LOANS_MS",
}

// Default ports match the ones the services have always listened on.
var defaultPorts = map[string]int{
	"accounts": 8080,
	"cards":    9000,
	"loans":    8090,
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadForService("")
}

// LoadForService behaves like Load but uses serviceName, when non-empty, in
// place of the configured service.name. It is used by the -service flag.
func LoadForService(serviceName string) (*Config, error) {
	v := viper.New()

	v.SetDefault("service.name", "accounts")
	v.SetDefault("service.build_version", "1.0")
	v.SetDefault("server.log_level", "info")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.auto_migrate", true)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("BANK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only applies to keys viper already knows about.
	for _, key := range []string{
		"service.name", "service.auditor", "service.build_version",
		"server.port", "server.log_level",
		"database.url", "database.max_open_conns", "database.max_idle_conns", "database.auto_migrate",
		"contact.message",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("error binding env for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if serviceName != "" {
		cfg.Service.Name = serviceName
	}
	applyServiceDefaults(&cfg)

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func applyServiceDefaults(cfg *Config) {
	name := strings.ToLower(cfg.Service.Name)
	cfg.Service.Name = name
	if cfg.Service.Auditor == "" {
		cfg.Service.Auditor = defaultAuditors[name]
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPorts[name]
	}
}
