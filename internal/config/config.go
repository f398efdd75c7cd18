package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Service  ServiceConfig  `mapstructure:"service" validate:"required"`
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Contact  ContactConfig  `mapstructure:"contact"`
}

// ServiceConfig selects which banking service this process runs.
type ServiceConfig struct {
	Name string `mapstructure:"name" validate:"required,oneof=accounts cards loans"`
	// Auditor is stamped into the created_by/updated_by audit columns.
	// Empty means the per-service default (ACCOUNTS_MS, CARDS_MS, LOANS_MS).
	Auditor      string `mapstructure:"auditor" validate:"omitempty,max=20"`
	BuildVersion string `mapstructure:"build_version" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL          string `mapstructure:"url" validate:"required,url"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gte=1"`
	MaxIdleConns int    `mapstructure:"max_idle_conns" validate:"gte=0"`
	AutoMigrate  bool   `mapstructure:"auto_migrate"`
}

// ContactConfig is served verbatim by the contact-info endpoint.
type ContactConfig struct {
	Message       string            `mapstructure:"message"`
	Details       map[string]string `mapstructure:"details"`
	OnCallSupport []string          `mapstructure:"on_call_support"`
}
