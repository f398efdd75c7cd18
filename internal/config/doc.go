// Package config handles configuration loading, parsing, and validation
// from environment variables (BANK_ prefix) and an optional config.yaml.
// One Config describes one running service: which of accounts, cards or
// loans it is, where it listens, which database it owns, and what it
// reports from its informational endpoints.
package config
