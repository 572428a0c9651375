// Package config reads the engine's runtime configuration from environment
// variables, falling back to defaults for anything unset.
package config

import (
	"os"
	"strconv"

	"github.com/rmaldonado/sapo/internal/whatsapp"
)

// Config holds all runtime configuration for the engine.
type Config struct {
	DBPath         string
	HTTPAddr       string
	VerifyToken    string
	ScanIntervalMs int
	WhatsApp       whatsapp.Config
}

// DefaultConfig returns a Config with sensible defaults. Outbound delivery
// is in placeholder mode until a Graph API token is configured.
func DefaultConfig() Config {
	return Config{
		DBPath:         "sapo.db",
		HTTPAddr:       ":3000",
		VerifyToken:    "sapo_verify",
		ScanIntervalMs: 60000,
		WhatsApp: whatsapp.Config{
			APIVersion: "v18.0",
			TimeoutMs:  10000,
		},
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset values.
func Load() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("SAPO_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("SAPO_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("SAPO_VERIFY_TOKEN"); v != "" {
		cfg.VerifyToken = v
	}
	if v := os.Getenv("SAPO_SCAN_INTERVAL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ScanIntervalMs = n
		}
	}
	if v := os.Getenv("SAPO_META_TOKEN"); v != "" {
		cfg.WhatsApp.AccessToken = v
	}
	if v := os.Getenv("SAPO_META_PHONE_ID"); v != "" {
		cfg.WhatsApp.PhoneNumberID = v
	}
	if v := os.Getenv("SAPO_META_API_VERSION"); v != "" {
		cfg.WhatsApp.APIVersion = v
	}
	if v := os.Getenv("SAPO_META_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.WhatsApp.TimeoutMs = n
		}
	}

	return cfg
}

// DeliveryConfigured reports whether real outbound delivery is possible.
// Without both credentials the engine falls back to the placeholder sender.
func (c Config) DeliveryConfigured() bool {
	return c.WhatsApp.AccessToken != "" && c.WhatsApp.PhoneNumberID != ""
}
