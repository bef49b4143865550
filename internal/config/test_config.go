package config

import "time"

// TestConfig returns a config suitable for testing
func TestConfig() *Config {
	cfg := defaultConfig()
	cfg.Source = SourceConfig{
		Location:     "http://127.0.0.1/quotes.json",
		HTTPTimeout:  5 * time.Second,
		UserAgent:    "quip-test/1.0",
		AllowPrivate: true,
	}
	cfg.Database = DatabaseConfig{
		Path:    "",
		Timeout: 1 * time.Second,
	}
	cfg.UI.Style = "notty"
	return cfg
}
