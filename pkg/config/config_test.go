package config

import "testing"

func TestValidateForProduction(t *testing.T) {
	base := func() *Config {
		return &Config{
			Environment:          EnvProduction,
			CompanyName:          "Sol Forte Energia",
			LogLevel:             "info",
			SessionAuthKey:       "0123456789abcdef0123456789abcdef",
			SessionEncryptionKey: "0123456789abcdef",
		}
	}

	t.Run("passes with safe production settings", func(t *testing.T) {
		if err := ValidateForProduction(base()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no-ops outside production", func(t *testing.T) {
		cfg := base()
		cfg.Environment = EnvDevelopment
		cfg.SessionAuthKey = "short"
		if err := ValidateForProduction(cfg); err != nil {
			t.Fatalf("expected nil for development, got %v", err)
		}
	})

	t.Run("rejects short session auth key", func(t *testing.T) {
		cfg := base()
		cfg.SessionAuthKey = "short"
		if err := ValidateForProduction(cfg); err == nil {
			t.Fatal("expected error for short SESSION_AUTH_KEY")
		}
	})

	t.Run("rejects short encryption key", func(t *testing.T) {
		cfg := base()
		cfg.SessionEncryptionKey = "short"
		if err := ValidateForProduction(cfg); err == nil {
			t.Fatal("expected error for short SESSION_ENCRYPTION_KEY")
		}
	})

	t.Run("rejects debug log level", func(t *testing.T) {
		cfg := base()
		cfg.LogLevel = "debug"
		if err := ValidateForProduction(cfg); err == nil {
			t.Fatal("expected error for debug log level")
		}
	})

	t.Run("rejects empty company name", func(t *testing.T) {
		cfg := base()
		cfg.CompanyName = ""
		if err := ValidateForProduction(cfg); err == nil {
			t.Fatal("expected error for empty COMPANY_NAME")
		}
	})
}
