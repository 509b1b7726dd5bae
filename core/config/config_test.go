package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Telegram.Token = "123:abc"
	cfg.Telegram.AdminID = 42
	cfg.Database.Host = "localhost"
	cfg.Database.Name = "shop"
	return cfg
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := validConfig()
	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Errorf("run mode = %q, want longpoll", cfg.Telegram.RunMode)
	}
	if cfg.Database.Port != "5432" || cfg.Database.SSLMode != "disable" {
		t.Errorf("database defaults not applied: port=%q sslmode=%q", cfg.Database.Port, cfg.Database.SSLMode)
	}
	if cfg.Database.MaxConnections != 5 {
		t.Errorf("max connections = %d, want 5", cfg.Database.MaxConnections)
	}
	if cfg.Shop.DefaultLanguage != "uz" {
		t.Errorf("default language = %q, want uz", cfg.Shop.DefaultLanguage)
	}
	if len(cfg.Shop.Languages) != 3 {
		t.Errorf("languages = %v, want three defaults", cfg.Shop.Languages)
	}
	if cfg.Shop.Currency != "$" {
		t.Errorf("currency = %q, want $", cfg.Shop.Currency)
	}
}

func TestNormalizeRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		substr string
	}{
		{"missing token", func(c *Config) { c.Telegram.Token = "" }, "telegram.token"},
		{"missing admin", func(c *Config) { c.Telegram.AdminID = 0 }, "telegram.admin_id"},
		{"missing db host", func(c *Config) { c.Database.Host = "" }, "database.host"},
		{"missing db name", func(c *Config) { c.Database.Name = "" }, "database.name"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			err := Normalize(cfg)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.substr) {
				t.Errorf("error %q does not mention %q", err, tc.substr)
			}
		})
	}
}

func TestNormalizePollingAlias(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = "polling"
	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Errorf("run mode = %q, want longpoll", cfg.Telegram.RunMode)
	}
}

func TestNormalizeWebhookModeRequiresEndpoint(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = RunModeWebhook
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for webhook mode without url")
	}

	cfg = validConfig()
	cfg.Telegram.RunMode = RunModeWebhook
	cfg.Webhook.URL = "https://bot.example.com/telegram"
	cfg.Webhook.Listen = "0.0.0.0"
	cfg.Webhook.Port = 8443
	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
}

func TestNormalizeInvalidRunMode(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = "carrier-pigeon"
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error")
	}
}

func TestNormalizeDefaultLanguageMustBeListed(t *testing.T) {
	cfg := validConfig()
	cfg.Shop.DefaultLanguage = "de"
	cfg.Shop.Languages = []string{"uz", "ru"}
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for unlisted default language")
	}
}

func TestNormalizeLanguagesTrimmedAndLowered(t *testing.T) {
	cfg := validConfig()
	cfg.Shop.DefaultLanguage = "EN "
	cfg.Shop.Languages = []string{" EN", "ru"}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if cfg.Shop.DefaultLanguage != "en" {
		t.Errorf("default language = %q, want en", cfg.Shop.DefaultLanguage)
	}
	if cfg.Shop.Languages[0] != "en" {
		t.Errorf("languages[0] = %q, want en", cfg.Shop.Languages[0])
	}
}

func TestNormalizeExcludeUpdates(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimit.ExcludeUpdates = []string{" Callback ", "message"}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if cfg.RateLimit.ExcludeUpdates[0] != UpdateCallback {
		t.Errorf("exclude[0] = %q, want %q", cfg.RateLimit.ExcludeUpdates[0], UpdateCallback)
	}

	cfg = validConfig()
	cfg.RateLimit.ExcludeUpdates = []string{"inline_query"}
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for unknown exclude value")
	}
}
