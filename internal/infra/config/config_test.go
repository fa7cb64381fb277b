package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"TELEGRAM_BOT_TOKEN", "BOT_MODE", "WEBHOOK_URL", "CONTENT_SOURCE", "HTTP_PORT", "DEBUG"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "server:\n  host: 127.0.0.1\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	if cfg.HTTPAddr() != "127.0.0.1:8080" {
		t.Errorf("ожидался адрес 127.0.0.1:8080, получено %s", cfg.HTTPAddr())
	}
	if cfg.TelegramBot.Mode != ModePolling {
		t.Errorf("ожидался режим polling, получено %s", cfg.TelegramBot.Mode)
	}
	if cfg.Content.Source != ContentEmbedded {
		t.Errorf("ожидался источник embedded, получено %s", cfg.Content.Source)
	}
	if cfg.Sessions.TTL != 30*time.Minute || cfg.Sessions.SweepInterval != time.Minute {
		t.Errorf("неожиданные параметры сессий: %+v", cfg.Sessions)
	}
	if cfg.BotEnabled() {
		t.Error("без токена бот должен быть выключен")
	}
}

func TestLoadConfig_YAMLDurations(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
telegram_bot:
  token: "123:abc"
  poll_timeout: 5s
sessions:
  ttl: 10m
  sweep_interval: 30s
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if cfg.TelegramBot.PollTimeout != 5*time.Second {
		t.Errorf("ожидалось 5s, получено %s", cfg.TelegramBot.PollTimeout)
	}
	if cfg.Sessions.TTL != 10*time.Minute || cfg.Sessions.SweepInterval != 30*time.Second {
		t.Errorf("неожиданные параметры сессий: %+v", cfg.Sessions)
	}
	if !cfg.BotEnabled() {
		t.Error("с токеном бот должен быть включен")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DEBUG", "true")
	path := writeConfig(t, "telegram_bot:\n  token: file-token\nserver:\n  port: \"8000\"\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if cfg.TelegramBot.Token != "env-token" {
		t.Errorf("ожидался токен из окружения, получено %s", cfg.TelegramBot.Token)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("ожидался порт 9090, получено %s", cfg.Server.Port)
	}
	if !cfg.Debug {
		t.Error("ожидался режим отладки")
	}
}

func TestLoadConfig_InvalidDebug(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEBUG", "maybe")

	if _, err := LoadConfig(""); err == nil {
		t.Error("ожидалась ошибка для DEBUG=maybe")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"по умолчанию", func(c *Config) {}, false},
		{"webhook без URL", func(c *Config) { c.TelegramBot.Mode = ModeWebhook }, true},
		{"webhook с URL", func(c *Config) {
			c.TelegramBot.Mode = ModeWebhook
			c.TelegramBot.WebhookURL = "https://example.com/hook"
		}, false},
		{"неизвестный режим", func(c *Config) { c.TelegramBot.Mode = "carrier-pigeon" }, true},
		{"file без пути", func(c *Config) { c.Content.Source = ContentFile }, true},
		{"file с путем", func(c *Config) {
			c.Content.Source = ContentFile
			c.Content.Path = "content.yaml"
		}, false},
		{"неизвестный источник", func(c *Config) { c.Content.Source = "s3" }, true},
		{"отрицательный ttl", func(c *Config) { c.Sessions.TTL = -time.Second }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{}
			c.setDefaults()
			tt.mutate(c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
