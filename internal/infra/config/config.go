package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Режимы получения обновлений Telegram
const (
	ModePolling = "polling"
	ModeWebhook = "webhook"
)

// Источники контента
const (
	ContentEmbedded = "embedded"
	ContentFile     = "file"
	ContentPostgres = "postgres"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port string `yaml:"port"`
	} `yaml:"server"`
	TelegramBot struct {
		Token       string        `yaml:"token"`        // Пустой токен отключает бота, остается только HTTP API
		Mode        string        `yaml:"mode"`         // "polling" или "webhook"
		WebhookURL  string        `yaml:"webhook_url"`  // Публичный URL, обязателен для webhook
		ListenAddr  string        `yaml:"listen_addr"`  // Адрес, на котором слушает вебхук
		PollTimeout time.Duration `yaml:"poll_timeout"` // Таймаут лонгпуллинга
	} `yaml:"telegram_bot"`
	Database struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"dbname"`
	} `yaml:"database"`
	Content struct {
		Source string `yaml:"source"` // embedded, file или postgres
		Path   string `yaml:"path"`   // YAML-файл для source == file
	} `yaml:"content"`
	Sessions struct {
		TTL           time.Duration `yaml:"ttl"`
		SweepInterval time.Duration `yaml:"sweep_interval"`
	} `yaml:"sessions"`
	Links struct {
		BotUsername string `yaml:"bot_username"` // Для ссылок t.me/<bot>?start=ar_<id> в QR-кодах
	} `yaml:"links"`
	Debug bool `yaml:"debug"`
}

// LoadConfig читает YAML-файл, затем .env (если есть) и переменные окружения.
// Пустой filename означает конфигурацию только из окружения.
func LoadConfig(filename string) (*Config, error) {
	const op = "config.LoadConfig"

	config := &Config{}
	if filename != "" {
		f, err := os.Open(filename)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(config); err != nil {
			return nil, fmt.Errorf("%s: failed to decode %s: %w", op, filename, err)
		}
	}

	// Загружаем переменные окружения из файла .env (если файл существует).
	_ = godotenv.Load()

	if err := config.applyEnv(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	config.setDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return config, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		c.TelegramBot.Token = v
	}
	if v := os.Getenv("BOT_MODE"); v != "" {
		c.TelegramBot.Mode = v
	}
	if v := os.Getenv("WEBHOOK_URL"); v != "" {
		c.TelegramBot.WebhookURL = v
	}
	if v := os.Getenv("CONTENT_SOURCE"); v != "" {
		c.Content.Source = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid DEBUG value %q: %w", v, err)
		}
		c.Debug = debug
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.TelegramBot.Mode == "" {
		c.TelegramBot.Mode = ModePolling
	}
	if c.TelegramBot.ListenAddr == "" {
		c.TelegramBot.ListenAddr = ":8443"
	}
	if c.TelegramBot.PollTimeout == 0 {
		c.TelegramBot.PollTimeout = 10 * time.Second
	}
	if c.Content.Source == "" {
		c.Content.Source = ContentEmbedded
	}
	if c.Sessions.TTL == 0 {
		c.Sessions.TTL = 30 * time.Minute
	}
	if c.Sessions.SweepInterval == 0 {
		c.Sessions.SweepInterval = time.Minute
	}
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	switch c.TelegramBot.Mode {
	case ModePolling:
	case ModeWebhook:
		if c.TelegramBot.WebhookURL == "" {
			return fmt.Errorf("webhook mode requires telegram_bot.webhook_url")
		}
	default:
		return fmt.Errorf("unknown bot mode %q", c.TelegramBot.Mode)
	}

	switch c.Content.Source {
	case ContentEmbedded, ContentPostgres:
	case ContentFile:
		if c.Content.Path == "" {
			return fmt.Errorf("content source %q requires content.path", ContentFile)
		}
	default:
		return fmt.Errorf("unknown content source %q", c.Content.Source)
	}

	if c.Sessions.TTL < 0 || c.Sessions.SweepInterval < 0 {
		return fmt.Errorf("sessions durations must not be negative")
	}

	return nil
}

// HTTPAddr адрес HTTP API
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// DatabaseURL строка подключения к PostgreSQL
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

// BotEnabled true, если задан токен Telegram
func (c *Config) BotEnabled() bool {
	return c.TelegramBot.Token != ""
}
