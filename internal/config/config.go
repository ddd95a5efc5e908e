package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Watchlist struct {
		Symbols         []string           `yaml:"symbols"`
		Targets         map[string]float64 `yaml:"targets"`
		Recommendations map[string]string  `yaml:"recommendations"`
	} `yaml:"watchlist"`
	DataSource struct {
		LookbackDays int `yaml:"lookback_days"`
	} `yaml:"data_source"`
	Mail struct {
		SMTPHost       string `yaml:"smtp_host"`
		SMTPPort       int    `yaml:"smtp_port"`
		SenderName     string `yaml:"sender_name"`
		SenderEmail    string `yaml:"sender_email"`
		SenderPassword string `yaml:"sender_password"`
		RecipientName  string `yaml:"recipient_name"`
		RecipientEmail string `yaml:"recipient_email"`
	} `yaml:"mail"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TICKERS"); v != "" {
		cfg.Watchlist.Symbols = splitSymbols(v)
	}
	if v := os.Getenv("SENDER_NAME"); v != "" {
		cfg.Mail.SenderName = v
	}
	if v := os.Getenv("SENDER_EMAIL"); v != "" {
		cfg.Mail.SenderEmail = v
	}
	if v := os.Getenv("SENDER_PASSWORD"); v != "" {
		cfg.Mail.SenderPassword = v
	}
	if v := os.Getenv("RECIPIENT_NAME"); v != "" {
		cfg.Mail.RecipientName = v
	}
	if v := os.Getenv("RECIPIENT_EMAIL"); v != "" {
		cfg.Mail.RecipientEmail = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("LOOKBACK_DAYS"); v != "" {
		var days int
		if _, err := fmt.Sscanf(v, "%d", &days); err == nil && days > 0 {
			cfg.DataSource.LookbackDays = days
		}
	}

	// Defaults
	if cfg.DataSource.LookbackDays == 0 {
		cfg.DataSource.LookbackDays = 5
	}
	if cfg.Mail.SMTPHost == "" {
		cfg.Mail.SMTPHost = "smtp.gmail.com"
	}
	if cfg.Mail.SMTPPort == 0 {
		cfg.Mail.SMTPPort = 587
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 0 9 * * *"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/stockdigest.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if len(c.Watchlist.Symbols) == 0 {
		return fmt.Errorf("watchlist.symbols is required")
	}
	for _, sym := range c.Watchlist.Symbols {
		if sym == "" {
			return fmt.Errorf("watchlist.symbols must not contain an empty symbol")
		}
	}
	if c.Mail.SenderEmail == "" {
		return fmt.Errorf("mail.sender_email is required")
	}
	if c.Mail.SenderPassword == "" {
		return fmt.Errorf("mail.sender_password is required")
	}
	if c.Mail.RecipientEmail == "" {
		return fmt.Errorf("mail.recipient_email is required")
	}
	if c.DataSource.LookbackDays < 2 {
		return fmt.Errorf("data_source.lookback_days must be at least 2")
	}
	return nil
}

func splitSymbols(s string) []string {
	parts := strings.Split(s, ",")
	symbols := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			symbols = append(symbols, t)
		}
	}
	return symbols
}
