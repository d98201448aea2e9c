package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port     int    `mapstructure:"PORT"`
	Env      string `mapstructure:"APP_ENV"` // development | production
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Ledger
	LedgerFile string `mapstructure:"LEDGER_FILE"`

	// Default report parameters
	ReportSeller  string `mapstructure:"REPORT_SELLER"`
	ReportManager string `mapstructure:"REPORT_MANAGER"`
	ReportMonthA  int    `mapstructure:"REPORT_MONTH_A"`
	ReportMonthB  int    `mapstructure:"REPORT_MONTH_B"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("PORT", 8081)
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LEDGER_FILE", "arquivo-dados.csv")
	v.SetDefault("REPORT_SELLER", "Adriana Gomes")
	v.SetDefault("REPORT_MANAGER", "Elenice Mendes")
	v.SetDefault("REPORT_MONTH_A", int(time.July))
	v.SetDefault("REPORT_MONTH_B", int(time.September))

	// Optional .env file for local development, does not fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Validate returns an error describing every invalid setting.
func (c *Config) Validate() error {
	var problems []string

	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", c.Port))
	}
	if strings.TrimSpace(c.LedgerFile) == "" {
		problems = append(problems, "LEDGER_FILE is required")
	}
	if !validMonth(c.ReportMonthA) {
		problems = append(problems, fmt.Sprintf("invalid REPORT_MONTH_A %d: must be between 1 and 12", c.ReportMonthA))
	}
	if !validMonth(c.ReportMonthB) {
		problems = append(problems, fmt.Sprintf("invalid REPORT_MONTH_B %d: must be between 1 and 12", c.ReportMonthB))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// MonthA returns the first default report month.
func (c *Config) MonthA() time.Month {
	return time.Month(c.ReportMonthA)
}

// MonthB returns the second default report month.
func (c *Config) MonthB() time.Month {
	return time.Month(c.ReportMonthB)
}

func validMonth(m int) bool {
	return m >= int(time.January) && m <= int(time.December)
}
