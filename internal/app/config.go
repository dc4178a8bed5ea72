package app

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv    string `envconfig:"APP_ENV" default:"development"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// Letterhead printed on customer documents.
	CompanyName    string `envconfig:"COMPANY_NAME" default:"CÔNG TY TNHH DANA DESIGN"`
	CompanyBrand   string `envconfig:"COMPANY_BRAND" default:"XƯỞNG MAY 2K PLUS - ĐỒNG PHỤC ĐÀ NẴNG"`
	CompanyAddress string `envconfig:"COMPANY_ADDRESS" default:"34 Bình An 7 - Hoà Cường - Tp. Đà Nẵng"`
	CompanyHotline string `envconfig:"COMPANY_HOTLINE" default:"(zalo) 0934 845 456 - 0905 984 026"`
	CompanyWebsite string `envconfig:"COMPANY_WEBSITE" default:"dongphucdn.com"`
	CompanyEmail   string `envconfig:"COMPANY_EMAIL" default:"dongphucdanang238@gmail.com"`
	CompanyLogoURL string `envconfig:"COMPANY_LOGO_URL" default:""`

	ExportDir string `envconfig:"EXPORT_DIR" default:"exports"`

	GotenbergURL string `envconfig:"GOTENBERG_URL" default:"http://127.0.0.1:3000"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
