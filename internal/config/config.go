package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
		// PublicURL is the externally reachable base of this API, used in
		// email verification links.
		PublicURL string `yaml:"public_url"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		AccessSecret  string `yaml:"access_secret"`
		RefreshSecret string `yaml:"refresh_secret"`
	} `yaml:"jwt"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	Payment struct {
		StripeSecretKey string `yaml:"stripe_secret_key"`
		Currency        string `yaml:"currency"`
	} `yaml:"payment"`

	Frontend struct {
		BaseURL        string `yaml:"base_url"`
		CORSOriginBase string `yaml:"cors_origin_base"`
	} `yaml:"frontend"`
}

var AppConfig *Config

// LoadConfig reads config.yaml and applies environment overrides.
// A .env file is honoured when present.
func LoadConfig() {
	var cfg Config

	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if f, err := os.Open(configPath); err == nil {
		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			f.Close()
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
		f.Close()
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	AppConfig = &cfg
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("SERVER_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = intFromEnv("PORT", v, cfg.Server.Port)
	}
	if v := os.Getenv("BACKEND_URL"); v != "" {
		cfg.Server.PublicURL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.AccessSecret = v
	}
	if v := os.Getenv("JWT_REFRESH_SECRET"); v != "" {
		cfg.JWT.RefreshSecret = v
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.Email.SMTPHost = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		cfg.Email.SMTPPort = intFromEnv("SMTP_PORT", v, cfg.Email.SMTPPort)
	}
	if v := os.Getenv("SMTP_USER"); v != "" {
		cfg.Email.SMTPUsername = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		cfg.Email.SMTPPassword = v
	}
	if v := os.Getenv("EMAIL_FROM"); v != "" {
		cfg.Email.FromEmail = v
	}
	if v := os.Getenv("STRIPE_SECRET_KEY"); v != "" {
		cfg.Payment.StripeSecretKey = v
	}
	if v := os.Getenv("FRONTEND_URL"); v != "" {
		cfg.Frontend.BaseURL = v
	}
	if v := os.Getenv("CORS_ORIGIN_BASE"); v != "" {
		cfg.Frontend.CORSOriginBase = v
	}
}

// intFromEnv parses an integer environment override; a malformed value is
// rejected with a warning and the current value kept.
func intFromEnv(name, v string, current int) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Ignoring %s=%q: not an integer", name, v)
		return current
	}
	return n
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Server.PublicURL == "" {
		cfg.Server.PublicURL = fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	}
	if cfg.Payment.Currency == "" {
		cfg.Payment.Currency = "eur"
	}
	if cfg.Email.FromName == "" {
		cfg.Email.FromName = "TakStore.eu"
	}
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// GetConfig returns the loaded configuration, loading it on first use.
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
