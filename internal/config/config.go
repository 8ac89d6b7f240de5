package config

import (
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host" env:"SERVER_HOST"`
		Port int    `yaml:"port" env:"SERVER_PORT"`
		Env  string `yaml:"env" env:"SERVER_ENV"`
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver" env:"DATABASE_DRIVER"` // postgres or mysql
		DSN    string `yaml:"dsn" env:"DATABASE_URL"`
	} `yaml:"database"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host" env:"SMTP_HOST"`
		SMTPPort     int    `yaml:"smtp_port" env:"SMTP_PORT"`
		SMTPUser     string `yaml:"smtp_user" env:"SMTP_USER"`
		SMTPPassword string `yaml:"smtp_password" env:"SMTP_PASSWORD"`
		FromEmail    string `yaml:"from_email" env:"SMTP_FROM_EMAIL"`
		FromName     string `yaml:"from_name" env:"SMTP_FROM_NAME"`
	} `yaml:"email"`

	JWT struct {
		Secret     string `yaml:"secret" env:"JWT_SECRET"`
		SessionTTL int    `yaml:"session_ttl" env:"JWT_SESSION_TTL"` // minutes
	} `yaml:"jwt"`

	// Site is rendered into emailed links (protocol://domain/...).
	Site struct {
		Protocol string `yaml:"protocol" env:"SITE_PROTOCOL"`
		Domain   string `yaml:"domain" env:"SITE_DOMAIN"`
	} `yaml:"site"`

	// First superuser, seeded at startup when the account does not exist yet.
	FirstSuperuserEmail    string `yaml:"first_superuser_email" env:"FIRST_SUPERUSER_EMAIL"`
	FirstSuperuserPassword string `yaml:"first_superuser_password" env:"FIRST_SUPERUSER_PASSWORD"`
}

var AppConfig *Config

// LoadConfig reads config.yaml (CONFIG_PATH overrides the location) and then
// applies environment variable overrides on top of it.
func LoadConfig() {
	var cfg Config

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

	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("Failed to parse environment overrides: %v", err)
	}

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "postgres"
	}
	if cfg.JWT.SessionTTL == 0 {
		cfg.JWT.SessionTTL = 120
	}
	if cfg.Site.Protocol == "" {
		cfg.Site.Protocol = "http"
	}
	if cfg.Site.Domain == "" {
		cfg.Site.Domain = "localhost:4000"
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
