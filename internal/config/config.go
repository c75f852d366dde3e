package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	App struct {
		Name    string `yaml:"name"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"app"`

	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	JWT struct {
		Issuer        string `yaml:"issuer"`
		AccessSecret  string `yaml:"access_secret"`
		RefreshSecret string `yaml:"refresh_secret"`
		ResetSecret   string `yaml:"reset_secret"`
		AccessTTLMin  int    `yaml:"access_ttl_minutes"`  // default 60
		RefreshTTLMin int    `yaml:"refresh_ttl_minutes"` // default 5760 (4 days)
		ResetTTLMin   int    `yaml:"reset_ttl_minutes"`   // default 30
	} `yaml:"jwt"`

	Lifecycle struct {
		TransitionIntervalSec int `yaml:"transition_interval_seconds"` // delay between status changes
		SweepIntervalSec      int `yaml:"sweep_interval_seconds"`     // worker polling granularity
	} `yaml:"lifecycle"`
}

var AppConfig *Config

// AccessTTL returns the access token lifetime.
func (c *Config) AccessTTL() time.Duration {
	return time.Duration(c.JWT.AccessTTLMin) * time.Minute
}

// RefreshTTL returns the refresh token lifetime.
func (c *Config) RefreshTTL() time.Duration {
	return time.Duration(c.JWT.RefreshTTLMin) * time.Minute
}

// ResetTTL returns the password-reset token lifetime.
func (c *Config) ResetTTL() time.Duration {
	return time.Duration(c.JWT.ResetTTLMin) * time.Minute
}

// TransitionInterval returns the delay between automatic status changes.
func (c *Config) TransitionInterval() time.Duration {
	return time.Duration(c.Lifecycle.TransitionIntervalSec) * time.Second
}

// SweepInterval returns the delivery worker polling interval.
func (c *Config) SweepInterval() time.Duration {
	return time.Duration(c.Lifecycle.SweepIntervalSec) * time.Second
}

// LoadConfig reads config.yaml and overrides it with environment variables.
// When DATABASE_URL is set the yaml file is skipped entirely (CI mode).
func LoadConfig() {
	var cfg Config

	// .env is optional; real deployments inject the environment directly
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.App.Name = os.Getenv("APP_NAME")
	cfg.App.BaseURL = os.Getenv("BASE_URL")
	cfg.JWT.AccessSecret = os.Getenv("USER_ACCESS_SECRET")
	cfg.JWT.RefreshSecret = os.Getenv("USER_REFRESH_SECRET")
	cfg.JWT.ResetSecret = os.Getenv("USER_RESET_SECRET")
	cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Email.SMTPPort, _ = strconv.Atoi(os.Getenv("SMTP_PORT"))
	cfg.Email.SMTPUsername = os.Getenv("SMTP_USERNAME")
	cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.Email.FromEmail = os.Getenv("SMTP_SENDER")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "Logistik"
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = cfg.App.Name
	}
	if cfg.JWT.AccessTTLMin == 0 {
		cfg.JWT.AccessTTLMin = 60
	}
	if cfg.JWT.RefreshTTLMin == 0 {
		cfg.JWT.RefreshTTLMin = 4 * 24 * 60
	}
	if cfg.JWT.ResetTTLMin == 0 {
		cfg.JWT.ResetTTLMin = 30
	}
	if cfg.Lifecycle.TransitionIntervalSec == 0 {
		cfg.Lifecycle.TransitionIntervalSec = 60
	}
	if cfg.Lifecycle.SweepIntervalSec == 0 {
		cfg.Lifecycle.SweepIntervalSec = 5
	}
	if cfg.Email.FromName == "" {
		cfg.Email.FromName = cfg.App.Name
	}
}
