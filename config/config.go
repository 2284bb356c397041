package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Store drivers
const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

// LoginMatchMode selects how /login matches a user
type LoginMatchMode string

const (
	// LoginMatchExact matches email and password, plus role when one is sent
	LoginMatchExact LoginMatchMode = "exact"
	// LoginMatchPartial matches whichever of email, phone, password and role are sent
	LoginMatchPartial LoginMatchMode = "partial"
)

const developmentMongoURI = "mongodb://localhost:27017"

// AppConfig is read from the process environment at startup
type AppConfig struct {
	Env             string         `envconfig:"ENV" default:"production"`
	Port            string         `envconfig:"PORT" default:"3000"`
	MongoURI        string         `envconfig:"MONGO_URI"`
	MongoDBURI      string         `envconfig:"MONGODB_URI"`
	DBName          string         `envconfig:"DB_NAME" default:"salesapp"`
	StoreDriver     string         `envconfig:"STORE_DRIVER" default:"mongo"`
	LoginMatchMode  LoginMatchMode `envconfig:"LOGIN_MATCH_MODE" default:"exact"`
	LogLevel        string         `envconfig:"LOG_LEVEL" default:"info"`
	CORSOrigins     []string       `envconfig:"CORS_ALLOWED_ORIGINS"`
	ShutdownTimeout time.Duration  `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	SMTP SMTPConfig
}

// SMTPConfig configures the password reset notice mail. Mail is off when Host is empty.
type SMTPConfig struct {
	Host     string `envconfig:"SMTP_HOST"`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	Username string `envconfig:"SMTP_USERNAME"`
	Password string `envconfig:"SMTP_PASSWORD"`
	From     string `envconfig:"SMTP_FROM"`
}

// Load reads and checks the configuration
func Load() (AppConfig, error) {
	var c AppConfig
	if err := envconfig.Process("", &c); err != nil {
		return c, fmt.Errorf("read environment: %w", err)
	}

	c.StoreDriver = strings.ToLower(strings.TrimSpace(c.StoreDriver))
	c.LoginMatchMode = LoginMatchMode(strings.ToLower(string(c.LoginMatchMode)))

	if c.MongoURI == "" {
		c.MongoURI = c.MongoDBURI
	}

	switch c.StoreDriver {
	case StoreMongo:
		if c.MongoURI == "" {
			if !c.IsDevelopment() {
				return c, fmt.Errorf("MONGO_URI or MONGODB_URI environment variable is required")
			}
			c.MongoURI = developmentMongoURI
		}
	case StoreMemory:
	default:
		return c, fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}

	switch c.LoginMatchMode {
	case LoginMatchExact, LoginMatchPartial:
	default:
		return c, fmt.Errorf("unknown LOGIN_MATCH_MODE %q", c.LoginMatchMode)
	}

	return c, nil
}

// IsDevelopment reports whether the service runs in a development environment
func (c AppConfig) IsDevelopment() bool {
	env := strings.ToLower(c.Env)
	return env == "development" || env == "dev"
}

// Address is the listen address for the HTTP server
func (c AppConfig) Address() string {
	return ":" + c.Port
}
