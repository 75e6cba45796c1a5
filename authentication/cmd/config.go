package main

import (
	"time"

	"github.com/abhishek622/catflix/internal/configutil"
)

type config struct {
	configutil.Base `yaml:",inline"`
	Database        databaseConfig `yaml:"database"`
	Auth            authConfig     `yaml:"auth"`
}

type databaseConfig struct {
	DSN string `yaml:"dsn"`
}

type authConfig struct {
	Secret     string        `yaml:"secret"`
	TokenTTL   time.Duration `yaml:"tokenTTL"`
	BcryptCost int           `yaml:"bcryptCost"`
}

func (c *config) applyDefaults() {
	c.Base.ApplyDefaults()
	if c.API.Port == 0 {
		c.API.Port = 8084
	}
	if c.GRPC.Port == 0 {
		c.GRPC.Port = 9084
	}
	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = 24 * time.Hour
	}
	c.Database.DSN = configutil.EnvOrDefault("MYSQL_DSN", c.Database.DSN)
	c.Auth.Secret = configutil.EnvOrDefault("AUTH_SECRET", c.Auth.Secret)
}
