package main

import "github.com/abhishek622/catflix/internal/configutil"

type config struct {
	configutil.Base `yaml:",inline"`
	Database        databaseConfig `yaml:"database"`
}

type databaseConfig struct {
	DSN string `yaml:"dsn"`
}

func (c *config) applyDefaults() {
	c.Base.ApplyDefaults()
	if c.API.Port == 0 {
		c.API.Port = 8081
	}
	if c.GRPC.Port == 0 {
		c.GRPC.Port = 9081
	}
	c.Database.DSN = configutil.EnvOrDefault("MYSQL_DSN", c.Database.DSN)
}
