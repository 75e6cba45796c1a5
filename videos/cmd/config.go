package main

import (
	"time"

	"github.com/abhishek622/catflix/internal/configutil"
)

type config struct {
	configutil.Base `yaml:",inline"`
	Database        databaseConfig `yaml:"database"`
	Redis           redisConfig    `yaml:"redis"`
}

type databaseConfig struct {
	DSN string `yaml:"dsn"`
}

type redisConfig struct {
	Address string        `yaml:"address"`
	TTL     time.Duration `yaml:"ttl"`
}

func (c *config) applyDefaults() {
	c.Base.ApplyDefaults()
	if c.API.Port == 0 {
		c.API.Port = 8082
	}
	if c.GRPC.Port == 0 {
		c.GRPC.Port = 9082
	}
	if c.Redis.TTL <= 0 {
		c.Redis.TTL = 10 * time.Minute
	}
	c.Database.DSN = configutil.EnvOrDefault("MYSQL_DSN", c.Database.DSN)
	c.Redis.Address = configutil.EnvOrDefault("REDIS_ADDR", c.Redis.Address)
}
