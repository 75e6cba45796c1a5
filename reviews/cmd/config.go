package main

import (
	"github.com/abhishek622/catflix/internal/configutil"
	"github.com/abhishek622/catflix/reviews/internal/controller/reviews"
)

type config struct {
	configutil.Base `yaml:",inline"`
	Database        databaseConfig `yaml:"database"`
	Best            bestConfig     `yaml:"best"`
	Kafka           kafkaConfig    `yaml:"kafka"`
}

type databaseConfig struct {
	DSN string `yaml:"dsn"`
}

type bestConfig struct {
	Limit int `yaml:"limit"`
}

type kafkaConfig struct {
	Enabled bool   `yaml:"enabled"`
	Address string `yaml:"address"`
	GroupID string `yaml:"groupId"`
	Topic   string `yaml:"topic"`
}

func (c *config) applyDefaults() {
	c.Base.ApplyDefaults()
	if c.API.Port == 0 {
		c.API.Port = 8083
	}
	if c.GRPC.Port == 0 {
		c.GRPC.Port = 9083
	}
	if c.Best.Limit <= 0 {
		c.Best.Limit = reviews.DefaultBestLimit
	}
	if c.Kafka.GroupID == "" {
		c.Kafka.GroupID = "reviews"
	}
	if c.Kafka.Topic == "" {
		c.Kafka.Topic = "reviews"
	}
	c.Database.DSN = configutil.EnvOrDefault("MYSQL_DSN", c.Database.DSN)
	c.Kafka.Address = configutil.EnvOrDefault("KAFKA_ADDR", c.Kafka.Address)
	c.Best.Limit = configutil.EnvInt("BEST_LIMIT", c.Best.Limit)
}
