package main

import "github.com/abhishek622/catflix/internal/configutil"

type config struct {
	configutil.Base `yaml:",inline"`
}

func (c *config) applyDefaults() {
	c.Base.ApplyDefaults()
	if c.API.Port == 0 {
		c.API.Port = 8080
	}
	if c.GRPC.Port == 0 {
		c.GRPC.Port = 9080
	}
}
