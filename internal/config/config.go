package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Configuration struct {
	Build struct {
		Collections string `envconfig:"PUZZLEBUILD_COLLECTIONS" default:"collections"`
		Output      string `envconfig:"PUZZLEBUILD_OUTPUT" default:"generated"`
		Index       string `envconfig:"PUZZLEBUILD_INDEX" default:"index.json"`
	}
	Server struct {
		Host string `envconfig:"SERVER_HOST"`
		Port string `envconfig:"SERVER_PORT" default:"8080"`
	}
}

func InitConfig() (*Configuration, error) {
	cfg := &Configuration{}
	err := envconfig.Process("", cfg)
	return cfg, err
}
