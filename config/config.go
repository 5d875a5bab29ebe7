package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TERMSWEEP_LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"TERMSWEEP_LOG_FILE"`

	Director Director `yaml:"director"`
}

type Director struct {
	Interval time.Duration `yaml:"interval" env:"TERMSWEEP_DIRECTOR_INTERVAL" env-default:"250ms"`
}

// Load reads the configuration file at path, if any, and the environment.
// Environment variables take precedence over the file.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	return config, nil
}
