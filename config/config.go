package config

import (
	"time"

	"github.com/ColOfAbRiX/aws-tagscheduler/command"
)

type Config struct {
	LogLevel          string              `yaml:"LogLevel" validate:"oneof=debug info warn error"`
	DryRun            bool                `yaml:"DryRun"`
	Regions           []string            `yaml:"Regions"`
	DefaultRegion     string              `yaml:"DefaultRegion" validate:"required"`
	Kinds             []string            `yaml:"Kinds" validate:"required,dive,oneof=ec2 rds"`
	EC2Filters        map[string][]string `yaml:"EC2Filters"`
	CloudWatchMetrics bool                `yaml:"CloudWatchMetrics"`
	MetricNamespace   string              `yaml:"MetricNamespace" validate:"required"`
	EventCommand      *command.Command    `yaml:"EventCommand"`
	LoopInterval      string              `yaml:"LoopInterval" validate:"required"`
	APIAddr           string              `yaml:"APIAddr"`
}

func NewConfig() *Config {
	return &Config{
		LogLevel:        "info",
		DefaultRegion:   "us-east-1",
		Kinds:           []string{"ec2", "rds"},
		EC2Filters:      map[string][]string{},
		MetricNamespace: "TagScheduler",
		LoopInterval:    "1m",
	}
}

// Interval is LoopInterval parsed. Validate makes sure it parses.
func (c *Config) Interval() time.Duration {
	d, _ := time.ParseDuration(c.LoopInterval)
	return d
}

func (c *Config) HasKind(kind string) bool {
	for _, k := range c.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}
