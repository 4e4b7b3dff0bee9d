package config

import (
	"fmt"
	"time"

	validator "gopkg.in/go-playground/validator.v9"
)

func (c *Config) Validate() error {
	validate := validator.New()
	err := validate.Struct(c)
	if err != nil {
		return err
	}

	d, err := time.ParseDuration(c.LoopInterval)
	if err != nil {
		return fmt.Errorf("LoopInterval: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("LoopInterval must be positive, got %s", c.LoopInterval)
	}

	return nil
}
