package cli

import (
	"flag"
	"fmt"

	"github.com/ColOfAbRiX/aws-tagscheduler/config"
	"github.com/mitchellh/cli"
	yaml "gopkg.in/yaml.v2"
)

type ConfigCommand struct {
	ui cli.Ui
}

func (c *ConfigCommand) Help() string {
	return `Usage: tagscheduler config [-config path]

  Loads and validates the config, then prints it with defaults and
  environment overrides applied.`
}

func (c *ConfigCommand) Run(args []string) int {
	flags := flag.NewFlagSet("config", flag.ContinueOnError)
	path := flags.String("config", "", "path to the YAML config file")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	cc, err := config.Load(*path)
	if err != nil {
		c.ui.Error("Validation error:")
		c.ui.Error(fmt.Sprint(err))
		return 1
	}

	b, err := yaml.Marshal(cc)
	if err != nil {
		c.ui.Error(fmt.Sprint(err))
		return 1
	}
	c.ui.Output(string(b))

	return 0
}

func (c *ConfigCommand) Synopsis() string {
	return "Show config in parsed format"
}
