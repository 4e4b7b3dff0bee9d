package cli

import (
	"fmt"

	"github.com/mitchellh/cli"
)

type VersionCommand struct {
	ui cli.Ui
}

func (c *VersionCommand) Help() string {
	return "Usage: tagscheduler version"
}

func (c *VersionCommand) Synopsis() string {
	return "Show version"
}

func (c *VersionCommand) Run(args []string) int {
	c.ui.Output(fmt.Sprintf("tagscheduler %s", Version))
	return 0
}
