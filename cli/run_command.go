package cli

import (
	"flag"
	"fmt"
	"time"

	"github.com/mitchellh/cli"
)

type RunCommand struct {
	ui cli.Ui
}

func (c *RunCommand) Help() string {
	return `Usage: tagscheduler run [-config path] [-dry-run] [-log-level level]

  Evaluates the scheduler tags of every EC2 and RDS instance once and
  starts or stops them accordingly.`
}

func (c *RunCommand) Synopsis() string {
	return "Start and stop tagged resources once"
}

func (c *RunCommand) Run(args []string) int {
	f := &commonFlags{}
	flags := flag.NewFlagSet("run", flag.ContinueOnError)
	f.register(flags)
	if err := flags.Parse(args); err != nil {
		return 1
	}

	cc, err := f.load()
	if err != nil {
		c.ui.Error(fmt.Sprint(err))
		return 1
	}

	logger, err := newLogger(cc.LogLevel)
	if err != nil {
		c.ui.Error(fmt.Sprint(err))
		return 1
	}

	r, err := newRunner(cc, logger, nil)
	if err != nil {
		c.ui.Error(fmt.Sprint(err))
		return 1
	}

	reports, err := r.RunOnce(time.Now().UTC())
	if err != nil {
		c.ui.Error(fmt.Sprint(err))
		return 1
	}

	status := 0
	for _, rep := range reports {
		if rep.Error != "" {
			c.ui.Warn(fmt.Sprintf("%s: %s", rep.Region, rep.Error))
			status = 2
		}
	}
	return status
}
