package cli

import (
	"flag"
	"fmt"
	"time"

	"github.com/ColOfAbRiX/aws-tagscheduler/runner"
	"github.com/mitchellh/cli"
)

type PlanCommand struct {
	ui cli.Ui
}

func (c *PlanCommand) Help() string {
	return `Usage: tagscheduler plan [-config path] [-at time] [-log-level level]

  Shows what run would do, without starting or stopping anything.
  -at evaluates the tags at another instant (RFC3339).`
}

func (c *PlanCommand) Synopsis() string {
	return "Show what would be started and stopped"
}

func (c *PlanCommand) Run(args []string) int {
	f := &commonFlags{}
	flags := flag.NewFlagSet("plan", flag.ContinueOnError)
	f.register(flags)
	at := flags.String("at", "", "evaluate at this RFC3339 time instead of now")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	now, err := parseInstant(*at)
	if err != nil {
		c.ui.Error(fmt.Sprint(err))
		return 1
	}

	cc, err := f.load()
	if err != nil {
		c.ui.Error(fmt.Sprint(err))
		return 1
	}
	cc.DryRun = true

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

	reports, err := r.RunOnce(now)
	if err != nil {
		c.ui.Error(fmt.Sprint(err))
		return 1
	}

	c.printPlan(reports)
	return 0
}

func (c *PlanCommand) printPlan(reports []*runner.Report) {
	for _, rep := range reports {
		if rep.Error != "" {
			c.ui.Warn(fmt.Sprintf("%s: %s", rep.Region, rep.Error))
			continue
		}
		for _, d := range rep.Decisions {
			line := fmt.Sprintf("%s %s %s %s -> %s", d.Region, d.Kind, d.ResourceID, d.Status, d.Action)
			if d.Error != "" {
				line += " (" + d.Error + ")"
			}
			c.ui.Output(line)
		}
	}
}

// parseInstant parses an RFC3339 time, now when s is empty.
func parseInstant(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
