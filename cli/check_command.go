package cli

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/ColOfAbRiX/aws-tagscheduler/resource"
	"github.com/ColOfAbRiX/aws-tagscheduler/scheduler"
	"github.com/mitchellh/cli"
	"github.com/sirupsen/logrus"
)

type CheckCommand struct {
	ui cli.Ui
}

func (c *CheckCommand) Help() string {
	return `Usage: tagscheduler check -status status [options] key=value...

  Evaluates a set of tags against an imaginary resource, without AWS.

  Options:
    -status      running or stopped
    -started-at  RFC3339 time the resource was started
    -stopped-at  RFC3339 time the resource was stopped
    -at          RFC3339 time to evaluate at, now by default

  Example:
    tagscheduler check -status stopped -at 2021-01-13T10:00:00Z scheduler-daily=0800/1800/weekdays`
}

func (c *CheckCommand) Synopsis() string {
	return "Evaluate scheduler tags offline"
}

func (c *CheckCommand) Run(args []string) int {
	flags := flag.NewFlagSet("check", flag.ContinueOnError)
	status := flags.String("status", "", "running or stopped")
	startedAt := flags.String("started-at", "", "RFC3339 start time")
	stoppedAt := flags.String("stopped-at", "", "RFC3339 stop time")
	at := flags.String("at", "", "RFC3339 evaluation time")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	res, err := c.staticResource(*status, *startedAt, *stoppedAt, flags.Args())
	if err != nil {
		c.ui.Error(fmt.Sprint(err))
		return 1
	}

	now, err := parseInstant(*at)
	if err != nil {
		c.ui.Error(fmt.Sprint(err))
		return 1
	}

	logger := logrus.New()
	logger.Level = logrus.WarnLevel
	e := scheduler.NewEvaluator(logger)

	rules, err := e.Rules(res)
	if err != nil {
		c.ui.Error(fmt.Sprint(err))
		return 1
	}

	for _, r := range rules {
		line := fmt.Sprintf("%s name=%q value=%q -> %s", r.Type(), r.Name(), r.Value(), r.Check(now))
		if r.Err() != nil {
			line += fmt.Sprintf(" (%s)", r.Err())
		}
		c.ui.Output(line)
	}
	c.ui.Output(fmt.Sprintf("action: %s", e.Resolve(res, rules, now)))

	return 0
}

func (c *CheckCommand) staticResource(status, startedAt, stoppedAt string, tags []string) (*resource.Static, error) {
	s := resource.Status(strings.ToLower(status))
	if s != resource.StatusRunning && s != resource.StatusStopped {
		return nil, fmt.Errorf("-status must be running or stopped, got %q", status)
	}

	kv := map[string]string{}
	for _, t := range tags {
		i := strings.Index(t, "=")
		if i < 0 {
			return nil, fmt.Errorf("tag %q is not key=value", t)
		}
		kv[t[:i]] = t[i+1:]
	}

	res := resource.NewStatic("check", s, kv)

	var err error
	if res.StartedAt, err = parseOptionalInstant(startedAt); err != nil {
		return nil, err
	}
	if res.StoppedAt, err = parseOptionalInstant(stoppedAt); err != nil {
		return nil, err
	}

	return res, nil
}

func parseOptionalInstant(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseInstant(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
