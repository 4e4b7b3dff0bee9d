package cli

import (
	"flag"
	"os"

	"github.com/ColOfAbRiX/aws-tagscheduler/config"
	"github.com/ColOfAbRiX/aws-tagscheduler/httpapi"
	"github.com/ColOfAbRiX/aws-tagscheduler/inventory"
	"github.com/ColOfAbRiX/aws-tagscheduler/metric"
	"github.com/ColOfAbRiX/aws-tagscheduler/runner"
	"github.com/ColOfAbRiX/aws-tagscheduler/scheduler"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/sirupsen/logrus"
)

const Version = "0.3.0"

// commonFlags are shared by the commands that talk to AWS.
type commonFlags struct {
	configPath string
	logLevel   string
	dryRun     bool
}

func (f *commonFlags) register(flags *flag.FlagSet) {
	flags.StringVar(&f.configPath, "config", "", "path to the YAML config file")
	flags.StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVar(&f.dryRun, "dry-run", false, "evaluate without starting or stopping anything")
}

func (f *commonFlags) load() (*config.Config, error) {
	c, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.logLevel != "" {
		c.LogLevel = f.logLevel
	}
	if f.dryRun {
		c.DryRun = true
	}
	return c, nil
}

func newLogger(level string) (*logrus.Logger, error) {
	l, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.Out = os.Stderr
	logger.Level = l
	return logger, nil
}

// newRunner wires the AWS inventory and the configured reporters. api is
// added as a reporter when not nil.
func newRunner(c *config.Config, logger *logrus.Logger, api *httpapi.Handler) (*runner.Runner, error) {
	sess, err := session.NewSession()
	if err != nil {
		return nil, err
	}

	r := &runner.Runner{
		Provider:  inventory.New(sess, c, logger),
		Evaluator: scheduler.NewEvaluator(logger),
		Logger:    logger,
		Regions:   c.Regions,
		DryRun:    c.DryRun,
	}

	if c.CloudWatchMetrics && !c.DryRun {
		r.Reporters = append(r.Reporters, metric.NewCloudWatch(sess, c.MetricNamespace))
	}
	if c.EventCommand != nil && !c.DryRun {
		r.Reporters = append(r.Reporters, &runner.HookReporter{Command: c.EventCommand, Logger: logger})
	}
	if api != nil {
		r.Reporters = append(r.Reporters, api)
	}

	return r, nil
}
