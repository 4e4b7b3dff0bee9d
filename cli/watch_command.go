package cli

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ColOfAbRiX/aws-tagscheduler/httpapi"
	"github.com/gin-gonic/gin"
	"github.com/mitchellh/cli"
)

type WatchCommand struct {
	ui cli.Ui
}

func (c *WatchCommand) Help() string {
	return `Usage: tagscheduler watch [-config path] [-dry-run] [-log-level level]

  Runs every LoopInterval until interrupted. When APIAddr is set the
  latest reports are served over HTTP.`
}

func (c *WatchCommand) Run(args []string) int {
	f := &commonFlags{}
	flags := flag.NewFlagSet("watch", flag.ContinueOnError)
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

	var api *httpapi.Handler
	if cc.APIAddr != "" {
		gin.SetMode(gin.ReleaseMode)
		api = httpapi.NewHandler()
		go func() {
			logger.Infof("serving API on %s", cc.APIAddr)
			err := api.Run(cc.APIAddr)
			if err != nil {
				logger.WithError(err).Error("API server stopped")
			}
		}()
	}

	r, err := newRunner(cc, logger, api)
	if err != nil {
		c.ui.Error(fmt.Sprint(err))
		return 1
	}

	sigchan := make(chan os.Signal, 1)
	signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigchan)

	c.ui.Info(fmt.Sprintf("Watch loop started, running every %s", cc.Interval()))
	r.StartLoop(cc.Interval(), sigchan)

	return 0
}

func (c *WatchCommand) Synopsis() string {
	return "Start and stop tagged resources periodically"
}
