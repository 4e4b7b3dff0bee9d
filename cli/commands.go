package cli

import (
	"os"

	"github.com/mitchellh/cli"
)

func Commands(ui cli.Ui) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"run": func() (cli.Command, error) {
			return &RunCommand{ui: ui}, nil
		},
		"plan": func() (cli.Command, error) {
			return &PlanCommand{ui: ui}, nil
		},
		"watch": func() (cli.Command, error) {
			return &WatchCommand{ui: ui}, nil
		},
		"check": func() (cli.Command, error) {
			return &CheckCommand{ui: ui}, nil
		},
		"config": func() (cli.Command, error) {
			return &ConfigCommand{ui: ui}, nil
		},
		"version": func() (cli.Command, error) {
			return &VersionCommand{ui: ui}, nil
		},
	}
}

func newUi() cli.Ui {
	return &cli.PrefixedUi{
		Ui: &cli.BasicUi{
			Writer:      os.Stdout,
			ErrorWriter: os.Stderr,
		},
		InfoPrefix:  "INFO:  ",
		ErrorPrefix: "ERROR: ",
		WarnPrefix:  "WARN:  ",
	}
}
