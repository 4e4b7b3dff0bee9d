package cli

import (
	"fmt"
	"os"

	"github.com/mitchellh/cli"
)

// Run starts CLI
func Run(args []string) int {
	c := &cli.CLI{
		Name:     "tagscheduler",
		Version:  Version,
		Args:     args,
		Commands: Commands(newUi()),
	}

	exitCode, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error executing CLI: %s\n", err.Error())
		return 1
	}

	return exitCode
}
