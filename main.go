package main

import (
	"os"

	"github.com/ColOfAbRiX/aws-tagscheduler/cli"
)

func main() {
	exitCode := cli.Run(os.Args[1:])
	os.Exit(exitCode)
}
