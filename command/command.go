package command

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Command is an external program run by the scheduler, such as the event
// hook.
type Command struct {
	Path string   `yaml:"Path" validate:"required"`
	Args []string `yaml:"Args"`
}

func (c *Command) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}

// RunWithStdin runs the command with input on stdin and returns its stdout.
func (c *Command) RunWithStdin(input string) (string, error) {
	cmd := exec.Command(c.Path, c.Args...)
	cmd.Stdin = strings.NewReader(input)

	b, err := cmd.Output()
	if err != nil {
		return string(b), wrapError(err)
	}
	return string(b), nil
}

func (c *Command) GetString() (string, error) {
	cmd := exec.Command(c.Path, c.Args...)

	b, err := cmd.Output()
	if err != nil {
		return "", wrapError(err)
	}

	s := string(b)
	return strings.TrimRight(s, "\n"), nil
}

func wrapError(err error) error {
	if exitError, ok := err.(*exec.ExitError); ok {
		return fmt.Errorf("%w: %s", err, strings.TrimRight(string(exitError.Stderr), "\n"))
	}
	return err
}

// ExitStatus returns the exit code carried by err, or -1 when err did not
// come from a finished process.
func ExitStatus(err error) int {
	var exitError *exec.ExitError
	if errors.As(err, &exitError) {
		return exitError.ExitCode()
	}
	return -1
}
