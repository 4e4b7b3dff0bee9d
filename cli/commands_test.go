package cli

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
)

func TestCommands(t *testing.T) {
	cmds := Commands(cli.NewMockUi())
	for _, name := range []string{"run", "plan", "watch", "check", "config", "version"} {
		f, ok := cmds[name]
		if assert.True(t, ok, name) {
			cmd, err := f()
			assert.NoError(t, err)
			assert.NotEmpty(t, cmd.Synopsis(), name)
			assert.NotEmpty(t, cmd.Help(), name)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	ui := cli.NewMockUi()
	c := &VersionCommand{ui: ui}

	assert.Equal(t, 0, c.Run(nil))
	assert.Equal(t, "tagscheduler "+Version+"\n", ui.OutputWriter.String())
}

func TestCheckCommand(t *testing.T) {
	ui := cli.NewMockUi()
	c := &CheckCommand{ui: ui}

	code := c.Run([]string{
		"-status", "stopped",
		"-at", "2021-01-13T10:00:00Z",
		"Name=web",
		"scheduler-daily-office=0800/1800/weekdays",
		"scheduler-fixed=stop",
	})
	assert.Equal(t, 0, code, ui.ErrorWriter.String())

	lines := strings.Split(strings.TrimSpace(ui.OutputWriter.String()), "\n")
	assert.Equal(t, []string{
		`fixed name="" value="stop" -> stop`,
		`daily name="office" value="0800/1800/weekdays" -> start`,
		`action: start`,
	}, lines)
}

func TestCheckCommandTimer(t *testing.T) {
	ui := cli.NewMockUi()
	c := &CheckCommand{ui: ui}

	code := c.Run([]string{
		"-status", "running",
		"-started-at", "2021-01-13T09:00:00Z",
		"-at", "2021-01-13T10:00:00Z",
		"scheduler-timer=stop/30",
	})
	assert.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Contains(t, ui.OutputWriter.String(), "action: stop\n")
}

func TestCheckCommandInvalidRule(t *testing.T) {
	ui := cli.NewMockUi()
	c := &CheckCommand{ui: ui}

	code := c.Run([]string{"-status", "running", "scheduler-timer=later"})
	assert.Equal(t, 0, code)
	assert.Contains(t, ui.OutputWriter.String(), `timer name="" value="later" -> error (invalid tag value`)
	assert.Contains(t, ui.OutputWriter.String(), "action: none\n")
}

func TestCheckCommandErrors(t *testing.T) {
	for _, args := range [][]string{
		{"scheduler-fixed=start"},
		{"-status", "pending", "scheduler-fixed=start"},
		{"-status", "running", "scheduler-fixed"},
		{"-status", "running", "-at", "tomorrow"},
		{"-status", "running", "-started-at", "yesterday"},
	} {
		ui := cli.NewMockUi()
		c := &CheckCommand{ui: ui}
		assert.Equal(t, 1, c.Run(args), strings.Join(args, " "))
		assert.NotEmpty(t, ui.ErrorWriter.String())
	}
}

func TestConfigCommand(t *testing.T) {
	dir, err := ioutil.TempDir("", "cli")
	if !assert.NoError(t, err) {
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "config.yml")
	assert.NoError(t, ioutil.WriteFile(path, []byte("Kinds: [ec2]\nLoopInterval: 5m\n"), 0644))

	ui := cli.NewMockUi()
	c := &ConfigCommand{ui: ui}
	assert.Equal(t, 0, c.Run([]string{"-config", path}))
	assert.Contains(t, ui.OutputWriter.String(), "LoopInterval: 5m")

	assert.NoError(t, ioutil.WriteFile(path, []byte("Kinds: [lambda]\n"), 0644))
	ui = cli.NewMockUi()
	c = &ConfigCommand{ui: ui}
	assert.Equal(t, 1, c.Run([]string{"-config", path}))
	assert.Contains(t, ui.ErrorWriter.String(), "Validation error")
}

func TestParseInstant(t *testing.T) {
	at, err := parseInstant("2021-01-13T11:00:00+01:00")
	assert.NoError(t, err)
	assert.Equal(t, "2021-01-13T10:00:00Z", at.Format("2006-01-02T15:04:05Z07:00"))

	_, err = parseInstant("13/01/2021")
	assert.Error(t, err)
}
