package runner

import (
	"encoding/json"
	"fmt"

	"github.com/ColOfAbRiX/aws-tagscheduler/command"
	"github.com/ColOfAbRiX/aws-tagscheduler/scheduler"
	"github.com/sirupsen/logrus"
)

const hookEvent = "resourcesScheduled"

// HookReporter runs a command with a JSON event on stdin for every report
// in which something was started or stopped.
type HookReporter struct {
	Command *command.Command
	Logger  logrus.FieldLogger
}

func (h *HookReporter) Report(report *Report) error {
	started := report.Dispatched(scheduler.ActionStart)
	stopped := report.Dispatched(scheduler.ActionStop)
	if started+stopped == 0 {
		return nil
	}

	input, err := json.Marshal(map[string]interface{}{
		"event":   hookEvent,
		"message": fmt.Sprintf("Started %d and stopped %d resources in %s", started, stopped, report.Region),
		"detail":  report,
	})
	if err != nil {
		return err
	}

	h.Logger.WithField("command", h.Command.String()).Debug("running hook command")
	out, err := h.Command.RunWithStdin(string(input) + "\n")
	if err != nil {
		return fmt.Errorf("hook command: %w", err)
	}
	if out != "" {
		h.Logger.Debug(out)
	}
	return nil
}
