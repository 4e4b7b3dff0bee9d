package scheduler

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ColOfAbRiX/aws-tagscheduler/resource"
)

// Timer starts or stops a resource once it has been in its current state for
// longer than Threshold.
//
// Value format: "<start|stop>/<minutes>".
type Timer struct {
	base
	Action    Verdict
	Threshold time.Duration

	resource resource.Resource
}

func NewTimer(res resource.Resource, name, value string) *Timer {
	t := &Timer{base: base{name: name, value: value}, resource: res}

	fields := strings.Split(value, "/")
	if len(fields) != 2 {
		t.err = fmt.Errorf("%w: timer wants 2 fields, got %d", ErrInvalidValue, len(fields))
		return t
	}

	action, err := parseAction(strings.ToLower(fields[0]))
	if err != nil {
		t.err = err
		return t
	}

	minutes, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		t.err = fmt.Errorf("%w: timer minutes %q: %v", ErrInvalidValue, fields[1], err)
		return t
	}

	t.Action = action
	t.Threshold = minutesToDuration(minutes)
	return t
}

func (t *Timer) Type() string {
	return TypeTimer
}

func (t *Timer) Check(now time.Time) Verdict {
	if t.err != nil {
		return VerdictError
	}

	var since *time.Time
	action := t.Action

	switch t.resource.Status() {
	case resource.StatusRunning:
		since = t.resource.StartTime()
		if action == VerdictStart {
			action = VerdictNone
		}
	case resource.StatusStopped:
		since = t.resource.StopTime()
		if action == VerdictStop {
			action = VerdictNone
		}
	default:
		return VerdictNone
	}

	if since == nil {
		return VerdictNone
	}

	if now.Sub(*since) > t.Threshold {
		return action
	}
	return VerdictNone
}

// minutesToDuration saturates at the largest Duration, which is never
// exceeded by an elapsed time.
func minutesToDuration(minutes uint64) time.Duration {
	if minutes > uint64(math.MaxInt64/int64(time.Minute)) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(minutes) * time.Minute
}

func parseAction(s string) (Verdict, error) {
	switch s {
	case "start":
		return VerdictStart, nil
	case "stop":
		return VerdictStop, nil
	}
	return VerdictError, fmt.Errorf("%w: %q is neither start nor stop", ErrInvalidValue, s)
}
