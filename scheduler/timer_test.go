package scheduler

import (
	"math"
	"testing"
	"time"

	"github.com/ColOfAbRiX/aws-tagscheduler/resource"
	"github.com/stretchr/testify/assert"
)

func TestTimerCheckRunning(t *testing.T) {
	now := wednesday(12, 0)

	res := resource.NewStatic("i-1", resource.StatusRunning, nil)
	started := now.Add(-15 * time.Minute)
	res.StartedAt = &started

	timer := NewTimer(res, "", "stop/10")
	assert.Nil(t, timer.Err())
	assert.Equal(t, 10*time.Minute, timer.Threshold)
	assert.Equal(t, VerdictStop, timer.Check(now))

	started = now.Add(-5 * time.Minute)
	assert.Equal(t, VerdictNone, timer.Check(now))

	started = now.Add(-10 * time.Minute)
	assert.Equal(t, VerdictNone, timer.Check(now))
}

func TestTimerCheckStopped(t *testing.T) {
	now := wednesday(12, 0)

	res := resource.NewStatic("i-1", resource.StatusStopped, nil)
	stopped := now.Add(-2 * time.Hour)
	res.StoppedAt = &stopped

	assert.Equal(t, VerdictStart, NewTimer(res, "", "START/60").Check(now))
	assert.Equal(t, VerdictNone, NewTimer(res, "", "start/180").Check(now))
}

func TestTimerCheckNeutralizesCurrentState(t *testing.T) {
	now := wednesday(12, 0)
	long := now.Add(-24 * time.Hour)

	running := resource.NewStatic("i-1", resource.StatusRunning, nil)
	running.StartedAt = &long
	assert.Equal(t, VerdictNone, NewTimer(running, "", "start/1").Check(now))

	stopped := resource.NewStatic("i-2", resource.StatusStopped, nil)
	stopped.StoppedAt = &long
	assert.Equal(t, VerdictNone, NewTimer(stopped, "", "stop/1").Check(now))
}

func TestTimerCheckWithoutTimestamp(t *testing.T) {
	now := wednesday(12, 0)
	long := now.Add(-24 * time.Hour)

	res := resource.NewStatic("db-1", resource.StatusRunning, nil)
	assert.Equal(t, VerdictNone, NewTimer(res, "", "stop/1").Check(now))

	unknown := resource.NewStatic("i-3", resource.StatusUnknown, nil)
	unknown.StartedAt = &long
	unknown.StoppedAt = &long
	assert.Equal(t, VerdictNone, NewTimer(unknown, "", "stop/1").Check(now))
}

func TestTimerInvalid(t *testing.T) {
	res := resource.NewStatic("i-1", resource.StatusRunning, nil)

	for _, value := range []string{"", "stop", "stop/10/20", "reboot/10", "stop/-1", "stop/ten", "stop/1.5", "stop /10", "stop/ 10", "stop/99999999999999999999"} {
		timer := NewTimer(res, "", value)
		assert.ErrorIs(t, timer.Err(), ErrInvalidValue, value)
		assert.Equal(t, VerdictError, timer.Check(wednesday(12, 0)), value)
	}
}

func TestTimerHugeThreshold(t *testing.T) {
	now := wednesday(12, 0)

	res := resource.NewStatic("i-1", resource.StatusRunning, nil)
	started := now.Add(-time.Minute)
	res.StartedAt = &started

	for _, value := range []string{"stop/153722868", "stop/200000000", "stop/18446744073709551615"} {
		timer := NewTimer(res, "", value)
		assert.Nil(t, timer.Err(), value)
		assert.Equal(t, time.Duration(math.MaxInt64), timer.Threshold, value)
		assert.Equal(t, VerdictNone, timer.Check(now), value)
	}

	timer := NewTimer(res, "", "stop/153722867")
	assert.Nil(t, timer.Err())
	assert.Equal(t, 153722867*time.Minute, timer.Threshold)
	assert.Equal(t, VerdictNone, timer.Check(now))
}
