package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedCheck(t *testing.T) {
	start := NewFixed("", "start")
	stop := NewFixed("", "stop")

	for _, now := range []time.Time{wednesday(0, 0), wednesday(12, 0), time.Date(1999, 12, 31, 23, 59, 0, 0, time.UTC)} {
		assert.Equal(t, VerdictStart, start.Check(now))
		assert.Equal(t, VerdictStop, stop.Check(now))
	}
}

func TestFixedInvalid(t *testing.T) {
	for _, value := range []string{"", "Start", "start/10", "on"} {
		f := NewFixed("", value)
		assert.ErrorIs(t, f.Err(), ErrInvalidValue, value)
		assert.Equal(t, VerdictError, f.Check(wednesday(12, 0)), value)
	}
}

func TestIgnoreCheck(t *testing.T) {
	assert.Equal(t, VerdictIgnore, NewIgnore("", "ignore").Check(wednesday(12, 0)))

	i := NewIgnore("", "yes")
	assert.ErrorIs(t, i.Err(), ErrInvalidValue)
	assert.Equal(t, VerdictError, i.Check(wednesday(12, 0)))
}
