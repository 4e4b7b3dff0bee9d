package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2021-01-13 is a Wednesday.
func wednesday(hour, minute int) time.Time {
	return time.Date(2021, 1, 13, hour, minute, 0, 0, time.UTC)
}

func TestDailyCheck(t *testing.T) {
	cases := []struct {
		value string
		now   time.Time
		want  Verdict
	}{
		{"0800/1800", wednesday(7, 59), VerdictNone},
		{"0800/1800", wednesday(8, 0), VerdictStart},
		{"0800/1800", wednesday(10, 0), VerdictStart},
		{"0800/1800", wednesday(18, 0), VerdictStop},
		{"0800/1800", wednesday(23, 59), VerdictStop},
		{"/1800", wednesday(10, 0), VerdictNone},
		{"/1800", wednesday(19, 0), VerdictStop},
		{"0800/", wednesday(7, 0), VerdictStart},
		{"0800/", wednesday(9, 0), VerdictNone},
		{"/", wednesday(9, 0), VerdictNone},
		{"//", wednesday(9, 0), VerdictNone},
		{"0800/1800/weekends", wednesday(10, 0), VerdictNone},
		{"0800/1800/wed", wednesday(10, 0), VerdictStart},
		{"0800/1800/mon.tue", wednesday(10, 0), VerdictNone},
		{"0800/1800/all/", wednesday(10, 0), VerdictStart},
		{"0800/1800/all/UTC", wednesday(18, 30), VerdictStop},
	}

	for _, c := range cases {
		d := NewDaily("", c.value)
		assert.Nil(t, d.Err(), c.value)
		assert.Equal(t, c.want, d.Check(c.now), "%s at %s", c.value, c.now)
	}
}

func TestDailyCheckSwapsReversedWindow(t *testing.T) {
	d := NewDaily("", "1800/0800")
	assert.Nil(t, d.Err())

	assert.Equal(t, VerdictNone, d.Check(wednesday(7, 0)))
	assert.Equal(t, VerdictStart, d.Check(wednesday(10, 0)))
	assert.Equal(t, VerdictStop, d.Check(wednesday(23, 0)))
}

func TestDailyCheckTimezone(t *testing.T) {
	d := NewDaily("", "1000/2000/all/Europe-London")
	assert.Nil(t, d.Err())

	// GMT in winter, BST in summer.
	assert.Equal(t, VerdictNone, d.Check(wednesday(9, 30)))
	assert.Equal(t, VerdictStart, d.Check(time.Date(2021, 7, 14, 9, 30, 0, 0, time.UTC)))
	assert.Equal(t, VerdictStop, d.Check(time.Date(2021, 7, 14, 19, 30, 0, 0, time.UTC)))
	assert.Equal(t, VerdictStart, d.Check(wednesday(19, 30)))
}

func TestDailyCheckIsHalfOpenWindow(t *testing.T) {
	d := NewDaily("", "0800/1800")
	start := wednesday(0, 0)

	for m := 0; m < 24*60; m++ {
		now := start.Add(time.Duration(m) * time.Minute)
		var want Verdict
		switch {
		case m < 8*60:
			want = VerdictNone
		case m < 18*60:
			want = VerdictStart
		default:
			want = VerdictStop
		}
		assert.Equal(t, want, d.Check(now), now.String())
	}
}

func TestDailyInvalid(t *testing.T) {
	for _, value := range []string{
		"",
		"0800",
		"0800/1800/all/UTC/extra",
		"8am/1800",
		"0800/25:00",
		"0800/1800/all/Mars-Olympus",
	} {
		d := NewDaily("", value)
		assert.NotNil(t, d.Err(), value)
		assert.Equal(t, VerdictError, d.Check(wednesday(10, 0)), value)
	}
}

func TestDailyCheckOnDaylightSavingChange(t *testing.T) {
	// 2021-03-28 01:30 does not exist in London, 2021-10-31 01:30 happens twice.
	// The local time is normalized by time.Date instead of failing.
	spring := time.Date(2021, 3, 28, 12, 0, 0, 0, time.UTC)
	autumn := time.Date(2021, 10, 31, 12, 0, 0, 0, time.UTC)

	d := NewDaily("", "0130/1800/all/Europe-London")
	assert.Nil(t, d.Err())

	for _, now := range []time.Time{spring, autumn} {
		assert.Equal(t, VerdictStart, d.Check(now), now.String())
		assert.Equal(t, VerdictStop, d.Check(now.Add(7*time.Hour)), now.String())
	}
}
