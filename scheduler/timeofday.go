package scheduler

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

// TimeOfDay is a UTC wall clock time, stored as the offset from midnight.
// It carries no date and repeats every 24 hours.
type TimeOfDay time.Duration

func TimeOfDayOf(t time.Time) TimeOfDay {
	t = t.UTC()
	d := time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
	return TimeOfDay(d)
}

func (t TimeOfDay) String() string {
	d := time.Duration(t)
	return fmt.Sprintf("%02d:%02d", int(d/time.Hour), int(d%time.Hour/time.Minute))
}

// Clock is an HHMM time in a named location. It is converted to a UTC
// TimeOfDay against a reference date so that daylight saving is honoured.
type Clock struct {
	Hour     int
	Minute   int
	Location *time.Location
}

// UTC returns the UTC time of day of the clock on the date of on, as seen in
// the clock's location.
func (c *Clock) UTC(on time.Time) TimeOfDay {
	y, m, d := on.In(c.Location).Date()
	return TimeOfDayOf(time.Date(y, m, d, c.Hour, c.Minute, 0, 0, c.Location))
}

func (c *Clock) String() string {
	return fmt.Sprintf("%02d%02d %s", c.Hour, c.Minute, c.Location)
}

// ParseTimezone resolves a zone name. Empty means UTC and hyphens stand for
// the zone separator, so "Canada-Yukon" is "Canada/Yukon".
func ParseTimezone(raw string) (*time.Location, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return time.UTC, nil
	}
	name = strings.Replace(name, "-", "/", -1)

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTimezone, raw, err)
	}
	return loc, nil
}

// ParseClock parses a strict 4 digit 24h HHMM string. It returns nil without
// error when raw is empty.
func ParseClock(raw, timezone string) (*Clock, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}

	if len(s) != 4 {
		return nil, fmt.Errorf("%w: %q is not HHMM", ErrInvalidTime, raw)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: %q is not HHMM", ErrInvalidTime, raw)
		}
	}

	hour, _ := strconv.Atoi(s[:2])
	minute, _ := strconv.Atoi(s[2:])
	if hour > 23 || minute > 59 {
		return nil, fmt.Errorf("%w: %q is out of range", ErrInvalidTime, raw)
	}

	loc, err := ParseTimezone(timezone)
	if err != nil {
		return nil, err
	}

	return &Clock{Hour: hour, Minute: minute, Location: loc}, nil
}

// ParseTime parses raw in timezone and returns its UTC time of day on the
// date of on. It returns nil without error when raw is empty.
func ParseTime(raw, timezone string, on time.Time) (*TimeOfDay, error) {
	c, err := ParseClock(raw, timezone)
	if err != nil || c == nil {
		return nil, err
	}

	t := c.UTC(on)
	return &t, nil
}
