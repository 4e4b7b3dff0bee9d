package scheduler

import (
	"fmt"
	"strings"
	"time"
)

// Daily starts and stops a resource around a daily UTC window.
//
// Value format: "<start>/<stop>[/<days>[/<timezone>]]" where start and stop
// are HHMM (either may be empty), days is a WeekdaySet selector and timezone
// a zone name, UTC by default.
type Daily struct {
	base
	Start *Clock
	Stop  *Clock
	Days  WeekdaySet
}

func NewDaily(name, value string) *Daily {
	d := &Daily{base: base{name: name, value: value}}

	fields := strings.Split(value, "/")
	if len(fields) < 2 || len(fields) > 4 {
		d.err = fmt.Errorf("%w: daily wants 2 to 4 fields, got %d", ErrInvalidValue, len(fields))
		return d
	}

	timezone := "UTC"
	if len(fields) > 3 && strings.TrimSpace(fields[3]) != "" {
		timezone = fields[3]
	}

	var err error
	d.Start, err = ParseClock(fields[0], timezone)
	if err != nil {
		d.err = err
		return d
	}
	d.Stop, err = ParseClock(fields[1], timezone)
	if err != nil {
		d.err = err
		return d
	}

	if len(fields) > 2 {
		d.Days = ParseWeekdays(fields[2])
	} else {
		d.Days = AllWeekdays()
	}

	return d
}

func (d *Daily) Type() string {
	return TypeDaily
}

func (d *Daily) Check(now time.Time) Verdict {
	if d.err != nil {
		return VerdictError
	}

	now = now.UTC()
	if !d.Days.Has(now.Weekday()) {
		return VerdictNone
	}

	return window(TimeOfDayOf(now), d.utc(d.Start, now), d.utc(d.Stop, now))
}

func (d *Daily) utc(c *Clock, on time.Time) *TimeOfDay {
	if c == nil {
		return nil
	}
	t := c.UTC(on)
	return &t
}

// window treats [start, stop) as a half open interval. When start is after
// stop the two are swapped, so an overnight window such as 2200-0600 behaves
// like 0600-2200.
// TODO: support overnight windows once existing tags are migrated off the swap.
func window(now TimeOfDay, start, stop *TimeOfDay) Verdict {
	switch {
	case start == nil && stop == nil:
		return VerdictNone
	case start == nil:
		if now >= *stop {
			return VerdictStop
		}
		return VerdictNone
	case stop == nil:
		if now < *start {
			return VerdictStart
		}
		return VerdictNone
	}

	from, to := *start, *stop
	if from > to {
		from, to = to, from
	}

	if now >= from && now < to {
		return VerdictStart
	}
	if now >= to {
		return VerdictStop
	}
	return VerdictNone
}
