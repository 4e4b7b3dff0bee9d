package scheduler

import (
	"sort"
	"strings"
	"time"
)

var weekdayCodes = map[time.Weekday]string{
	time.Monday:    "mon",
	time.Tuesday:   "tue",
	time.Wednesday: "wed",
	time.Thursday:  "thu",
	time.Friday:    "fri",
	time.Saturday:  "sat",
	time.Sunday:    "sun",
}

// WeekdaySet holds lowercased three letter weekday codes.
type WeekdaySet map[string]struct{}

func newWeekdaySet(codes ...string) WeekdaySet {
	s := WeekdaySet{}
	for _, c := range codes {
		s[c] = struct{}{}
	}
	return s
}

func AllWeekdays() WeekdaySet {
	return newWeekdaySet("mon", "tue", "wed", "thu", "fri", "sat", "sun")
}

func (s WeekdaySet) Has(d time.Weekday) bool {
	_, ok := s[weekdayCodes[d]]
	return ok
}

func (s WeekdaySet) String() string {
	codes := make([]string, 0, len(s))
	for c := range s {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return strings.Join(codes, ".")
}

// ParseWeekdays understands "all", "weekdays", "weekends" and dot separated
// lists like "mon.wed.fri". An empty selector means all days. List tokens
// are not validated: an unknown token never matches any day.
func ParseWeekdays(raw string) WeekdaySet {
	s := strings.ToLower(strings.TrimSpace(raw))

	switch s {
	case "", "all":
		return AllWeekdays()
	case "weekdays":
		return newWeekdaySet("mon", "tue", "wed", "thu", "fri")
	case "weekends":
		return newWeekdaySet("sat", "sun")
	}

	return newWeekdaySet(strings.Split(s, ".")...)
}
