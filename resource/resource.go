package resource

import (
	"sort"
	"time"
)

type Status string

const (
	StatusUnknown Status = ""
	StatusRunning Status = "running"
	StatusStopped Status = "stopped"
)

func (s Status) String() string {
	if s == StatusUnknown {
		return "unknown"
	}
	return string(s)
}

type Tag struct {
	Key   string
	Value string
}

type Tags []Tag

// Sorted returns a copy of the tags ordered by key.
func (ts Tags) Sorted() Tags {
	ret := make(Tags, len(ts))
	copy(ret, ts)
	sort.SliceStable(ret, func(i, j int) bool {
		return ret[i].Key < ret[j].Key
	})
	return ret
}

// Resource is anything that can be started and stopped by the scheduler.
// StartTime is only meaningful while running, StopTime only while stopped.
type Resource interface {
	ID() string
	Kind() string
	Status() Status
	StartTime() *time.Time
	StopTime() *time.Time
	Tags() (Tags, error)
	Start() error
	Stop() error
}
