package resource

import (
	"time"
)

// Static is an in-memory Resource. It records start/stop calls instead of
// performing them.
type Static struct {
	ResourceID     string
	ResourceKind   string
	ResourceStatus Status
	StartedAt      *time.Time
	StoppedAt      *time.Time
	ResourceTags   Tags

	Started int
	Stopped int
}

func NewStatic(id string, status Status, tags map[string]string) *Static {
	ts := Tags{}
	for k, v := range tags {
		ts = append(ts, Tag{Key: k, Value: v})
	}

	return &Static{
		ResourceID:     id,
		ResourceKind:   "static",
		ResourceStatus: status,
		ResourceTags:   ts.Sorted(),
	}
}

func (s *Static) ID() string {
	return s.ResourceID
}

func (s *Static) Kind() string {
	return s.ResourceKind
}

func (s *Static) Status() Status {
	return s.ResourceStatus
}

func (s *Static) StartTime() *time.Time {
	if s.ResourceStatus != StatusRunning {
		return nil
	}
	return s.StartedAt
}

func (s *Static) StopTime() *time.Time {
	if s.ResourceStatus != StatusStopped {
		return nil
	}
	return s.StoppedAt
}

func (s *Static) Tags() (Tags, error) {
	return s.ResourceTags, nil
}

func (s *Static) Start() error {
	s.Started++
	return nil
}

func (s *Static) Stop() error {
	s.Stopped++
	return nil
}
