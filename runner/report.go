package runner

import (
	"time"

	"github.com/ColOfAbRiX/aws-tagscheduler/resource"
	"github.com/ColOfAbRiX/aws-tagscheduler/scheduler"
)

// Decision is the outcome of one resource in one run.
type Decision struct {
	Region     string           `json:"region"`
	Kind       string           `json:"kind"`
	ResourceID string           `json:"resourceID"`
	Status     resource.Status  `json:"status"`
	Action     scheduler.Action `json:"action"`
	Dispatched bool             `json:"dispatched"`
	DryRun     bool             `json:"dryRun"`
	Error      string           `json:"error,omitempty"`
}

// Report collects the decisions taken for one region in one run.
type Report struct {
	RunID     string      `json:"runID"`
	Region    string      `json:"region"`
	Time      time.Time   `json:"time"`
	Decisions []*Decision `json:"decisions"`
	Error     string      `json:"error,omitempty"`
}

// Dispatched counts the decisions with the given action that were sent to
// the cloud provider.
func (r *Report) Dispatched(action scheduler.Action) int {
	n := 0
	for _, d := range r.Decisions {
		if d.Dispatched && d.Action == action {
			n++
		}
	}
	return n
}

// Reporter receives the report of every region once it has been dispatched.
type Reporter interface {
	Report(report *Report) error
}
