package scheduler

import "fmt"

// Verdict is the opinion of a single rule about what should happen to a
// resource right now.
type Verdict int

const (
	VerdictNone Verdict = iota
	VerdictStart
	VerdictStop
	VerdictIgnore
	VerdictError
)

func (v Verdict) String() string {
	switch v {
	case VerdictStart:
		return "start"
	case VerdictStop:
		return "stop"
	case VerdictIgnore:
		return "ignore"
	case VerdictError:
		return "error"
	default:
		return "none"
	}
}

// Action is the resolved decision for a resource.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionStop
)

func (a Action) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionStop:
		return "stop"
	default:
		return "none"
	}
}

func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Action) UnmarshalText(text []byte) error {
	switch string(text) {
	case "start":
		*a = ActionStart
	case "stop":
		*a = ActionStop
	case "none", "":
		*a = ActionNone
	default:
		return fmt.Errorf("unknown action %q", text)
	}
	return nil
}
