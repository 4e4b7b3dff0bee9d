package scheduler

import (
	"fmt"
	"time"
)

// Fixed always asks for the same action. Value is "start" or "stop".
type Fixed struct {
	base
	Action Verdict
}

func NewFixed(name, value string) *Fixed {
	f := &Fixed{base: base{name: name, value: value}}
	f.Action, f.err = parseAction(value)
	return f
}

func (f *Fixed) Type() string {
	return TypeFixed
}

func (f *Fixed) Check(now time.Time) Verdict {
	if f.err != nil {
		return VerdictError
	}
	return f.Action
}

// Ignore stops the evaluation of a resource. Value must be "ignore".
type Ignore struct {
	base
}

func NewIgnore(name, value string) *Ignore {
	i := &Ignore{base: base{name: name, value: value}}
	if value != "ignore" {
		i.err = fmt.Errorf("%w: %q is not ignore", ErrInvalidValue, value)
	}
	return i
}

func (i *Ignore) Type() string {
	return TypeIgnore
}

func (i *Ignore) Check(now time.Time) Verdict {
	if i.err != nil {
		return VerdictError
	}
	return VerdictIgnore
}
