package scheduler

import (
	"errors"
	"strings"
	"time"

	"github.com/ColOfAbRiX/aws-tagscheduler/resource"
)

// TagPrefix is the first hyphen separated field of every scheduler tag key.
const TagPrefix = "scheduler"

const (
	TypeDaily     = "daily"
	TypeTimer     = "timer"
	TypeFixed     = "fixed"
	TypeIgnore    = "ignore"
	typeIgnoreAll = "ignore_all"
)

var (
	ErrNoResource      = errors.New("scheduler rule needs a resource")
	ErrUnknownType     = errors.New("unknown scheduler type")
	ErrInvalidTime     = errors.New("invalid time")
	ErrInvalidTimezone = errors.New("invalid timezone")
	ErrInvalidValue    = errors.New("invalid tag value")
)

// Rule is the parsed configuration of one scheduler tag. The set of
// implementations is closed: Daily, Timer, Fixed and Ignore.
type Rule interface {
	Type() string
	Name() string
	Value() string
	// Err is the parse error found at construction, if any. A rule with an
	// error always checks to VerdictError.
	Err() error
	Check(now time.Time) Verdict

	isRule()
}

type base struct {
	name  string
	value string
	err   error
}

func (b *base) Name() string  { return b.name }
func (b *base) Value() string { return b.value }
func (b *base) Err() error    { return b.err }
func (b *base) isRule()       {}

// Build creates the rule selected by typ for res. It returns ErrUnknownType
// when typ is not a scheduler type, and ErrNoResource when res is nil.
// Malformed values never fail here: they produce a rule in error state.
func Build(res resource.Resource, typ, name, value string) (Rule, error) {
	if res == nil {
		return nil, ErrNoResource
	}

	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)

	switch strings.ToLower(typ) {
	case TypeDaily:
		return NewDaily(name, value), nil
	case TypeTimer:
		return NewTimer(res, name, value), nil
	case TypeFixed:
		return NewFixed(name, value), nil
	case TypeIgnore, typeIgnoreAll:
		return NewIgnore(name, value), nil
	}

	return nil, ErrUnknownType
}
