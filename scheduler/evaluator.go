package scheduler

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ColOfAbRiX/aws-tagscheduler/resource"
	"github.com/sirupsen/logrus"
)

// Evaluator turns the scheduler tags of a resource into a single Action.
type Evaluator struct {
	Logger logrus.FieldLogger
}

func NewEvaluator(logger logrus.FieldLogger) *Evaluator {
	return &Evaluator{Logger: logger}
}

type keyedRule struct {
	key  string
	rule Rule
}

// Rules builds the ordered rule set of res from its tags. Keys are read as
// "scheduler-<type>[-<name>]" and the result is sorted by name, empty first.
func (e *Evaluator) Rules(res resource.Resource) ([]Rule, error) {
	if res == nil {
		return nil, ErrNoResource
	}

	tags, err := res.Tags()
	if err != nil {
		return nil, fmt.Errorf("reading tags of %s: %w", res.ID(), err)
	}

	keyed := []keyedRule{}
	for _, tag := range tags {
		// name keeps its hyphens
		fields := strings.SplitN(tag.Key, "-", 3)
		if len(fields) < 2 || fields[0] != TagPrefix {
			continue
		}

		name := ""
		if len(fields) == 3 {
			name = fields[2]
		}

		rule, err := Build(res, fields[1], name, tag.Value)
		if errors.Is(err, ErrUnknownType) {
			e.Logger.WithField("tag", tag.Key).Debug("skipping tag with unknown scheduler type")
			continue
		}
		if err != nil {
			return nil, err
		}

		keyed = append(keyed, keyedRule{key: tag.Key, rule: rule})
	}

	sort.SliceStable(keyed, func(i, j int) bool {
		if keyed[i].rule.Name() != keyed[j].rule.Name() {
			return keyed[i].rule.Name() < keyed[j].rule.Name()
		}
		return keyed[i].key < keyed[j].key
	})

	rules := make([]Rule, 0, len(keyed))
	for _, k := range keyed {
		rules = append(rules, k.rule)
	}
	return rules, nil
}

// Resolve folds the verdicts of rules, in order, into one Action. A none
// verdict resets the decision, ignore resets it and stops the fold, errors
// and verdicts that match the current status leave it untouched.
func (e *Evaluator) Resolve(res resource.Resource, rules []Rule, now time.Time) Action {
	action := ActionNone
	status := res.Status()

	for _, r := range rules {
		verdict := r.Check(now)

		log := e.Logger.WithFields(logrus.Fields{
			"resource": res.ID(),
			"rule":     r.Name(),
			"type":     r.Type(),
			"verdict":  verdict.String(),
		})
		if r.Err() != nil {
			log = log.WithError(r.Err())
		}
		log.Debug("checked rule")

		switch {
		case verdict == VerdictNone:
			action = ActionNone
		case verdict == VerdictStart && status == resource.StatusStopped:
			action = ActionStart
		case verdict == VerdictStop && status == resource.StatusRunning:
			action = ActionStop
		case verdict == VerdictIgnore:
			return ActionNone
		case verdict == VerdictError:
			log.Warn("rule is in error, skipping")
		}
	}

	return action
}

// Evaluate builds the rule set of res and resolves it at now.
func (e *Evaluator) Evaluate(res resource.Resource, now time.Time) (Action, error) {
	rules, err := e.Rules(res)
	if err != nil {
		return ActionNone, err
	}
	return e.Resolve(res, rules, now), nil
}
