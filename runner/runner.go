package runner

import (
	"fmt"
	"time"

	"github.com/ColOfAbRiX/aws-tagscheduler/resource"
	"github.com/ColOfAbRiX/aws-tagscheduler/scheduler"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Provider lists the regions and the schedulable resources in them.
type Provider interface {
	Regions() ([]string, error)
	Resources(region string) ([]resource.Resource, error)
}

type Runner struct {
	Provider  Provider
	Evaluator *scheduler.Evaluator
	Logger    logrus.FieldLogger
	Reporters []Reporter

	// Regions to process. All the regions of the Provider when empty.
	Regions []string
	DryRun  bool
}

type pending struct {
	res      resource.Resource
	decision *Decision
}

// RunOnce evaluates and dispatches every region at now. A failing region is
// recorded in its report and does not stop the others.
func (r *Runner) RunOnce(now time.Time) ([]*Report, error) {
	regions := r.Regions
	if len(regions) == 0 {
		var err error
		regions, err = r.Provider.Regions()
		if err != nil {
			return nil, fmt.Errorf("listing regions: %w", err)
		}
	}

	runID := uuid.New().String()
	reports := []*Report{}
	for _, region := range regions {
		report := r.RunRegion(runID, region, now)
		r.report(report)
		reports = append(reports, report)
	}

	return reports, nil
}

// RunRegion evaluates every resource of region first and dispatches the
// resulting actions afterwards.
func (r *Runner) RunRegion(runID, region string, now time.Time) *Report {
	log := r.Logger.WithFields(logrus.Fields{"run": runID, "region": region})
	report := &Report{RunID: runID, Region: region, Time: now, Decisions: []*Decision{}}

	resources, err := r.Provider.Resources(region)
	if err != nil {
		log.WithError(err).Error("failed to list resources")
		report.Error = err.Error()
		return report
	}
	log.Debugf("found %d resources", len(resources))

	actions := []pending{}
	for _, res := range resources {
		d := &Decision{
			Region:     region,
			Kind:       res.Kind(),
			ResourceID: res.ID(),
			Status:     res.Status(),
			DryRun:     r.DryRun,
		}
		report.Decisions = append(report.Decisions, d)

		rlog := log.WithFields(logrus.Fields{"kind": d.Kind, "resource": d.ResourceID, "status": d.Status.String()})

		action, err := r.Evaluator.Evaluate(res, now)
		if err != nil {
			rlog.WithError(err).Error("failed to evaluate resource")
			d.Error = err.Error()
			continue
		}
		d.Action = action
		rlog.WithField("action", action.String()).Info("evaluated resource")

		if action != scheduler.ActionNone {
			actions = append(actions, pending{res: res, decision: d})
		}
	}

	for _, p := range actions {
		r.dispatch(log, p)
	}

	return report
}

func (r *Runner) dispatch(log logrus.FieldLogger, p pending) {
	d := p.decision
	log = log.WithFields(logrus.Fields{"kind": d.Kind, "resource": d.ResourceID})

	if r.DryRun {
		log.Debugf("(dry run) %s %s", d.Action, d.ResourceID)
		return
	}

	var err error
	switch d.Action {
	case scheduler.ActionStart:
		err = p.res.Start()
	case scheduler.ActionStop:
		err = p.res.Stop()
	}
	if err != nil {
		log.WithError(err).Errorf("failed to %s resource", d.Action)
		d.Error = err.Error()
		return
	}

	d.Dispatched = true
	log.Infof("sent %s", d.Action)
}

func (r *Runner) report(report *Report) {
	for _, rep := range r.Reporters {
		err := rep.Report(report)
		if err != nil {
			r.Logger.WithFields(logrus.Fields{"run": report.RunID, "region": report.Region}).
				WithError(err).Warn("reporter failed")
		}
	}
}
