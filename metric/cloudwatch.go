package metric

import (
	"fmt"

	"github.com/ColOfAbRiX/aws-tagscheduler/resource"
	"github.com/ColOfAbRiX/aws-tagscheduler/runner"
	"github.com/ColOfAbRiX/aws-tagscheduler/scheduler"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
)

// PutMetricData accepts at most this many datums per call.
const maxDatums = 20

// CloudWatch publishes the state of every scheduled resource, 1 for running
// and 0 for stopped, and the number of resources started and stopped.
type CloudWatch struct {
	Namespace string
	// NewSDK returns the client for the region of a report.
	NewSDK func(region string) SDKClient
}

func NewCloudWatch(sess *session.Session, namespace string) *CloudWatch {
	return &CloudWatch{
		Namespace: namespace,
		NewSDK: func(region string) SDKClient {
			return cloudwatch.New(sess, aws.NewConfig().WithRegion(region))
		},
	}
}

func (c *CloudWatch) Report(report *runner.Report) error {
	if report.Error != "" {
		return nil
	}

	dims := []*cloudwatch.Dimension{
		{Name: aws.String("Region"), Value: aws.String(report.Region)},
	}
	datums := []*cloudwatch.MetricDatum{}

	for _, d := range report.Decisions {
		v, ok := stateValue(d)
		if !ok {
			continue
		}
		datums = append(datums, &cloudwatch.MetricDatum{
			MetricName: aws.String(d.ResourceID),
			Dimensions: dims,
			Timestamp:  aws.Time(report.Time),
			Unit:       aws.String(cloudwatch.StandardUnitCount),
			Value:      aws.Float64(v),
		})
	}

	for _, m := range []struct {
		name   string
		action scheduler.Action
	}{
		{"StartedResources", scheduler.ActionStart},
		{"StoppedResources", scheduler.ActionStop},
	} {
		datums = append(datums, &cloudwatch.MetricDatum{
			MetricName: aws.String(m.name),
			Dimensions: dims,
			Timestamp:  aws.Time(report.Time),
			Unit:       aws.String(cloudwatch.StandardUnitCount),
			Value:      aws.Float64(float64(report.Dispatched(m.action))),
		})
	}

	sdk := c.NewSDK(report.Region)
	for start := 0; start < len(datums); start += maxDatums {
		end := start + maxDatums
		if end > len(datums) {
			end = len(datums)
		}

		_, err := sdk.PutMetricData(&cloudwatch.PutMetricDataInput{
			Namespace:  aws.String(c.Namespace),
			MetricData: datums[start:end],
		})
		if err != nil {
			return fmt.Errorf("putting metrics for %s: %w", report.Region, err)
		}
	}

	return nil
}

// stateValue is the state a resource is in, or is moving to, after the run.
func stateValue(d *runner.Decision) (float64, bool) {
	switch {
	case d.Dispatched && d.Action == scheduler.ActionStart:
		return 1, true
	case d.Dispatched && d.Action == scheduler.ActionStop:
		return 0, true
	case d.Status == resource.StatusRunning:
		return 1, true
	case d.Status == resource.StatusStopped:
		return 0, true
	}
	return 0, false
}
