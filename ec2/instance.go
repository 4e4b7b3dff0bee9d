package ec2

import (
	"regexp"
	"strings"
	"time"

	"github.com/ColOfAbRiX/aws-tagscheduler/resource"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
)

const Kind = "ec2"

// StateTransitionReason looks like "User initiated (2017-08-07 09:00:12 GMT)".
var transitionTime = regexp.MustCompile(`\((.*)\)`)

const transitionTimeLayout = "2006-01-02 15:04:05 MST"

type Instance struct {
	InstanceID string
	State      string
	LaunchTime *time.Time
	StoppedAt  *time.Time

	client *Client
	tags   resource.Tags
}

type Instances []*Instance

func NewInstanceFromSDK(client *Client, instance *ec2.Instance) *Instance {
	tags := resource.Tags{}
	for _, t := range instance.Tags {
		tags = append(tags, resource.Tag{Key: aws.StringValue(t.Key), Value: aws.StringValue(t.Value)})
	}

	i := &Instance{
		InstanceID: aws.StringValue(instance.InstanceId),
		LaunchTime: instance.LaunchTime,
		StoppedAt:  parseTransitionTime(aws.StringValue(instance.StateTransitionReason)),
		client:     client,
		tags:       tags.Sorted(),
	}
	if instance.State != nil {
		i.State = strings.ToLower(aws.StringValue(instance.State.Name))
	}
	return i
}

func parseTransitionTime(reason string) *time.Time {
	m := transitionTime.FindStringSubmatch(reason)
	if m == nil {
		return nil
	}

	t, err := time.Parse(transitionTimeLayout, m[1])
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

func (i *Instance) ID() string {
	return i.InstanceID
}

func (i *Instance) Kind() string {
	return Kind
}

func (i *Instance) Status() resource.Status {
	switch i.State {
	case ec2.InstanceStateNameRunning:
		return resource.StatusRunning
	case ec2.InstanceStateNameStopped:
		return resource.StatusStopped
	}
	return resource.StatusUnknown
}

func (i *Instance) StartTime() *time.Time {
	if i.Status() != resource.StatusRunning {
		return nil
	}
	return i.LaunchTime
}

func (i *Instance) StopTime() *time.Time {
	if i.Status() != resource.StatusStopped {
		return nil
	}
	return i.StoppedAt
}

func (i *Instance) Tags() (resource.Tags, error) {
	return i.tags, nil
}

func (i *Instance) Start() error {
	return i.client.StartInstance(i.InstanceID)
}

func (i *Instance) Stop() error {
	return i.client.StopInstance(i.InstanceID)
}
