package rds

import (
	"time"

	"github.com/ColOfAbRiX/aws-tagscheduler/resource"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/rds"
)

const Kind = "rds"

// DBInstance is an RDS instance. RDS does not expose when an instance was
// last started or stopped, so Timer rules never fire for it.
type DBInstance struct {
	ResourceID string
	Identifier string
	ARN        string
	State      string

	client *Client
	tags   resource.Tags
}

type DBInstances []*DBInstance

func NewDBInstanceFromSDK(client *Client, db *rds.DBInstance) *DBInstance {
	return &DBInstance{
		ResourceID: aws.StringValue(db.DbiResourceId),
		Identifier: aws.StringValue(db.DBInstanceIdentifier),
		ARN:        aws.StringValue(db.DBInstanceArn),
		State:      aws.StringValue(db.DBInstanceStatus),
		client:     client,
	}
}

func (d *DBInstance) ID() string {
	return d.ResourceID
}

func (d *DBInstance) Kind() string {
	return Kind
}

func (d *DBInstance) Status() resource.Status {
	switch d.State {
	case "available":
		return resource.StatusRunning
	case "stopped":
		return resource.StatusStopped
	}
	return resource.StatusUnknown
}

func (d *DBInstance) StartTime() *time.Time {
	return nil
}

func (d *DBInstance) StopTime() *time.Time {
	return nil
}

// Tags are fetched on first use.
func (d *DBInstance) Tags() (resource.Tags, error) {
	if d.tags != nil {
		return d.tags, nil
	}

	tags, err := d.client.Tags(d.ARN)
	if err != nil {
		return nil, err
	}
	d.tags = tags
	return tags, nil
}

func (d *DBInstance) Start() error {
	return d.client.StartDBInstance(d.Identifier)
}

func (d *DBInstance) Stop() error {
	return d.client.StopDBInstance(d.Identifier)
}
