package inventory

import (
	"fmt"

	"github.com/ColOfAbRiX/aws-tagscheduler/config"
	"github.com/ColOfAbRiX/aws-tagscheduler/ec2"
	"github.com/ColOfAbRiX/aws-tagscheduler/rds"
	"github.com/ColOfAbRiX/aws-tagscheduler/resource"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/sirupsen/logrus"
)

// Inventory finds the schedulable EC2 and RDS instances of a region.
type Inventory struct {
	Logger        logrus.FieldLogger
	DefaultRegion string
	Kinds         []string
	EC2Filters    map[string][]string

	NewEC2 func(region string) *ec2.Client
	NewRDS func(region string) *rds.Client
}

func New(sess *session.Session, c *config.Config, logger logrus.FieldLogger) *Inventory {
	return &Inventory{
		Logger:        logger,
		DefaultRegion: c.DefaultRegion,
		Kinds:         c.Kinds,
		EC2Filters:    c.EC2Filters,
		NewEC2: func(region string) *ec2.Client {
			return ec2.NewClient(sess, region)
		},
		NewRDS: func(region string) *rds.Client {
			return rds.NewClient(sess, region)
		},
	}
}

func (i *Inventory) Regions() ([]string, error) {
	return i.NewEC2(i.DefaultRegion).Regions()
}

func (i *Inventory) Resources(region string) ([]resource.Resource, error) {
	ret := []resource.Resource{}

	for _, kind := range i.Kinds {
		switch kind {
		case ec2.Kind:
			instances, err := i.NewEC2(region).Instances(i.EC2Filters)
			if err != nil {
				return nil, fmt.Errorf("listing ec2 instances: %w", err)
			}
			for _, in := range instances {
				ret = append(ret, in)
			}
		case rds.Kind:
			dbs, err := i.NewRDS(region).DBInstances()
			if err != nil {
				return nil, fmt.Errorf("listing rds instances: %w", err)
			}
			for _, db := range dbs {
				ret = append(ret, db)
			}
		default:
			return nil, fmt.Errorf("unknown resource kind %q", kind)
		}
	}

	i.Logger.WithField("region", region).Debugf("listed %d resources", len(ret))
	return ret, nil
}
