package rds

import (
	"github.com/aws/aws-sdk-go/service/rds"
)

//go:generate mockgen -destination ../mock/rds.go -package mock -mock_names SDKClient=MockRDSClient github.com/ColOfAbRiX/aws-tagscheduler/rds SDKClient

type SDKClient interface {
	DescribeDBInstances(*rds.DescribeDBInstancesInput) (*rds.DescribeDBInstancesOutput, error)
	ListTagsForResource(*rds.ListTagsForResourceInput) (*rds.ListTagsForResourceOutput, error)
	StartDBInstance(*rds.StartDBInstanceInput) (*rds.StartDBInstanceOutput, error)
	StopDBInstance(*rds.StopDBInstanceInput) (*rds.StopDBInstanceOutput, error)
}
