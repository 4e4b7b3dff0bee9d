package ec2

import (
	"github.com/aws/aws-sdk-go/service/ec2"
)

//go:generate mockgen -destination ../mock/ec2.go -package mock -mock_names SDKClient=MockEC2Client github.com/ColOfAbRiX/aws-tagscheduler/ec2 SDKClient

type SDKClient interface {
	DescribeRegions(*ec2.DescribeRegionsInput) (*ec2.DescribeRegionsOutput, error)
	DescribeInstances(*ec2.DescribeInstancesInput) (*ec2.DescribeInstancesOutput, error)
	StartInstances(*ec2.StartInstancesInput) (*ec2.StartInstancesOutput, error)
	StopInstances(*ec2.StopInstancesInput) (*ec2.StopInstancesOutput, error)
}
