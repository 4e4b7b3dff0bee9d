package metric

import (
	"github.com/aws/aws-sdk-go/service/cloudwatch"
)

//go:generate mockgen -destination ../mock/cloudwatch.go -package mock -mock_names SDKClient=MockCloudWatchClient github.com/ColOfAbRiX/aws-tagscheduler/metric SDKClient

type SDKClient interface {
	PutMetricData(*cloudwatch.PutMetricDataInput) (*cloudwatch.PutMetricDataOutput, error)
}
