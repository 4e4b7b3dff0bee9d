package inventory

import (
	"errors"
	"testing"

	"github.com/ColOfAbRiX/aws-tagscheduler/config"
	"github.com/ColOfAbRiX/aws-tagscheduler/ec2"
	"github.com/ColOfAbRiX/aws-tagscheduler/mock"
	"github.com/ColOfAbRiX/aws-tagscheduler/rds"
	"github.com/aws/aws-sdk-go/aws"
	awsec2 "github.com/aws/aws-sdk-go/service/ec2"
	awsrds "github.com/aws/aws-sdk-go/service/rds"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func newTestInventory(ec2SDK *mock.MockEC2Client, rdsSDK *mock.MockRDSClient) *Inventory {
	logger, _ := test.NewNullLogger()
	c := config.NewConfig()
	return &Inventory{
		Logger:        logger,
		DefaultRegion: c.DefaultRegion,
		Kinds:         c.Kinds,
		EC2Filters:    map[string][]string{},
		NewEC2: func(region string) *ec2.Client {
			return ec2.NewClientWithSDK(ec2SDK, region)
		},
		NewRDS: func(region string) *rds.Client {
			return rds.NewClientWithSDK(rdsSDK, region)
		},
	}
}

func TestRegions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ec2SDK := mock.NewMockEC2Client(ctrl)
	inv := newTestInventory(ec2SDK, mock.NewMockRDSClient(ctrl))

	ec2SDK.EXPECT().DescribeRegions(gomock.Any()).Return(&awsec2.DescribeRegionsOutput{
		Regions: []*awsec2.Region{{RegionName: aws.String("eu-west-1")}},
	}, nil)

	regions, err := inv.Regions()
	assert.NoError(t, err)
	assert.Equal(t, []string{"eu-west-1"}, regions)
}

func TestResources(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ec2SDK := mock.NewMockEC2Client(ctrl)
	rdsSDK := mock.NewMockRDSClient(ctrl)
	inv := newTestInventory(ec2SDK, rdsSDK)

	ec2SDK.EXPECT().DescribeInstances(gomock.Any()).Return(&awsec2.DescribeInstancesOutput{
		Reservations: []*awsec2.Reservation{
			{Instances: []*awsec2.Instance{{InstanceId: aws.String("i-1")}}},
		},
	}, nil)
	rdsSDK.EXPECT().DescribeDBInstances(gomock.Any()).Return(&awsrds.DescribeDBInstancesOutput{
		DBInstances: []*awsrds.DBInstance{{DbiResourceId: aws.String("db-1")}},
	}, nil)

	resources, err := inv.Resources("eu-west-1")
	if assert.NoError(t, err) && assert.Len(t, resources, 2) {
		assert.Equal(t, "i-1", resources[0].ID())
		assert.Equal(t, ec2.Kind, resources[0].Kind())
		assert.Equal(t, "db-1", resources[1].ID())
		assert.Equal(t, rds.Kind, resources[1].Kind())
	}
}

func TestResourcesOnlyConfiguredKinds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rdsSDK := mock.NewMockRDSClient(ctrl)
	inv := newTestInventory(mock.NewMockEC2Client(ctrl), rdsSDK)
	inv.Kinds = []string{"rds"}

	rdsSDK.EXPECT().DescribeDBInstances(gomock.Any()).Return(&awsrds.DescribeDBInstancesOutput{}, nil)

	resources, err := inv.Resources("eu-west-1")
	assert.NoError(t, err)
	assert.Empty(t, resources)
}

func TestResourcesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ec2SDK := mock.NewMockEC2Client(ctrl)
	inv := newTestInventory(ec2SDK, mock.NewMockRDSClient(ctrl))

	ec2SDK.EXPECT().DescribeInstances(gomock.Any()).Return(nil, errors.New("unauthorized"))

	_, err := inv.Resources("eu-west-1")
	assert.EqualError(t, err, "listing ec2 instances: unauthorized")
}
