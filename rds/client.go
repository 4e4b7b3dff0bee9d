package rds

import (
	"fmt"

	"github.com/ColOfAbRiX/aws-tagscheduler/resource"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/rds"
)

// Client lists and starts/stops the RDS DB instances of one region.
type Client struct {
	sdk    SDKClient
	Region string
}

func NewClient(sess *session.Session, region string) *Client {
	return &Client{
		sdk:    rds.New(sess, aws.NewConfig().WithRegion(region)),
		Region: region,
	}
}

func NewClientWithSDK(sdk SDKClient, region string) *Client {
	return &Client{sdk: sdk, Region: region}
}

func (c *Client) DBInstances() (DBInstances, error) {
	params := &rds.DescribeDBInstancesInput{}
	dbs := []*rds.DBInstance{}

	for {
		resp, err := c.sdk.DescribeDBInstances(params)
		if err != nil {
			return nil, err
		}
		dbs = append(dbs, resp.DBInstances...)
		if resp.Marker == nil {
			break
		}
		params.Marker = resp.Marker
	}

	ret := DBInstances{}
	for _, db := range dbs {
		ret = append(ret, NewDBInstanceFromSDK(c, db))
	}
	return ret, nil
}

// Tags returns the tags of the resource identified by arn, sorted by key.
func (c *Client) Tags(arn string) (resource.Tags, error) {
	out, err := c.sdk.ListTagsForResource(&rds.ListTagsForResourceInput{
		ResourceName: aws.String(arn),
	})
	if err != nil {
		return nil, fmt.Errorf("listing tags of %s: %w", arn, err)
	}

	tags := resource.Tags{}
	for _, t := range out.TagList {
		tags = append(tags, resource.Tag{Key: aws.StringValue(t.Key), Value: aws.StringValue(t.Value)})
	}
	return tags.Sorted(), nil
}

func (c *Client) StartDBInstance(identifier string) error {
	_, err := c.sdk.StartDBInstance(&rds.StartDBInstanceInput{
		DBInstanceIdentifier: aws.String(identifier),
	})
	if err != nil {
		return fmt.Errorf("starting db instance %s in %s: %w", identifier, c.Region, err)
	}
	return nil
}

func (c *Client) StopDBInstance(identifier string) error {
	_, err := c.sdk.StopDBInstance(&rds.StopDBInstanceInput{
		DBInstanceIdentifier: aws.String(identifier),
	})
	if err != nil {
		return fmt.Errorf("stopping db instance %s in %s: %w", identifier, c.Region, err)
	}
	return nil
}
