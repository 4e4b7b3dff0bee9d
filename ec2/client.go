package ec2

import (
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ec2"
)

// Client lists and starts/stops the EC2 instances of one region.
type Client struct {
	sdk    SDKClient
	Region string
}

func NewClient(sess *session.Session, region string) *Client {
	return &Client{
		sdk:    ec2.New(sess, aws.NewConfig().WithRegion(region)),
		Region: region,
	}
}

func NewClientWithSDK(sdk SDKClient, region string) *Client {
	return &Client{sdk: sdk, Region: region}
}

// Regions returns the names of all the regions enabled for the account.
func (c *Client) Regions() ([]string, error) {
	out, err := c.sdk.DescribeRegions(&ec2.DescribeRegionsInput{})
	if err != nil {
		return nil, err
	}

	regions := []string{}
	for _, r := range out.Regions {
		regions = append(regions, aws.StringValue(r.RegionName))
	}
	sort.Strings(regions)
	return regions, nil
}

// Instances returns the running and stopped instances matching filters.
func (c *Client) Instances(filters map[string][]string) (Instances, error) {
	fs := []*ec2.Filter{
		{Name: aws.String("instance-state-name"), Values: aws.StringSlice([]string{"running", "stopped"})},
	}

	names := []string{}
	for n := range filters {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fs = append(fs, &ec2.Filter{Name: aws.String(n), Values: aws.StringSlice(filters[n])})
	}

	params := &ec2.DescribeInstancesInput{
		Filters: fs,
	}
	instances := []*ec2.Instance{}

	for {
		resp, err := c.sdk.DescribeInstances(params)
		if err != nil {
			return nil, err
		}
		for _, res := range resp.Reservations {
			instances = append(instances, res.Instances...)
		}
		if resp.NextToken == nil {
			break
		}
		params.NextToken = resp.NextToken
	}

	ret := Instances{}
	for _, i := range instances {
		ret = append(ret, NewInstanceFromSDK(c, i))
	}
	return ret, nil
}

func (c *Client) StartInstance(id string) error {
	_, err := c.sdk.StartInstances(&ec2.StartInstancesInput{
		InstanceIds: []*string{aws.String(id)},
	})
	if err != nil {
		return fmt.Errorf("starting instance %s in %s: %w", id, c.Region, err)
	}
	return nil
}

func (c *Client) StopInstance(id string) error {
	_, err := c.sdk.StopInstances(&ec2.StopInstancesInput{
		InstanceIds: []*string{aws.String(id)},
	})
	if err != nil {
		return fmt.Errorf("stopping instance %s in %s: %w", id, c.Region, err)
	}
	return nil
}
