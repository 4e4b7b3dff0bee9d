package scheduler

import (
	"testing"

	"github.com/ColOfAbRiX/aws-tagscheduler/resource"
	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	res := resource.NewStatic("i-1", resource.StatusStopped, nil)

	r, err := Build(res, "DAILY", " office ", " 0800/1800 ")
	assert.Nil(t, err)
	assert.IsType(t, &Daily{}, r)
	assert.Equal(t, TypeDaily, r.Type())
	assert.Equal(t, "office", r.Name())
	assert.Equal(t, "0800/1800", r.Value())
	assert.Nil(t, r.Err())

	r, err = Build(res, "timer", "", "stop/30")
	assert.Nil(t, err)
	assert.IsType(t, &Timer{}, r)

	r, err = Build(res, "Fixed", "", "start")
	assert.Nil(t, err)
	assert.IsType(t, &Fixed{}, r)

	r, err = Build(res, "ignore", "", "ignore")
	assert.Nil(t, err)
	assert.IsType(t, &Ignore{}, r)

	r, err = Build(res, "ignore_all", "", "ignore")
	assert.Nil(t, err)
	assert.IsType(t, &Ignore{}, r)
	assert.Equal(t, TypeIgnore, r.Type())
}

func TestBuildMalformedValue(t *testing.T) {
	res := resource.NewStatic("i-1", resource.StatusStopped, nil)

	r, err := Build(res, "daily", "", "not a schedule")
	assert.Nil(t, err)
	assert.NotNil(t, r.Err())
	assert.Equal(t, VerdictError, r.Check(wednesday(10, 0)))
}

func TestBuildUnknownType(t *testing.T) {
	res := resource.NewStatic("i-1", resource.StatusStopped, nil)

	r, err := Build(res, "weekly", "", "0800")
	assert.Equal(t, ErrUnknownType, err)
	assert.Nil(t, r)
}

func TestBuildWithoutResource(t *testing.T) {
	r, err := Build(nil, "fixed", "", "start")
	assert.Equal(t, ErrNoResource, err)
	assert.Nil(t, r)
}
