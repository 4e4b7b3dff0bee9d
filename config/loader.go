package config

import (
	"io/ioutil"
	"os"
	"strings"

	yaml "gopkg.in/yaml.v2"
)

// RegionsEnv replaces Regions when set, as a comma separated list.
const RegionsEnv = "RUN_ON_REGIONS"

func LoadFromYAMLPath(path string) (*Config, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return LoadFromYAML(b)
}

func LoadFromYAML(data []byte) (*Config, error) {
	c := NewConfig()
	err := yaml.UnmarshalStrict(data, c)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads path if it is not empty, applies the environment and validates
// the result.
func Load(path string) (*Config, error) {
	c := NewConfig()
	if path != "" {
		var err error
		c, err = LoadFromYAMLPath(path)
		if err != nil {
			return nil, err
		}
	}

	c.ApplyEnv(os.Getenv)

	err := c.Validate()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) ApplyEnv(getenv func(string) string) {
	v := strings.TrimSpace(getenv(RegionsEnv))
	if v == "" {
		return
	}

	regions := []string{}
	for _, r := range strings.Split(v, ",") {
		r = strings.TrimSpace(r)
		if r != "" {
			regions = append(regions, r)
		}
	}
	c.Regions = regions
}
