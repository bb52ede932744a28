/*
Package config parses the YAML hyperparameter document a training run
is configured with, the way
pbanos/botanic/feature/yaml.ReadFeatures(FromFile) parses a feature
metadata document: unmarshal into an intermediate struct, validate,
wrap any error with the path it came from.
*/
package config

import (
	"fmt"
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"
)

/*
TrainingConfig holds the hyperparameters one TrainSingleDimensional
call needs beyond the sampled set and feature themselves.
*/
type TrainingConfig struct {
	MaxSplits            int `yaml:"max_splits"`
	MinInstancesForSplit int `yaml:"min_instances_for_split"`
	NumBins              int `yaml:"num_bins"`
}

// Load takes a filepath to a YAML document and returns the
// TrainingConfig parsed from it, or an error if the file cannot be
// read, is not valid YAML, or is missing a required field.
func Load(filepath string) (*TrainingConfig, error) {
	data, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading training config %s: %v", filepath, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing training config %s: %w", filepath, err)
	}
	return cfg, nil
}

// Parse parses a YAML document's bytes into a validated TrainingConfig.
func Parse(data []byte) (*TrainingConfig, error) {
	var cfg TrainingConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing yaml: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate returns an error if max_splits or min_instances_for_split
// is negative or num_bins is below 1, so that callers get a clear
// configuration error before any training starts.
func (c *TrainingConfig) Validate() error {
	if c.MaxSplits < 0 {
		return fmt.Errorf("max_splits must be >= 0, got %d", c.MaxSplits)
	}
	if c.MinInstancesForSplit < 0 {
		return fmt.Errorf("min_instances_for_split must be >= 0, got %d", c.MinInstancesForSplit)
	}
	if c.NumBins < 1 {
		return fmt.Errorf("num_bins must be >= 1, got %d", c.NumBins)
	}
	return nil
}
