package api

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// LoadExperiment reads a YAML or JSON experiment file, applies defaults and
// validates the result.
func LoadExperiment(path string) (*Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading experiment file: %w", err)
	}
	exp, err := ParseExperiment(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return exp, nil
}

// ParseExperiment decodes YAML or JSON bytes into a defaulted, validated
// Experiment. Unknown fields are rejected so typos fail loudly.
func ParseExperiment(data []byte) (*Experiment, error) {
	var exp Experiment
	if err := yaml.UnmarshalStrict(data, &exp); err != nil {
		return nil, err
	}
	SetDefaults_Experiment(&exp)
	if err := ValidateExperiment(&exp); err != nil {
		return nil, err
	}
	return &exp, nil
}
