package taskfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads, parses, and validates the task file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("taskfile: read %s: %w", path, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("taskfile: parse %s: %w", path, err)
	}

	if err := validatorInstance().Struct(&doc); err != nil {
		return nil, fmt.Errorf("taskfile: invalid document %s: %w", path, err)
	}

	return &doc, nil
}
