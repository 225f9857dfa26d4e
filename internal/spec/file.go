package spec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Marshal renders the document as YAML.
func (d *Document) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal specification: %v", err)
	}
	return data, nil
}

// ReadFile loads a previously written specification, used by append mode to
// overlay new endpoints onto an existing file.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file: %v", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse spec file: %v", err)
	}

	return &doc, nil
}
