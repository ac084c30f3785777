package manifest

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Render serializes a HelmChart to a single YAML document. The document
// carries an explicit start marker, two-space indentation, and the struct's
// authored field order; ValuesContent renders as a literal block.
func Render(chart *HelmChart) ([]byte, error) {
	var buf bytes.Buffer

	// The encoder has no explicit-document-start option, so the marker is
	// written ahead of it.
	buf.WriteString("---\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(chart); err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}
