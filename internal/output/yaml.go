// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// YAMLWriter writes a table as a YAML list of mappings keyed by header
// name. Keys keep header order and every value is a string.
type YAMLWriter struct{}

// WriteTable truncates path and writes one mapping per row.
func (YAMLWriter) WriteTable(path string, header []string, rows [][]string) error {
	if err := checkRows(header, rows); err != nil {
		return err
	}

	doc := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	if len(rows) == 0 {
		doc.Style = yaml.FlowStyle
	}
	for _, row := range rows {
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for i, col := range header {
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: col},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: row[i]},
			)
		}
		doc.Content = append(doc.Content, m)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		f.Close()
		return fmt.Errorf("encoding YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return f.Close()
}
