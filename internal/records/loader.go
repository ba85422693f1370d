// Package records reads table rows from YAML or JSON files, keeping the
// key order of every record.
package records

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pythoner/table"
)

// ErrShape is returned when the document is not a record or a list of records.
var ErrShape = errors.New("expected a mapping or a sequence of mappings")

// LoadFile loads rows from the YAML or JSON file at path.
func LoadFile(path string) ([]table.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a single mapping or a sequence of mappings into rows.
func Parse(data []byte) ([]table.Row, error) {
	var doc yaml.Node

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse records: %w", err)
	}

	if doc.Kind == 0 {
		return nil, nil
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	switch root.Kind {
	case yaml.MappingNode:
		row, err := decodeRow(root)
		if err != nil {
			return nil, err
		}

		return []table.Row{row}, nil
	case yaml.SequenceNode:
		rows := make([]table.Row, 0, len(root.Content))

		for i, item := range root.Content {
			if item.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("record %d (line %d): %w", i, item.Line, ErrShape)
			}

			row, err := decodeRow(item)
			if err != nil {
				return nil, fmt.Errorf("record %d: %w", i, err)
			}

			rows = append(rows, row)
		}

		return rows, nil
	default:
		return nil, fmt.Errorf("line %d: %w", root.Line, ErrShape)
	}
}

// decodeRow walks the key/value pairs of a mapping node in document order.
func decodeRow(node *yaml.Node) (table.Row, error) {
	var row table.Row

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		var v any
		if err := value.Decode(&v); err != nil {
			return table.Row{}, fmt.Errorf("field %s: %w", key.Value, err)
		}

		row.Set(key.Value, v)
	}

	return row, nil
}
