package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// recordsKey is the mapping key holding the record sequence in the
// mapping form of a data file.
const recordsKey = "records"

// Identifiable is the only shape the loader requires of a record.
type Identifiable interface {
	ID() string
}

// Handler receives loaded records.
//
// AddRecord is called once per record, in file order.
type Handler[T any] interface {
	AddRecord(record T)
}

// LoadFile reads the data file at path and delivers its records to h.
//
// Returns the number of records delivered. Nothing is delivered if the
// file cannot be read, parsed or validated.
func LoadFile[T Identifiable](path string, h Handler[T]) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read data file: %w", err)
	}
	return deliver(data, h)
}

// Load reads a data document from r and delivers its records to h.
//
// Returns the number of records delivered. Nothing is delivered if the
// document cannot be read, parsed or validated.
func Load[T Identifiable](r io.Reader, h Handler[T]) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("failed to read data: %w", err)
	}
	return deliver(data, h)
}

// Validate checks the data file at path without delivering anything.
//
// Returns the number of records the file holds.
func Validate[T Identifiable](path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read data file: %w", err)
	}
	records, err := Parse[T](data)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// Parse decodes and validates a data document.
//
// Environment variables are expanded before parsing. Records are returned
// in document order. An empty document yields no records.
func Parse[T Identifiable](data []byte) ([]T, error) {
	expanded, err := expandEnvVars(string(data))
	if err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(expanded), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	items, err := recordNodes(&doc)
	if err != nil {
		return nil, err
	}

	records := make([]T, 0, len(items))
	for i, node := range items {
		var rec T
		if err := node.Decode(&rec); err != nil {
			return nil, fmt.Errorf("records[%d] (line %d): %w", i, node.Line, err)
		}
		if rec.ID() == "" {
			return nil, fmt.Errorf("records[%d] (line %d): id is required", i, node.Line)
		}
		records = append(records, rec)
	}

	return records, nil
}

// deliver parses data and hands every record to h.
func deliver[T Identifiable](data []byte, h Handler[T]) (int, error) {
	records, err := Parse[T](data)
	if err != nil {
		return 0, err
	}

	for _, rec := range records {
		h.AddRecord(rec)
	}
	return len(records), nil
}

// recordNodes locates the record sequence in a parsed document.
func recordNodes(doc *yaml.Node) ([]*yaml.Node, error) {
	// empty input decodes to a zero node
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]

	switch root.Kind {
	case yaml.SequenceNode:
		return root.Content, nil

	case yaml.MappingNode:
		// mapping content alternates key, value
		for i := 0; i+1 < len(root.Content); i += 2 {
			if root.Content[i].Value != recordsKey {
				continue
			}
			seq := root.Content[i+1]
			if seq.Kind == yaml.ScalarNode && seq.Tag == "!!null" {
				return nil, nil
			}
			if seq.Kind != yaml.SequenceNode {
				return nil, fmt.Errorf("line %d: %q must be a list", seq.Line, recordsKey)
			}
			return seq.Content, nil
		}
		return nil, fmt.Errorf("line %d: missing %q key", root.Line, recordsKey)

	default:
		return nil, errors.New("data must be a list of records or a mapping with a records key")
	}
}
