// Package fixtures supplies record collections from YAML fixture files,
// the development-time stand-in for a production fetch layer.
package fixtures

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/oakfield/casedesk/internal/domain/records"
)

//go:embed records.yaml
var sampleYAML []byte

// Source loads records from a YAML file. It implements records.Source.
type Source struct {
	path string
}

// NewSource creates a source reading from path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Load reads and validates the fixture file. Rows without an ID get a
// generated one; a row failing validation fails the whole load.
func (s *Source) Load(ctx context.Context) ([]records.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read fixture file: %w", err)
	}
	return parse(data)
}

// Sample returns the bundled six-record collection the listing screens are
// developed against.
func Sample() ([]records.Record, error) {
	return parse(sampleYAML)
}

func parse(data []byte) ([]records.Record, error) {
	var doc struct {
		Records []records.Record `yaml:"records"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse fixture file: %w", err)
	}

	for i := range doc.Records {
		if doc.Records[i].ID == "" {
			doc.Records[i].ID = uuid.NewString()
		}
		if err := records.Validate(doc.Records[i]); err != nil {
			return nil, fmt.Errorf("fixture row %d: %w", i, err)
		}
	}
	return doc.Records, nil
}
