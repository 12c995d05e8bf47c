// Package findings decodes compiler findings from JSON, newline-delimited
// JSON, or YAML input.
package findings

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sambacha/rules-closure/internal/catalog"
	"github.com/sambacha/rules-closure/internal/policy"
	"github.com/sambacha/rules-closure/internal/types"
)

// record is the wire form of one finding
type record struct {
	Type      string `json:"type" yaml:"type"`
	Category  string `json:"category" yaml:"category"`
	Source    string `json:"source" yaml:"source"`
	Line      int    `json:"line" yaml:"line"`
	Column    int    `json:"column" yaml:"column"`
	Message   string `json:"message" yaml:"message"`
	Synthetic bool   `json:"synthetic" yaml:"synthetic"`
}

// Decoder converts wire records into findings, filling in categories from
// the catalog
type Decoder struct {
	registry *catalog.Registry
}

// NewDecoder creates a Decoder. A nil registry uses the default catalog.
func NewDecoder(reg *catalog.Registry) *Decoder {
	if reg == nil {
		reg = catalog.DefaultRegistry
	}
	return &Decoder{registry: reg}
}

// DecodeJSON reads a JSON array of findings or a stream of JSON objects
func (d *Decoder) DecodeJSON(r io.Reader) ([]*types.Finding, error) {
	br := bufio.NewReader(r)
	first, err := peekNonSpace(br)
	if err == io.EOF {
		return []*types.Finding{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read findings: %w", err)
	}

	dec := json.NewDecoder(br)
	var records []record
	if first == '[' {
		if err := dec.Decode(&records); err != nil {
			return nil, fmt.Errorf("failed to decode findings: %w", err)
		}
	} else {
		for {
			var rec record
			err := dec.Decode(&rec)
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, fmt.Errorf("failed to decode finding %d: %w", len(records), err)
			}
			records = append(records, rec)
		}
	}

	return d.convert(records)
}

// DecodeYAML reads a YAML sequence of findings
func (d *Decoder) DecodeYAML(r io.Reader) ([]*types.Finding, error) {
	var records []record
	if err := yaml.NewDecoder(r).Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return []*types.Finding{}, nil
		}
		return nil, fmt.Errorf("failed to decode findings: %w", err)
	}
	return d.convert(records)
}

// DecodeFile reads findings from a file, choosing the format by extension.
// The path "-" reads JSON from stdin.
func (d *Decoder) DecodeFile(path string) ([]*types.Finding, error) {
	if path == "-" {
		return d.DecodeJSON(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open findings file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return d.DecodeYAML(f)
	default:
		return d.DecodeJSON(f)
	}
}

func (d *Decoder) convert(records []record) ([]*types.Finding, error) {
	result := make([]*types.Finding, 0, len(records))
	for i, rec := range records {
		if rec.Type == "" {
			return nil, fmt.Errorf("finding %d: %w", i, policy.ErrMissingType)
		}
		typ := types.DiagnosticType(rec.Type)

		category := types.Category(rec.Category)
		if category == "" {
			category = d.registry.CategoryOf(typ)
		}

		f := types.NewFinding(typ, rec.Source, rec.Message).
			WithCategory(category).
			WithPosition(rec.Line, rec.Column).
			WithSynthetic(rec.Synthetic)
		result = append(result, f)
	}
	return result, nil
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, br.UnreadByte()
	}
}
