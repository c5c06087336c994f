package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lead-consolidator/core/record"

	"github.com/goccy/go-yaml"
)

// ErrNoLeads indicates the input document has no "leads" array.
var ErrNoLeads = errors.New(`document has no "leads" array`)

// Format is the encoding of a leads file.
type Format string

const (
	// FormatJSON is a JSON document.
	FormatJSON Format = "json"
	// FormatYAML is a YAML document.
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from the file extension. Anything that is not
// .yaml or .yml is read and written as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Document is the on-disk shape of a leads file.
type Document struct {
	Leads []*record.Record `json:"leads" yaml:"leads"`
}

// Client defines the interface for leads file operations.
type Client interface {
	// Load reads the leads array from the file at path.
	Load(ctx context.Context, path string) ([]*record.Record, error)
	// Save writes records as a leads document to path, replacing the file.
	Save(ctx context.Context, path string, records []*record.Record) error
}

// NewClient creates a file-backed client.
func NewClient(cfg Config) Client {
	indent := cfg.Indent
	if indent < 0 {
		indent = 0
	}
	return &fileClient{indent: indent}
}

type fileClient struct {
	indent int
}

func (c *fileClient) Load(ctx context.Context, path string) ([]*record.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read leads file %s: %w", path, err)
	}

	var doc Document
	switch FormatFor(path) {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse leads file %s: %w", path, err)
	}
	if doc.Leads == nil {
		return nil, fmt.Errorf("failed to parse leads file %s: %w", path, ErrNoLeads)
	}
	for i, r := range doc.Leads {
		if r == nil {
			return nil, fmt.Errorf("failed to parse leads file %s: lead %d is null", path, i)
		}
	}

	return doc.Leads, nil
}

func (c *fileClient) Save(ctx context.Context, path string, records []*record.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if records == nil {
		records = []*record.Record{}
	}
	doc := Document{Leads: records}

	var (
		data []byte
		err  error
	)
	switch FormatFor(path) {
	case FormatYAML:
		data, err = yaml.MarshalWithOptions(doc, yaml.Indent(max(c.indent, 1)), yaml.IndentSequence(true))
	default:
		data, err = json.MarshalIndent(doc, "", strings.Repeat(" ", c.indent))
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
