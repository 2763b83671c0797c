// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package request

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/H0llyW00dzZ/relevant-args/src/relevantargs"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a request document.
type Format int

const (
	// FormatJSON represents JSON request documents (.json and anything unrecognized).
	FormatJSON Format = iota
	// FormatYAML represents YAML request documents (.yaml, .yml).
	FormatYAML
)

// ErrInvalidRequest is returned when a document does not match the request schema.
var ErrInvalidRequest = errors.New("invalid request document")

//go:embed request.schema.json
var schemaJSON []byte

// Schema returns the JSON Schema request documents are validated against.
func Schema() []byte { return schemaJSON }

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
})

// DetectFormat determines the document format from the file extension, case-insensitively.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads, validates and decodes the request document at path.
func Load(path string) (*relevantargs.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request file: %w", err)
	}

	return Parse(data, DetectFormat(path))
}

// Parse validates data against the request schema and decodes it.
func Parse(data []byte, format Format) (*relevantargs.Request, error) {
	var doc any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML request: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON request: %w", err)
		}
	}

	if err := Validate(doc); err != nil {
		return nil, err
	}

	req := &relevantargs.Request{}
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, req)
	default:
		err = json.Unmarshal(data, req)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode request: %w", err)
	}

	return req, nil
}

// Validate checks a decoded document against the request schema.
// Each schema violation is listed in the returned error, which wraps [ErrInvalidRequest].
func Validate(doc any) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("failed to compile request schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		violations = append(violations, e.String())
	}

	return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(violations, "; "))
}
