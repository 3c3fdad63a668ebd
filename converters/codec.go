package converters

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcolor/core"
)

// DecodeYAML reads one YAML document from r and builds its graph.
// Unknown keys are rejected.
func DecodeYAML(r io.Reader) (*core.Graph, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	return doc.Graph()
}

// EncodeYAML writes g as a YAML document.
func EncodeYAML(w io.Writer, g *core.Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}

// DecodeJSON reads one JSON document from r and builds its graph.
// Unknown keys are rejected.
func DecodeJSON(r io.Reader) (*core.Graph, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	return doc.Graph()
}

// EncodeJSON writes g as an indented JSON document.
func EncodeJSON(w io.Writer, g *core.Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

// LoadFile reads a graph document from path, choosing the codec by
// extension: .yaml/.yml or .json.
func LoadFile(path string) (*core.Graph, error) {
	var decode func(io.Reader) (*core.Graph, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		decode = DecodeYAML
	case ".json":
		decode = DecodeJSON
	default:
		return nil, fmt.Errorf("load graph %s: %w", path, ErrUnknownFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read graph %s: %w", path, err)
	}
	defer f.Close()

	g, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("load graph %s: %w", path, err)
	}

	return g, nil
}
