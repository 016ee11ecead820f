// Package mapfile reads and writes the flat mappings and instruction
// plans the CLI works with. The mapping format is chosen by file
// extension: JSON, TOML, or YAML. Plans are always JSON.
package mapfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/mapdiff/internal/diff"
)

var (
	// ErrUnsupportedFormat indicates a file extension no codec handles.
	ErrUnsupportedFormat = errors.New("unsupported mapping format")

	// ErrNestedValue indicates a mapping value that is not a scalar.
	ErrNestedValue = errors.New("nested values are not supported")
)

// LoadMapping reads a flat mapping from path, dispatching on the file
// extension (.json, .toml, .yaml, .yml). Values must be scalars.
func LoadMapping(path string) (diff.Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping: %w", err)
	}

	var raw map[string]any
	switch ext(path) {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: failed to parse JSON: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: failed to parse YAML: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	m := make(diff.Mapping, len(raw))
	for k, v := range raw {
		if !scalar(v) {
			return nil, fmt.Errorf("%s: key %q: %w", path, k, ErrNestedValue)
		}
		m[k] = v
	}
	return m, nil
}

// SaveMapping writes a mapping to path in the format the extension names.
func SaveMapping(path string, m diff.Mapping) error {
	var data []byte
	var err error

	switch ext(path) {
	case ".json":
		data, err = json.MarshalIndent(m, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case ".toml":
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(m)
		data = buf.Bytes()
	case ".yaml", ".yml":
		data, err = yaml.Marshal(m)
	default:
		return fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return fmt.Errorf("%s: failed to encode mapping: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write mapping: %w", err)
	}
	return nil
}

// planEntry is the persisted form of one instruction. The single-letter
// action codes are preserved exactly; downstream consumers pattern-match
// on them.
type planEntry struct {
	Action string `json:"action"`
	Key    string `json:"key"`
	Value  any    `json:"value"`
}

// SavePlan writes an instruction list to path as JSON.
func SavePlan(path string, instructions []diff.Instruction) error {
	entries := make([]planEntry, 0, len(instructions))
	for _, in := range instructions {
		entries = append(entries, planEntry{
			Action: string(in.Action),
			Key:    in.Key,
			Value:  in.Value,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write plan: %w", err)
	}
	return nil
}

// LoadPlan reads an instruction list written by SavePlan. Action codes
// are not validated here; Apply rejects unknown ones.
func LoadPlan(path string) ([]diff.Instruction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan: %w", err)
	}

	var entries []planEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%s: failed to parse plan: %w", path, err)
	}

	instructions := make([]diff.Instruction, 0, len(entries))
	for _, e := range entries {
		instructions = append(instructions, diff.Instruction{
			Action: diff.Action(e.Action),
			Key:    e.Key,
			Value:  e.Value,
		})
	}
	return instructions, nil
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// scalar reports whether a decoded value is a flat scalar. Decoders only
// produce maps, slices, and scalar kinds here, so rejecting containers
// is sufficient.
func scalar(v any) bool {
	if v == nil {
		return true
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return false
	}
	return true
}
