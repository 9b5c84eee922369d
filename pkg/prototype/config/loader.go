package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names a document encoding.
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// FormatOf picks the format from a file extension (.yaml, .yml or .json).
func FormatOf(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	default:
		return "", fmt.Errorf("unsupported config file extension %q", ext)
	}
}

// Decode reads one document from r. An empty document yields an empty
// Config; a document whose top level is not an object is an error.
func Decode(r io.Reader, format Format) (Config, error) {
	var m map[string]any
	var err error
	switch format {
	case YAML:
		err = yaml.NewDecoder(r).Decode(&m)
	case JSON:
		err = json.NewDecoder(r).Decode(&m)
	default:
		return Config{}, fmt.Errorf("unknown config format %q", format)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode %s: %w", format, err)
	}
	return New(m), nil
}

// FromYAML decodes a YAML document.
func FromYAML(data []byte) (Config, error) {
	return Decode(bytes.NewReader(data), YAML)
}

// FromJSON decodes a JSON document.
func FromJSON(data []byte) (Config, error) {
	return Decode(bytes.NewReader(data), JSON)
}

// FromFile loads a single file, choosing the decoder by extension.
func FromFile(path string) (Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Config{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Decode(f, format)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Load reads every file in order and overlays their top-level keys, so a
// later file replaces whole values set by an earlier one.
func Load(paths ...string) (Config, error) {
	merged := make(map[string]any)
	for _, p := range paths {
		cfg, err := FromFile(p)
		if err != nil {
			return Config{}, err
		}
		maps.Copy(merged, cfg.data)
	}
	return New(merged), nil
}
