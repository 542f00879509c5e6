// Package codec reads and writes keymap documents as JSON, YAML or TOML.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hawkins/vecbind/internal/keymap"
	"github.com/hawkins/vecbind/internal/util"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a document encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

var ErrUnknownFormat = errors.New("unknown format")

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{JSON, YAML, TOML}
}

// ParseFormat accepts a format name or file extension, with or without the dot.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Ext returns the file extension for f, dot included.
func (f Format) Ext() string {
	return "." + string(f)
}

// Marshal encodes doc.
func Marshal(doc keymap.Document, f Format) ([]byte, error) {
	switch f {
	case JSON:
		data, err := util.JsonMarshalIndent(doc)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case TOML:
		return toml.Marshal(doc)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// Unmarshal decodes data into a document.
func Unmarshal(data []byte, f Format) (keymap.Document, error) {
	var doc keymap.Document
	var err error
	switch f {
	case JSON:
		err = util.JsonUnmarshal(data, &doc)
	case YAML:
		err = yaml.Unmarshal(data, &doc)
	case TOML:
		err = toml.Unmarshal(data, &doc)
	default:
		return doc, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
	if err != nil {
		return doc, fmt.Errorf("decode %s: %w", f, err)
	}
	return doc, nil
}
