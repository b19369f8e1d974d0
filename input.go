package tomlpretty

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// InputFormat names a text encoding that [Decode] can read.
type InputFormat string

const (
	JSON InputFormat = "json"
	YAML InputFormat = "yaml"
)

var inputFormats = []InputFormat{JSON, YAML}

// String returns the format name.
func (f InputFormat) String() string { return string(f) }

// InputFormats returns all supported input format names.
func InputFormats() []InputFormat {
	out := make([]InputFormat, len(inputFormats))
	copy(out, inputFormats)
	return out
}

// ParseInputFormat parses a format name. "yml" is accepted for YAML.
func ParseInputFormat(s string) (InputFormat, error) {
	if s == "yml" {
		return YAML, nil
	}
	for _, f := range inputFormats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// InputFormatFor picks the input format from a file extension. Unknown
// extensions fall back to YAML, which also accepts JSON documents.
func InputFormatFor(path string) InputFormat {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if f, err := ParseInputFormat(ext); err == nil {
		return f
	}
	return YAML
}

// Decode reads one document from r and returns its value tree.
func Decode(r io.Reader, f InputFormat) (Value, error) {
	switch f {
	case JSON:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrProjection, err)
		}
		return FromJSON(data)
	case YAML:
		var node yaml.Node
		if err := yaml.NewDecoder(r).Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: empty document", ErrProjection)
			}
			return nil, fmt.Errorf("%w: %w", ErrProjection, err)
		}
		return FromYAML(&node)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
