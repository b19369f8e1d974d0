package tomlpretty

import (
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrProjection        = errors.New("value projection failed")
	ErrWrite             = errors.New("write failed")
	ErrTripleNestedArray = errors.New("triple nested array not supported")
	ErrObjectReached     = errors.New("object reached formatter after flattening")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Options controls rendering. Use [DefaultOptions] and the With methods to
// build one; the zero value has an empty tab and a zero inline threshold.
type Options struct {
	// Tab indents elements of multi-line arrays.
	Tab string
	// SkipEmptyString omits entries and array elements holding "".
	SkipEmptyString bool
	// SkipEmptyObject drops empty nested objects. When false they render as
	// key = {}.
	SkipEmptyObject bool
	// InlineArray renders every array on a single line.
	InlineArray bool
	// MaxInlineArrayLength is the character budget, summed over the rendered
	// elements, under which an array stays on one line.
	MaxInlineArrayLength int
}

// DefaultOptions returns the default configuration: tab indentation, empty
// strings kept, empty objects dropped, arrays inlined up to 50 characters.
func DefaultOptions() Options {
	return Options{
		Tab:                  "\t",
		SkipEmptyObject:      true,
		MaxInlineArrayLength: 50,
	}
}

// WithTab sets the indentation used inside multi-line arrays.
func (o Options) WithTab(tab string) Options {
	o.Tab = tab
	return o
}

// WithSkipEmptyString sets whether empty strings are omitted.
func (o Options) WithSkipEmptyString(skip bool) Options {
	o.SkipEmptyString = skip
	return o
}

// WithSkipEmptyObject sets whether empty nested objects are omitted.
func (o Options) WithSkipEmptyObject(skip bool) Options {
	o.SkipEmptyObject = skip
	return o
}

// WithInlineArray sets whether arrays are always rendered on one line.
func (o Options) WithInlineArray(inline bool) Options {
	o.InlineArray = inline
	return o
}

// WithMaxInlineArrayLength sets the character budget for automatic inlining.
func (o Options) WithMaxInlineArrayLength(n int) Options {
	o.MaxInlineArrayLength = n
	return o
}

// ToString projects v into a value tree, flattens it and renders the
// document. The top-level value must be an object.
func ToString(v any, opts Options) (string, error) {
	root, err := Project(v)
	if err != nil {
		return "", err
	}
	obj, ok := root.(Object)
	if !ok {
		return "", fmt.Errorf("%w: top-level value is %s, want object", ErrProjection, KindOf(root))
	}
	return Format(Flatten(obj, opts.SkipEmptyObject), opts)
}

// Marshal renders v and returns the bytes.
func Marshal(v any, opts Options) ([]byte, error) {
	s, err := ToString(v, opts)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// Write renders v and writes the complete document to w.
func Write(w io.Writer, v any, opts Options) error {
	s, err := ToString(v, opts)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
