package tomlpretty

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Format renders flattened entries as key = value lines joined by newlines,
// without a trailing newline. Entries that render to nothing (null, skipped
// empty strings) leave no line behind.
func Format(entries []Entry, opts Options) (string, error) {
	var b strings.Builder
	if err := writeDocument(&b, entries, opts); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeDocument(w io.Writer, entries []Entry, opts Options) error {
	r := renderer{opts: opts}
	first := true
	for _, e := range entries {
		s, ok, err := r.value(e.Value, false)
		if err != nil {
			return fmt.Errorf("key %q: %w", e.Key, err)
		}
		if !ok {
			continue
		}
		sep := "\n"
		if first {
			sep = ""
		}
		if _, err := fmt.Fprintf(w, "%s%s = %s", sep, e.Key, s); err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
		first = false
	}
	return nil
}

type renderer struct {
	opts Options
}

// value renders an entry value. Inline values are confined to one line:
// arrays never break and strings never use the triple-quoted block.
func (r renderer) value(v Value, inline bool) (string, bool, error) {
	switch v := v.(type) {
	case nil, Null:
		return "", false, nil
	case Bool:
		return strconv.FormatBool(bool(v)), true, nil
	case Number:
		return string(v), true, nil
	case String:
		if r.opts.SkipEmptyString && v == "" {
			return "", false, nil
		}
		if !inline && strings.Contains(string(v), "\n") {
			return `"""` + "\n" + string(v) + `"""`, true, nil
		}
		return quote(string(v)), true, nil
	case Array:
		s, err := r.array(v, inline)
		return s, err == nil, err
	case Object:
		if len(v) > 0 {
			return "", false, ErrObjectReached
		}
		return "{}", true, nil
	default:
		return "", false, fmt.Errorf("unknown value type %T", v)
	}
}

func (r renderer) array(a Array, inline bool) (string, error) {
	elems, err := r.elements(a, 1)
	if err != nil {
		return "", err
	}
	if len(elems) == 0 {
		return "[]", nil
	}
	if inline || r.opts.InlineArray || charCount(elems) <= r.opts.MaxInlineArrayLength {
		return "[" + strings.Join(elems, ", ") + "]", nil
	}
	tab := r.opts.Tab
	return "[\n" + tab + strings.Join(elems, ",\n"+tab) + "\n]", nil
}

func (r renderer) elements(a Array, depth int) ([]string, error) {
	elems := make([]string, 0, len(a))
	for _, v := range a {
		s, ok, err := r.element(v, depth)
		if err != nil {
			return nil, err
		}
		if ok {
			elems = append(elems, s)
		}
	}
	return elems, nil
}

// element renders one array element. Arrays may nest two levels deep.
func (r renderer) element(v Value, depth int) (string, bool, error) {
	switch v := v.(type) {
	case nil, Null:
		return "", false, nil
	case Bool:
		return strconv.FormatBool(bool(v)), true, nil
	case Number:
		return string(v), true, nil
	case String:
		if r.opts.SkipEmptyString && v == "" {
			return "", false, nil
		}
		return quote(string(v)), true, nil
	case Object:
		s, err := r.inlineTable(v)
		return s, err == nil, err
	case Array:
		if depth >= 2 {
			return "", false, ErrTripleNestedArray
		}
		elems, err := r.elements(v, depth+1)
		if err != nil {
			return "", false, err
		}
		return "[" + strings.Join(elems, ", ") + "]", true, nil
	default:
		return "", false, fmt.Errorf("unknown value type %T", v)
	}
}

// inlineTable renders obj as { k = v, ... } on a single line. The object is
// flattened as its own document, so arrays inside it start again at depth one.
func (r renderer) inlineTable(obj Object) (string, error) {
	var b strings.Builder
	b.WriteString("{")
	n := 0
	for _, e := range Flatten(obj, r.opts.SkipEmptyObject) {
		s, ok, err := r.value(e.Value, true)
		if err != nil {
			return "", err
		}
		if !ok {
			continue
		}
		if n > 0 {
			b.WriteString(",")
		}
		b.WriteString(" ")
		b.WriteString(e.Key)
		b.WriteString(" = ")
		b.WriteString(s)
		n++
	}
	if n > 0 {
		b.WriteString(" ")
	}
	b.WriteString("}")
	return b.String(), nil
}

var quoter = strings.NewReplacer(`"`, `\"`, "\n", `\n`)

func quote(s string) string {
	return `"` + quoter.Replace(s) + `"`
}

// charCount sums the characters of the rendered elements. Separators and
// brackets are not counted.
func charCount(elems []string) int {
	total := 0
	for _, e := range elems {
		total += utf8.RuneCountInString(e)
	}
	return total
}
