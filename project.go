package tomlpretty

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"

	"gopkg.in/yaml.v3"
)

// Valuer is an escape hatch checked before projection. Types implementing it
// supply their own value tree instead of going through encoding/json.
//
// Only the top-level value is checked. Nested fields go through
// encoding/json, so a nested type controls its output with json.Marshaler,
// not TOMLValue.
type Valuer interface {
	TOMLValue() (Value, error)
}

// Project converts v into a value tree.
//
// A [Value] is returned as is, a [Valuer] builds its own tree, and a
// yaml.Node is converted structurally. Anything else is marshaled with
// encoding/json and read back in order, so struct fields keep their declared
// order and json tags apply. Map keys come out sorted. A nil pointer is
// [Null], as it is for encoding/json.
func Project(v any) (Value, error) {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return Null{}, nil
	}
	switch t := v.(type) {
	case Value:
		return t, nil
	case Valuer:
		val, err := t.TOMLValue()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrProjection, err)
		}
		return val, nil
	case *yaml.Node:
		return FromYAML(t)
	case yaml.Node:
		return FromYAML(&t)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProjection, err)
	}
	return FromJSON(data)
}

// FromJSON decodes a single JSON document into a value tree, preserving key
// order and the exact text of numbers. A repeated key keeps its first
// position and takes the last value.
func FromJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeJSON(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProjection, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrProjection)
	}
	return v, nil
}

func decodeJSON(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			return decodeJSONArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t)
	case nil:
		return Null{}, nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t), nil
	case string:
		return String(t), nil
	default:
		return nil, fmt.Errorf("unexpected token %T", tok)
	}
}

func decodeJSONObject(dec *json.Decoder) (Value, error) {
	obj := Object{}
	seen := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %T, want string", tok)
		}
		v, err := decodeJSON(dec)
		if err != nil {
			return nil, err
		}
		if i, dup := seen[key]; dup {
			obj[i].Value = v
			continue
		}
		seen[key] = len(obj)
		obj = append(obj, Member{Key: key, Value: v})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeJSONArray(dec *json.Decoder) (Value, error) {
	arr := Array{}
	for dec.More() {
		v, err := decodeJSON(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

// FromYAML converts a parsed YAML node into a value tree. Scalars are typed by
// their resolved tag; tags other than null, bool, int and float become
// strings. An empty document is [Null].
func FromYAML(node *yaml.Node) (Value, error) {
	y := yamlProjector{active: make(map[*yaml.Node]bool)}
	v, err := y.node(node)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProjection, err)
	}
	return v, nil
}

type yamlProjector struct {
	active map[*yaml.Node]bool
}

func (y yamlProjector) node(n *yaml.Node) (Value, error) {
	if n == nil {
		return Null{}, nil
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null{}, nil
		}
		return y.node(n.Content[0])
	case yaml.MappingNode:
		return y.mapping(n)
	case yaml.SequenceNode:
		y.active[n] = true
		defer delete(y.active, n)
		arr := make(Array, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := y.node(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		return scalar(n)
	case yaml.AliasNode:
		if y.active[n.Alias] {
			return nil, fmt.Errorf("line %d: alias %q refers to itself", n.Line, n.Value)
		}
		return y.node(n.Alias)
	default:
		return nil, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
	}
}

func (y yamlProjector) mapping(n *yaml.Node) (Value, error) {
	if len(n.Content)%2 != 0 {
		return nil, fmt.Errorf("line %d: mapping has an odd number of nodes", n.Line)
	}
	y.active[n] = true
	defer delete(y.active, n)
	obj := make(Object, 0, len(n.Content)/2)
	for i := 0; i < len(n.Content); i += 2 {
		k := n.Content[i]
		if k.Kind == yaml.AliasNode {
			k = k.Alias
		}
		if k == nil || k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping key must be a scalar", n.Content[i].Line)
		}
		v, err := y.node(n.Content[i+1])
		if err != nil {
			return nil, err
		}
		obj = obj.Set(k.Value, v)
	}
	return obj, nil
}

func scalar(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null{}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return Bool(b), nil
	case "!!int":
		if isJSONNumber(n.Value) {
			return Number(n.Value), nil
		}
		var i int64
		if err := n.Decode(&i); err == nil {
			return Int(i), nil
		}
		var u uint64
		if err := n.Decode(&u); err != nil {
			return nil, fmt.Errorf("line %d: integer %q out of range", n.Line, n.Value)
		}
		return Uint(u), nil
	case "!!float":
		if isJSONNumber(n.Value) {
			return Number(n.Value), nil
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("line %d: unsupported float %q", n.Line, n.Value)
		}
		return Float(f)
	default:
		return String(n.Value), nil
	}
}

// isJSONNumber reports whether s is already in canonical number syntax, in
// which case its text is kept exactly as written.
func isJSONNumber(s string) bool {
	if s == "" || (s[0] != '-' && (s[0] < '0' || s[0] > '9')) {
		return false
	}
	return json.Valid([]byte(s))
}
