package tomlpretty

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Kind identifies the variant of a [Value].
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{"null", "bool", "number", "string", "array", "object"}

// String returns the kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Value is a node of an ordered value tree. The set of implementations is
// closed: [Null], [Bool], [Number], [String], [Array] and [Object].
type Value interface {
	Kind() Kind
	sealed()
}

// Null is the absent value. Null entries are never rendered.
type Null struct{}

// Bool is a boolean leaf.
type Bool bool

// Number is a numeric leaf held in its canonical text form.
type Number string

// String is a text leaf.
type String string

// Array is an ordered sequence of values.
type Array []Value

// Object is an ordered mapping of keys to values. Member order is output order.
type Object []Member

// Member is a single key of an [Object].
type Member struct {
	Key   string
	Value Value
}

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }
func (Array) Kind() Kind  { return KindArray }
func (Object) Kind() Kind { return KindObject }

func (Null) sealed()   {}
func (Bool) sealed()   {}
func (Number) sealed() {}
func (String) sealed() {}
func (Array) sealed()  {}
func (Object) sealed() {}

// KindOf returns the kind of v. A nil Value is [KindNull].
func KindOf(v Value) Kind {
	if v == nil {
		return KindNull
	}
	return v.Kind()
}

// Int returns the Number for i.
func Int(i int64) Number { return Number(strconv.FormatInt(i, 10)) }

// Uint returns the Number for u.
func Uint(u uint64) Number { return Number(strconv.FormatUint(u, 10)) }

// Float returns the Number for f, using the same text encoding/json produces.
// NaN and infinities have no representation and return an error.
func Float(f float64) (Number, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: unsupported float %v", ErrProjection, f)
	}
	b, err := json.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrProjection, err)
	}
	return Number(b), nil
}

// Get returns the value stored under key.
func (o Object) Get(key string) (Value, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Set stores v under key. An existing key keeps its position.
func (o Object) Set(key string, v Value) Object {
	for i := range o {
		if o[i].Key == key {
			o[i].Value = v
			return o
		}
	}
	return append(o, Member{Key: key, Value: v})
}
