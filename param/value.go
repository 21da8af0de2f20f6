// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package param

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cast"
)

// Kind identifies the shape of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindScalar
	KindSequence
	KindMapping
	KindDeferred
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	case KindDeferred:
		return "deferred"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is a parameter value. The zero Value is Null.
type Value struct {
	kind   Kind
	scalar any
	items  []Value
	pairs  []Pair
	fn     func() Value
}

// Pair is a single entry of a Mapping.
type Pair struct {
	Key   string
	Value Value
}

// P builds a Pair, converting v with Of.
func P(key string, v any) Pair {
	return Pair{Key: key, Value: Of(v)}
}

// Null returns the null value.
func Null() Value {
	return Value{}
}

// String returns a string scalar.
func String(s string) Value {
	return Value{kind: KindScalar, scalar: s}
}

// Bool returns a boolean scalar.
func Bool(b bool) Value {
	return Value{kind: KindScalar, scalar: b}
}

// Int returns an integer scalar.
func Int(i int64) Value {
	return Value{kind: KindScalar, scalar: i}
}

// Float returns a floating point scalar.
func Float(f float64) Value {
	return Value{kind: KindScalar, scalar: f}
}

// Seq returns a Sequence holding items in order.
func Seq(items ...Value) Value {
	return Value{kind: KindSequence, items: items}
}

// Map returns a Mapping holding pairs in order.
// A repeated key keeps its first position and its last value.
func Map(pairs ...Pair) Value {
	out := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		if i := slices.IndexFunc(out, func(q Pair) bool { return q.Key == p.Key }); i >= 0 {
			out[i].Value = p.Value
			continue
		}
		out = append(out, p)
	}

	return Value{kind: KindMapping, pairs: out}
}

// Deferred returns a value computed by fn each time it is rendered.
// A nil fn behaves like Null.
func Deferred(fn func() Value) Value {
	return Value{kind: KindDeferred, fn: fn}
}

// Of converts a Go value into a Value.
//
// Conversion rules:
//   - nil becomes Null
//   - Value and *Value are returned as is
//   - func() Value, func() any and func() string become Deferred
//   - strings, booleans and numbers become Scalar
//   - slices and arrays become Sequence
//   - yaml.MapSlice and *Set keep their order as Mapping
//   - other maps become Mapping with keys sorted
//   - anything else becomes a Scalar rendered with fmt
func Of(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case *Value:
		if x == nil {
			return Null()
		}
		return *x
	case func() Value:
		return Deferred(x)
	case func() any:
		return Deferred(func() Value { return Of(x()) })
	case func() string:
		return Deferred(func() Value { return String(x()) })
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return Value{kind: KindScalar, scalar: x}
	case []any:
		items := make([]Value, len(x))
		for i, item := range x {
			items[i] = Of(item)
		}
		return Seq(items...)
	case yaml.MapSlice:
		pairs := make([]Pair, 0, len(x))
		for _, item := range x {
			pairs = append(pairs, Pair{Key: cast.ToString(item.Key), Value: Of(item.Value)})
		}
		return Map(pairs...)
	case *Set:
		if x == nil {
			return Null()
		}
		pairs := make([]Pair, 0, x.Len())
		for k, val := range x.All() {
			pairs = append(pairs, Pair{Key: k, Value: val})
		}
		return Map(pairs...)
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		pairs := make([]Pair, len(keys))
		for i, k := range keys {
			pairs[i] = Pair{Key: k, Value: Of(x[k])}
		}
		return Map(pairs...)
	}

	return ofReflect(v)
}

func ofReflect(v any) Value {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return Null()
		}
		return Of(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Seq()
		}
		items := make([]Value, rv.Len())
		for i := range rv.Len() {
			items[i] = Of(rv.Index(i).Interface())
		}
		return Seq(items...)
	case reflect.Map:
		keys := make([]string, 0, rv.Len())
		byKey := make(map[string]reflect.Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := cast.ToString(iter.Key().Interface())
			keys = append(keys, k)
			byKey[k] = iter.Value()
		}
		slices.Sort(keys)
		pairs := make([]Pair, len(keys))
		for i, k := range keys {
			pairs[i] = Pair{Key: k, Value: Of(byKey[k].Interface())}
		}
		return Map(pairs...)
	default:
		return Value{kind: KindScalar, scalar: v}
	}
}

// Kind reports the shape of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is Null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// IsComposite reports whether v is a Sequence or a Mapping.
func (v Value) IsComposite() bool {
	return v.kind == KindSequence || v.kind == KindMapping
}

// Items returns the elements of a Sequence, or nil for other kinds.
func (v Value) Items() []Value {
	return v.items
}

// Pairs returns the entries of a Mapping, or nil for other kinds.
func (v Value) Pairs() []Pair {
	return v.pairs
}

// Raw returns the underlying Go value of a Scalar, or nil for other kinds.
func (v Value) Raw() any {
	return v.scalar
}

// Resolve invokes Deferred values until a non-deferred value is produced.
// Values of other kinds are returned unchanged.
func (v Value) Resolve() Value {
	for v.kind == KindDeferred {
		if v.fn == nil {
			return Null()
		}
		v = v.fn()
	}

	return v
}

// Empty reports whether v is a boolean scalar or the empty string.
// Empty values on an optional trailing path segment drop the whole segment.
func (v Value) Empty() bool {
	v = v.Resolve()
	if v.kind != KindScalar {
		return false
	}
	switch s := v.scalar.(type) {
	case bool:
		return true
	case string:
		return s == ""
	}

	return false
}

// String renders v as text.
// Null renders as "", a Sequence as its elements joined by ",", and a
// Mapping as its values joined by ",".
func (v Value) String() string {
	v = v.Resolve()
	switch v.kind {
	case KindScalar:
		s, err := cast.ToStringE(v.scalar)
		if err != nil {
			return fmt.Sprint(v.scalar)
		}
		return s
	case KindSequence:
		parts := make([]string, len(v.items))
		for i, item := range v.items {
			parts[i] = item.String()
		}
		return strings.Join(parts, ",")
	case KindMapping:
		parts := make([]string, len(v.pairs))
		for i, p := range v.pairs {
			parts[i] = p.Value.String()
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}

// Equal reports whether v and o are equivalent. Scalars compare by their
// rendered text, so Int(1) equals String("1").
func (v Value) Equal(o Value) bool {
	v, o = v.Resolve(), o.Resolve()
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindScalar:
		return v.String() == o.String()
	case KindSequence:
		return slices.EqualFunc(v.items, o.items, Value.Equal)
	case KindMapping:
		return slices.EqualFunc(v.pairs, o.pairs, func(a, b Pair) bool {
			return a.Key == b.Key && a.Value.Equal(b.Value)
		})
	}

	return false
}

// GoString implements fmt.GoStringer for readable test failures.
func (v Value) GoString() string {
	switch v.kind {
	case KindScalar:
		return fmt.Sprintf("param.Scalar(%#v)", v.scalar)
	case KindSequence:
		return fmt.Sprintf("param.Seq(%#v)", v.items)
	case KindMapping:
		return fmt.Sprintf("param.Map(%#v)", v.pairs)
	default:
		return "param." + strings.ToUpper(v.kind.String()[:1]) + v.kind.String()[1:] + "()"
	}
}
