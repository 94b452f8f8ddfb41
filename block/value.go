package block

import (
	"encoding/json"
	"sort"
)

// ValueKind tags the dynamic type held by a Value.
type ValueKind int

const (
	NullValue ValueKind = iota
	StringValue
	NumberValue
	BoolValue
	ArrayValue
	ObjectValue
)

// Value is one attribute value: a tagged variant over the JSON types.
// Reads are pattern matches with explicit defaults instead of unchecked
// casts on interface{}. The zero Value is JSON null.
type Value struct {
	kind ValueKind
	str  string
	num  float64
	b    bool
	arr  []Value
	obj  map[string]Value
}

// Null returns the JSON null value.
func Null() Value { return Value{} }

// String wraps a string.
func String(s string) Value { return Value{kind: StringValue, str: s} }

// Number wraps a float64. JSON has a single number type; integer attributes
// like heading level travel as whole-valued floats.
func Number(n float64) Value { return Value{kind: NumberValue, num: n} }

// Int wraps an int as a JSON number.
func Int(n int) Value { return Number(float64(n)) }

// Bool wraps a bool.
func Bool(b bool) Value { return Value{kind: BoolValue, b: b} }

// Array wraps a slice of values.
func Array(vs ...Value) Value { return Value{kind: ArrayValue, arr: vs} }

// Strings wraps a string slice as a JSON array.
func Strings(ss []string) Value {
	vs := make([]Value, len(ss))
	for i, s := range ss {
		vs[i] = String(s)
	}
	return Array(vs...)
}

// Object wraps a map of values.
func Object(m map[string]Value) Value { return Value{kind: ObjectValue, obj: m} }

// Kind returns the variant tag.
func (v Value) Kind() ValueKind { return v.kind }

// Str returns the string payload, or "" if the value is not a string.
func (v Value) Str() (string, bool) {
	return v.str, v.kind == StringValue
}

// Num returns the numeric payload, or 0 if the value is not a number.
func (v Value) Num() (float64, bool) {
	return v.num, v.kind == NumberValue
}

// Boolean returns the bool payload, or false if the value is not a bool.
func (v Value) Boolean() (bool, bool) {
	return v.b, v.kind == BoolValue
}

// Arr returns the array payload, or nil if the value is not an array.
func (v Value) Arr() ([]Value, bool) {
	if v.kind != ArrayValue {
		return nil, false
	}
	return v.arr, true
}

// Obj returns the object payload, or nil if the value is not an object.
func (v Value) Obj() (map[string]Value, bool) {
	if v.kind != ObjectValue {
		return nil, false
	}
	return v.obj, true
}

// StrOr returns the string payload or def.
func (v Value) StrOr(def string) string {
	if v.kind == StringValue {
		return v.str
	}
	return def
}

// IntOr returns the number payload truncated to int, or def when the value
// is not a number.
func (v Value) IntOr(def int) int {
	if v.kind == NumberValue {
		return int(v.num)
	}
	return def
}

// BoolOr returns the bool payload or def.
func (v Value) BoolOr(def bool) bool {
	if v.kind == BoolValue {
		return v.b
	}
	return def
}

// FromAny converts a decoded JSON value (the interface{} shapes produced by
// encoding/json) into a Value. Unrecognized Go types become null.
func FromAny(x any) Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case string:
		return String(t)
	case float64:
		return Number(t)
	case int:
		return Int(t)
	case bool:
		return Bool(t)
	case []any:
		vs := make([]Value, len(t))
		for i, e := range t {
			vs[i] = FromAny(e)
		}
		return Array(vs...)
	case map[string]any:
		m := make(map[string]Value, len(t))
		for k, e := range t {
			m[k] = FromAny(e)
		}
		return Object(m)
	}
	return Null()
}

// Any converts a Value back to the interface{} shapes of encoding/json.
func (v Value) Any() any {
	switch v.kind {
	case StringValue:
		return v.str
	case NumberValue:
		return v.num
	case BoolValue:
		return v.b
	case ArrayValue:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			out[i] = e.Any()
		}
		return out
	case ObjectValue:
		out := make(map[string]any, len(v.obj))
		for k, e := range v.obj {
			out[k] = e.Any()
		}
		return out
	}
	return nil
}

// Equal reports deep equality of two values.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case StringValue:
		return v.str == o.str
	case NumberValue:
		return v.num == o.num
	case BoolValue:
		return v.b == o.b
	case ArrayValue:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case ObjectValue:
		if len(v.obj) != len(o.obj) {
			return false
		}
		for k, e := range v.obj {
			oe, ok := o.obj[k]
			if !ok || !e.Equal(oe) {
				return false
			}
		}
		return true
	}
	return true // both null
}

// MarshalJSON emits canonical JSON: object keys sorted, no insignificant
// whitespace. Deterministic output keeps attribute-only edits fingerprint
// stable.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case StringValue:
		return json.Marshal(v.str)
	case NumberValue:
		return json.Marshal(v.num)
	case BoolValue:
		return json.Marshal(v.b)
	case ArrayValue:
		buf := []byte{'['}
		for i, e := range v.arr {
			if i > 0 {
				buf = append(buf, ',')
			}
			eb, err := e.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf = append(buf, eb...)
		}
		return append(buf, ']'), nil
	case ObjectValue:
		keys := make([]string, 0, len(v.obj))
		for k := range v.obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		buf := []byte{'{'}
		for i, k := range keys {
			if i > 0 {
				buf = append(buf, ',')
			}
			kb, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}
			buf = append(buf, kb...)
			buf = append(buf, ':')
			eb, err := v.obj[k].MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf = append(buf, eb...)
		}
		return append(buf, '}'), nil
	}
	return []byte("null"), nil
}

// UnmarshalJSON accepts any JSON value.
func (v *Value) UnmarshalJSON(data []byte) error {
	var x any
	if err := json.Unmarshal(data, &x); err != nil {
		return err
	}
	*v = FromAny(x)
	return nil
}
