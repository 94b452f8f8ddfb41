package block

import "encoding/json"

// Attrs is a block's attribute bag: string keys to JSON-typed values.
// No keys are fixed at the type level; readers go through the typed
// accessors and supply their own defaults.
type Attrs map[string]Value

// ParseAttrs parses a single-line JSON object into an attribute bag.
// Malformed input degrades to an empty bag — attribute JSON written by
// other editors is untrusted and parse failure is a normal mid-edit state,
// never an error.
func ParseAttrs(raw string) Attrs {
	if raw == "" {
		return Attrs{}
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return Attrs{}
	}
	a := make(Attrs, len(m))
	for k, v := range m {
		a[k] = FromAny(v)
	}
	return a
}

// JSON serializes the bag as a canonical single-line JSON object with
// sorted keys. An empty or nil bag serializes as "{}".
func (a Attrs) JSON() string {
	v := Object(map[string]Value(a))
	if a == nil {
		v = Object(map[string]Value{})
	}
	b, err := v.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(b)
}

// Clone returns an independent copy of the bag.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Equal reports deep equality of two bags. nil and empty compare equal.
func (a Attrs) Equal(o Attrs) bool {
	if len(a) != len(o) {
		return false
	}
	for k, v := range a {
		ov, ok := o[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// Str returns a[key] as a string, or def.
func (a Attrs) Str(key, def string) string {
	return a[key].StrOr(def)
}

// Int returns a[key] as an int, or def.
func (a Attrs) Int(key string, def int) int {
	return a[key].IntOr(def)
}

// Bool returns a[key] as a bool, or def.
func (a Attrs) Bool(key string, def bool) bool {
	return a[key].BoolOr(def)
}

// StringSlice returns a[key] as a []string, skipping non-string elements.
// Missing or non-array values yield nil.
func (a Attrs) StringSlice(key string) []string {
	arr, ok := a[key].Arr()
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.Str(); ok {
			out = append(out, s)
		}
	}
	return out
}
