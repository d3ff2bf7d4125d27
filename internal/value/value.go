// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Kind identifies the JSON variant a Value holds. The diff engine uses it to
// distinguish "same shape, recurse" from "shape changed, report".
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is one node of a parsed JSON tree. The set of implementations is
// closed: Null, Bool, Number, String, Array, and Object.
type Value interface {
	Kind() Kind

	// appendJSON writes the compact JSON rendering of the node. Unexported so
	// no type outside this package can join the sum.
	appendJSON(b []byte) []byte
}

// Null is the JSON null literal.
type Null struct{}

// Bool is a JSON true or false.
type Bool bool

// Number is a JSON number. Raw keeps the source literal for display so that
// integers are not reprinted in floating form; Num carries the parsed value
// used for equality.
type Number struct {
	Raw string
	Num float64
}

// String is a JSON string.
type String string

// Array is an ordered JSON array.
type Array []Value

// Member is one key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is a JSON object with member order preserved from the source text.
// Keys are unique within one Object.
type Object []Member

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }
func (Array) Kind() Kind  { return KindArray }
func (Object) Kind() Kind { return KindObject }

// Get returns the value for key and whether the key is present.
func (o Object) Get(key string) (Value, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// set inserts key, or replaces the value of an existing key in place. A
// duplicate key in the source keeps its first position and its last value.
func (o Object) set(key string, v Value) Object {
	for i, m := range o {
		if m.Key == key {
			o[i].Value = v
			return o
		}
	}
	return append(o, Member{Key: key, Value: v})
}

// Equal reports structural equality. Object comparison ignores member order;
// number comparison uses the parsed value, not the source literal. A nil
// Value (absent) is only equal to another nil.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch av := a.(type) {
	case Null:
		return true
	case Bool:
		return av == b.(Bool)
	case Number:
		return av.Num == b.(Number).Num
	case String:
		return av == b.(String)
	case Array:
		bv := b.(Array)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Object:
		bv := b.(Object)
		if len(av) != len(bv) {
			return false
		}
		for _, m := range av {
			other, ok := bv.Get(m.Key)
			if !ok || !Equal(m.Value, other) {
				return false
			}
		}
		return true
	}

	return false
}

// Compact renders v as compact JSON. Object members keep their insertion
// order. String content is JSON-escaped, so control characters can never
// reach the terminal unencoded.
func Compact(v Value) string {
	if v == nil {
		return ""
	}
	return string(v.appendJSON(nil))
}

// Pretty renders v as indented JSON for the initial dump a watch session
// prints before the first diff.
func Pretty(v Value) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(Compact(v)), "", "  "); err != nil {
		return Compact(v)
	}
	return buf.String()
}

func (Null) appendJSON(b []byte) []byte { return append(b, "null"...) }

func (v Bool) appendJSON(b []byte) []byte {
	return strconv.AppendBool(b, bool(v))
}

func (v Number) appendJSON(b []byte) []byte {
	if v.Raw != "" {
		return append(b, v.Raw...)
	}
	return strconv.AppendFloat(b, v.Num, 'g', -1, 64)
}

func (v String) appendJSON(b []byte) []byte {
	// encoding/json handles quoting and control-character escapes. The
	// encoder's HTML escaping is turned off so "<", ">", and "&" render
	// literally; this output goes to a terminal, not a browser.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(string(v)); err != nil {
		return strconv.AppendQuote(b, string(v))
	}
	return append(b, bytes.TrimRight(buf.Bytes(), "\n")...)
}

func (v Array) appendJSON(b []byte) []byte {
	b = append(b, '[')
	for i, el := range v {
		if i > 0 {
			b = append(b, ',')
		}
		b = el.appendJSON(b)
	}
	return append(b, ']')
}

func (v Object) appendJSON(b []byte) []byte {
	b = append(b, '{')
	for i, m := range v {
		if i > 0 {
			b = append(b, ',')
		}
		b = String(m.Key).appendJSON(b)
		b = append(b, ':')
		b = m.Value.appendJSON(b)
	}
	return append(b, '}')
}
