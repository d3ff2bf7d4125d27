// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrInvalid is returned by Parse for non-blank input that is not valid JSON.
var ErrInvalid = errors.New("invalid JSON")

// Parse converts raw text into a Value tree. Blank input (empty or
// all-whitespace) means "no value" and yields (nil, nil) rather than an
// error, so an unreadable source degrades a tick instead of failing it.
func Parse(raw string) (Value, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	if !gjson.Valid(raw) {
		return nil, ErrInvalid
	}
	return fromResult(gjson.Parse(raw)), nil
}

// Select narrows raw to the document addressed by a gjson path, returning
// its raw JSON. A missing path yields "", which Parse treats as no value.
func Select(raw, path string) string {
	res := gjson.Get(raw, path)
	if !res.Exists() {
		return ""
	}
	return res.Raw
}

// fromResult walks a gjson result, which iterates members in document order.
func fromResult(r gjson.Result) Value {
	switch {
	case r.Type == gjson.Null:
		return Null{}
	case r.Type == gjson.False:
		return Bool(false)
	case r.Type == gjson.True:
		return Bool(true)
	case r.Type == gjson.Number:
		return Number{Raw: strings.TrimSpace(r.Raw), Num: r.Num}
	case r.Type == gjson.String:
		return String(r.Str)
	case r.IsArray():
		arr := Array{}
		r.ForEach(func(_, el gjson.Result) bool {
			arr = append(arr, fromResult(el))
			return true
		})
		return arr
	case r.IsObject():
		obj := Object{}
		r.ForEach(func(key, el gjson.Result) bool {
			obj = obj.set(key.Str, fromResult(el))
			return true
		})
		return obj
	}
	return Null{}
}
