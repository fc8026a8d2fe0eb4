/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package validate

import (
	"reflect"
	"strings"
)

// Validatable is implemented by types that declare their validation rules.
type Validatable interface {
	ValidationFields() []Field
}

// Field is one entry of a rule table.
//
// Build fields with Required or Optional and refine them with the chainable
// helpers; all helpers return a modified copy.
type Field struct {
	// Name is used in messages, e.g. "The Username field is required.".
	Name string

	// Value is the current field value.
	Value any

	// Required enables the presence check and raises the severity of every
	// failure of this field to severity.Error.
	Required bool

	// RequiredMessage overrides the presence-check message.
	RequiredMessage string

	// Rules run in order; the first failure wins.
	Rules []Rule

	// Object, when set, is validated recursively once the field itself
	// passed. Set it with Field.Nested.
	Object Validatable

	// Header enables a leading "Validation for {Name} failed." entry in
	// front of nested errors. HeaderMessage overrides its text.
	Header        bool
	HeaderMessage string
}

// Required declares a mandatory field.
func Required(name string, v any, rules ...Rule) Field {
	return Field{Name: name, Value: v, Required: true, Rules: rules}
}

// Optional declares a field that is only checked by its rules. Empty values
// pass every built-in rule except Compare.
func Optional(name string, v any, rules ...Rule) Field {
	return Field{Name: name, Value: v, Rules: rules}
}

// Nested marks the field as composite: v is validated recursively.
func (f Field) Nested(v Validatable) Field {
	f.Object = v
	return f
}

// WithHeader prepends an Error-severity header in front of nested errors.
// An empty msg keeps the default "Validation for {Name} failed." text.
func (f Field) WithHeader(msg ...string) Field {
	f.Header = true
	if len(msg) > 0 {
		f.HeaderMessage = msg[0]
	}
	return f
}

// WithRequiredMessage overrides the presence-check message of this field.
func (f Field) WithRequiredMessage(msg string) Field {
	f.RequiredMessage = msg
	return f
}

// isEmpty reports whether v counts as missing for the presence check:
// nil, a nil pointer or interface, a blank string, an empty collection or
// any other zero value.
func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() == 0
	case reflect.String:
		return strings.TrimSpace(rv.String()) == ""
	default:
		return rv.IsZero()
	}
}

// isMissing is the narrower check used by rules: zero numbers and structs
// are present values.
func isMissing(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() == 0
	case reflect.String:
		return strings.TrimSpace(rv.String()) == ""
	}
	return false
}

// nestedIsNil guards against typed nils stored in the interface.
func nestedIsNil(v Validatable) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
