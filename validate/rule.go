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
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Rule is a single check applied to a field value.
//
// Rules are values; Message returns a copy with a custom text. In a custom
// message "{Name}" is replaced by the field name.
type Rule struct {
	check     func(v any) bool
	message   func(name string) string
	custom    string
	keepEmpty bool
}

// Message returns a copy of r that reports msg instead of the default text.
func (r Rule) Message(msg string) Rule {
	r.custom = msg
	return r
}

// Check runs the rule against v and returns the failure message, or "" when
// v passes. Missing values (nil, blank strings, empty collections) pass
// unless the rule says otherwise.
func (r Rule) Check(name string, v any) string {
	if r.check == nil {
		return ""
	}
	if !r.keepEmpty && isMissing(v) {
		return ""
	}
	if r.check(v) {
		return ""
	}
	return r.text(name)
}

func (r Rule) text(name string) string {
	if r.custom != "" {
		return strings.ReplaceAll(r.custom, "{Name}", name)
	}
	if r.message == nil {
		return fmt.Sprintf("The field %s is invalid.", name)
	}
	return r.message(name)
}

// Pattern requires the whole string form of the value to match expr; a
// match of a substring is not enough. It panics if expr does not compile,
// like regexp.MustCompile.
func Pattern(expr string) Rule {
	re := regexp.MustCompile(`^(?:` + expr + `)$`)
	return Rule{
		check: func(v any) bool {
			s, ok := asString(v)
			return ok && re.MatchString(s)
		},
		message: func(name string) string {
			return fmt.Sprintf("The field %s must match the regular expression '%s'.", name, expr)
		},
	}
}

// Email requires a single '@' that is neither the first nor the last
// character.
func Email() Rule {
	return Rule{
		check: func(v any) bool {
			s, ok := asString(v)
			if !ok {
				return false
			}
			at := strings.IndexByte(s, '@')
			return at > 0 && at == strings.LastIndexByte(s, '@') && at != len(s)-1
		},
		message: func(name string) string {
			return fmt.Sprintf("The %s field is not a valid e-mail address.", name)
		},
	}
}

// MinLength requires a string (in runes) or collection of at least n elements.
func MinLength(n int) Rule {
	return Rule{
		check: func(v any) bool {
			l, ok := length(v)
			return ok && l >= n
		},
		message: func(name string) string {
			return fmt.Sprintf("The field %s must be a string or array type with a minimum length of '%d'.", name, n)
		},
	}
}

// MaxLength requires a string (in runes) or collection of at most n elements.
func MaxLength(n int) Rule {
	return Rule{
		check: func(v any) bool {
			l, ok := length(v)
			return ok && l <= n
		},
		message: func(name string) string {
			return fmt.Sprintf("The field %s must be a string or array type with a maximum length of '%d'.", name, n)
		},
	}
}

// Range requires a numeric value within [lo, hi].
func Range(lo, hi float64) Rule {
	return Rule{
		check: func(v any) bool {
			f, ok := number(v)
			return ok && f >= lo && f <= hi
		},
		message: func(name string) string {
			return fmt.Sprintf("The field %s must be between %v and %v.", name, lo, hi)
		},
	}
}

// Compare requires the value to equal otherValue, the current value of the
// field named otherName. Empty values are compared too.
func Compare(otherName string, otherValue any) Rule {
	return Rule{
		check: func(v any) bool {
			return reflect.DeepEqual(v, otherValue)
		},
		message: func(name string) string {
			return fmt.Sprintf("'%s' and '%s' do not match.", name, otherName)
		},
		keepEmpty: true,
	}
}

// OneOf requires the value to equal one of values.
func OneOf(values ...any) Rule {
	return Rule{
		check: func(v any) bool {
			for _, allowed := range values {
				if reflect.DeepEqual(v, allowed) {
					return true
				}
			}
			return false
		},
		message: func(name string) string {
			parts := make([]string, len(values))
			for i, allowed := range values {
				parts[i] = fmt.Sprint(allowed)
			}
			return fmt.Sprintf("The field %s must be one of: %s.", name, strings.Join(parts, ", "))
		},
	}
}

// Func wraps an arbitrary predicate. fn sees every value, empty ones
// included.
func Func(msg string, fn func(v any) bool) Rule {
	return Rule{check: fn, custom: msg, keepEmpty: true}
}

func asString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case fmt.Stringer:
		return s.String(), true
	case []byte:
		return string(s), true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

func length(v any) (int, bool) {
	if s, ok := v.(string); ok {
		return utf8.RuneCountInString(s), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return utf8.RuneCountInString(rv.String()), true
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len(), true
	}
	return 0, false
}

func number(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
