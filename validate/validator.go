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
	"strings"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/severity"
)

const (
	// DefaultRequiredMessage is the presence-check text; "{Name}" is replaced
	// by the field name.
	DefaultRequiredMessage = "The {Name} field is required."

	// DefaultHeaderMessage is the text of the header entry placed in front
	// of nested errors.
	DefaultHeaderMessage = "Validation for {Name} failed."
)

// Checker is anything that can validate a Validatable. *Validator is the
// stock implementation; TryValidateWith accepts any other.
type Checker interface {
	TryValidate(v Validatable) (bool, []dresult.Error)
}

// Validator walks rule tables. It is immutable and safe for concurrent use.
// The zero value is not usable; build one with New.
type Validator struct {
	failThreshold   severity.Severity
	requiredMessage string
	headerMessage   string
}

// Option configures a Validator at build time.
type Option func(*Validator)

// WithFailThreshold sets the lowest severity that makes an object invalid.
//
// By default every reported error invalidates, Warning ones included. With
// WithFailThreshold(severity.Error) objects whose only failures come from
// optional fields are valid; the warnings are still returned.
func WithFailThreshold(s severity.Severity) Option {
	return func(v *Validator) { v.failThreshold = s }
}

// WithRequiredMessage replaces DefaultRequiredMessage for fields without
// their own RequiredMessage.
func WithRequiredMessage(msg string) Option {
	return func(v *Validator) {
		if msg != "" {
			v.requiredMessage = msg
		}
	}
}

// WithHeaderMessage replaces DefaultHeaderMessage for fields without their
// own HeaderMessage.
func WithHeaderMessage(msg string) Option {
	return func(v *Validator) {
		if msg != "" {
			v.headerMessage = msg
		}
	}
}

// New builds a Validator.
func New(opts ...Option) *Validator {
	v := &Validator{
		failThreshold:   severity.Information,
		requiredMessage: DefaultRequiredMessage,
		headerMessage:   DefaultHeaderMessage,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

var std = New()

// TryValidate validates obj and reports whether it is valid together with
// every collected error, in field order.
func (v *Validator) TryValidate(obj Validatable) (bool, []dresult.Error) {
	errs := v.collect(obj)
	for _, e := range errs {
		if e.Severity.AtLeast(v.failThreshold) {
			return false, errs
		}
	}
	return true, errs
}

func (v *Validator) collect(obj Validatable) []dresult.Error {
	if nestedIsNil(obj) {
		return nil
	}
	var errs []dresult.Error
	for _, f := range obj.ValidationFields() {
		errs = append(errs, v.field(f)...)
	}
	return errs
}

// field validates a single entry and returns at most one own error, or the
// folded nested errors.
func (v *Validator) field(f Field) []dresult.Error {
	sev := severity.Warning
	switch {
	case f.Required:
		sev = severity.Error
		if isEmpty(f.Value) && (f.Object == nil || nestedIsNil(f.Object)) {
			msg := f.RequiredMessage
			if msg == "" {
				msg = v.requiredMessage
			}
			return []dresult.Error{dresult.NewError(expand(msg, f.Name), sev)}
		}
	case len(f.Rules) > 0 || f.Object != nil:
	default:
		return nil
	}

	for _, r := range f.Rules {
		if msg := r.Check(f.Name, f.Value); msg != "" {
			return []dresult.Error{dresult.NewError(msg, sev)}
		}
	}

	if f.Object == nil || nestedIsNil(f.Object) {
		return nil
	}
	nested := v.collect(f.Object)
	if len(nested) == 0 {
		return nil
	}
	if !f.Header {
		return nested
	}
	msg := f.HeaderMessage
	if msg == "" {
		msg = v.headerMessage
	}
	out := make([]dresult.Error, 0, len(nested)+1)
	out = append(out, dresult.NewError(expand(msg, f.Name), severity.Error))
	return append(out, nested...)
}

func expand(msg, name string) string {
	return strings.ReplaceAll(msg, "{Name}", name)
}

// TryValidate validates obj with the default Validator.
func TryValidate(obj Validatable) (bool, []dresult.Error) {
	return std.TryValidate(obj)
}

// TryValidateWith validates obj with c.
func TryValidateWith(obj Validatable, c Checker) (bool, []dresult.Error) {
	if c == nil {
		return std.TryValidate(obj)
	}
	return c.TryValidate(obj)
}

// Result validates obj with the default Validator and returns Ok or an
// Invalid result carrying the errors.
func Result(obj Validatable) dresult.Result {
	return ResultWith(obj, std)
}

// ResultWith is Result with a custom Checker. A valid object that still
// reported warnings yields Ok; the warnings are dropped.
func ResultWith(obj Validatable, c Checker) dresult.Result {
	ok, errs := TryValidateWith(obj, c)
	if ok {
		return dresult.Ok()
	}
	return dresult.Invalid(errs...)
}

// ResultOf validates obj and returns it as the value of an Ok result, or an
// Invalid result without value.
func ResultOf[T Validatable](obj T) dresult.Of[T] {
	if r := Result(obj); !r.IsSuccess() {
		return dresult.Cast[T](r)
	}
	return dresult.OkOf(obj)
}
