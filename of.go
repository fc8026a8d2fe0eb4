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

package dresult

import "encoding/json"

// Of is a Result that carries a value of type T.
//
// The value is populated only when the status is Ok; a failed Of[T] always
// holds the zero value of T.
type Of[T any] struct {
	Result
	value T
}

// OkOf returns a successful result carrying v.
func OkOf[T any](v T) Of[T] {
	return Of[T]{Result: Ok(), value: v}
}

// Cast turns an untyped result into a typed one, typically to propagate a
// failure from a helper:
//
//	if r := validate.Result(req); !r.IsSuccess() {
//	    return dresult.Cast[User](r)
//	}
//
// The value is always the zero value of T, also when r is Ok.
func Cast[T any](r Result) Of[T] {
	return Of[T]{Result: r}
}

// Map applies f to the value of a successful result. Failures are carried
// over unchanged, with their metadata.
func Map[T, U any](r Of[T], f func(T) U) Of[U] {
	if !r.IsSuccess() {
		return Of[U]{Result: r.Result}
	}
	return Of[U]{Result: r.Result, value: f(r.value)}
}

// Value returns the carried value, or the zero value of T on failure.
func (r Of[T]) Value() T { return r.value }

// Get returns the value and whether the result is a success.
func (r Of[T]) Get() (T, bool) {
	return r.value, r.IsSuccess()
}

// ValueOr returns the value on success and def otherwise.
func (r Of[T]) ValueOr(def T) T {
	if !r.IsSuccess() {
		return def
	}
	return r.value
}

// WithMetadata returns a copy of r with one extra metadata entry.
func (r Of[T]) WithMetadata(k string, v any) Of[T] {
	r.Result = r.Result.WithMetadata(k, v)
	return r
}

// WithMetadataMap returns a copy of r with kv merged into the metadata.
func (r Of[T]) WithMetadataMap(kv map[string]any) Of[T] {
	r.Result = r.Result.WithMetadataMap(kv)
	return r
}

// WithErrors returns a copy of r with errs appended. The value is dropped
// when the result stops being a success.
func (r Of[T]) WithErrors(errs ...Error) Of[T] {
	r.Result = r.Result.WithErrors(errs...)
	if !r.IsSuccess() {
		var zero T
		r.value = zero
	}
	return r
}

// MarshalJSON renders the result like Result.MarshalJSON and adds "value"
// for successful results.
func (r Of[T]) MarshalJSON() ([]byte, error) {
	type ofView struct {
		resultView
		Value *T `json:"value,omitempty"`
	}
	v := ofView{resultView: r.view()}
	if r.IsSuccess() {
		v.Value = &r.value
	}
	return json.Marshal(v)
}
