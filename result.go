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

import (
	"encoding/json"

	"dirpx.dev/dresult/severity"
	"dirpx.dev/dresult/status"
)

// Result is the outcome of an operation that produces no value.
//
// Invariants (enforced by every constructor and WithX helper):
//   - Status() == status.Ok if and only if Errors() is empty;
//   - a failed result always carries at least one error; when the caller
//     gives none, DefaultError(status) is used.
//
// The zero Result is Ok.
type Result struct {
	status   status.Status
	errors   []Error
	metadata map[string]any
}

// New builds a result with the given status and applies opts in order.
// The invariants are restored after all options ran.
func New(st status.Status, opts ...Option) Result {
	r := Result{status: st}
	for _, opt := range opts {
		r = opt(r)
	}
	return r.seal()
}

// Ok returns a successful result.
func Ok() Result {
	return Result{status: status.Ok}
}

// Fail returns a result with the generic Error status.
func Fail(errs ...Error) Result { return WithStatus(status.Error, errs...) }

// Invalid returns a result with the Invalid status, typically built from
// validation errors.
func Invalid(errs ...Error) Result { return WithStatus(status.Invalid, errs...) }

// Unauthorized returns a result with the Unauthorized status.
func Unauthorized(errs ...Error) Result { return WithStatus(status.Unauthorized, errs...) }

// Forbidden returns a result with the Forbidden status.
func Forbidden(errs ...Error) Result { return WithStatus(status.Forbidden, errs...) }

// Conflict returns a result with the Conflict status.
func Conflict(errs ...Error) Result { return WithStatus(status.Conflict, errs...) }

// NotFound returns a result with the NotFound status.
func NotFound(errs ...Error) Result { return WithStatus(status.NotFound, errs...) }

// WithStatus returns a result with an arbitrary status, e.g. a custom 500.
//
// A status outside the accepted range is replaced by status.Error, and Ok
// with errors is downgraded to status.Error, so the returned value always
// satisfies the Result invariants.
func WithStatus(st status.Status, errs ...Error) Result {
	return New(st, WithErrorsOption(errs...))
}

// Empty returns a NotFound result carrying msg at Information severity. It
// describes "nothing to return" rather than a fault. Without msg the
// MessageNotFound text is used.
func Empty(msg ...string) Result {
	m := MessageNotFound
	if len(msg) > 0 && msg[0] != "" {
		m = msg[0]
	}
	return WithStatus(status.NotFound, NewError(m, severity.Information))
}

// Status returns the outcome classification.
func (r Result) Status() status.Status {
	if r.status == 0 {
		return status.Ok
	}
	return r.status
}

// IsSuccess reports whether the status is Ok.
func (r Result) IsSuccess() bool { return r.Status() == status.Ok }

// Errors returns a copy of the error list, in insertion order.
func (r Result) Errors() []Error {
	if len(r.errors) == 0 {
		return nil
	}
	out := make([]Error, len(r.errors))
	copy(out, r.errors)
	return out
}

// FirstError returns the first error, if any.
func (r Result) FirstError() (Error, bool) {
	if len(r.errors) == 0 {
		return Error{}, false
	}
	return r.errors[0], true
}

// MaxSeverity returns the highest severity among the errors and false when
// the list is empty.
func (r Result) MaxSeverity() (severity.Severity, bool) {
	if len(r.errors) == 0 {
		return severity.Information, false
	}
	top := r.errors[0].Severity
	for _, e := range r.errors[1:] {
		if e.Severity > top {
			top = e.Severity
		}
	}
	return top, true
}

// Metadata returns a copy of the metadata map, or nil.
func (r Result) Metadata() map[string]any {
	if len(r.metadata) == 0 {
		return nil
	}
	m := make(map[string]any, len(r.metadata))
	for k, v := range r.metadata {
		m[k] = v
	}
	return m
}

// MetadataValue returns the metadata entry for k.
func (r Result) MetadataValue(k string) (any, bool) {
	v, ok := r.metadata[k]
	return v, ok
}

// WithMetadata returns a copy of r with one extra metadata entry.
//
// The map is always copied, so the receiver and any other copy keep their
// own view.
func (r Result) WithMetadata(k string, v any) Result {
	m := make(map[string]any, len(r.metadata)+1)
	for k0, v0 := range r.metadata {
		m[k0] = v0
	}
	m[k] = v
	r.metadata = m
	return r
}

// WithMetadataMap returns a copy of r with kv merged into the metadata,
// kv winning on key conflicts.
func (r Result) WithMetadataMap(kv map[string]any) Result {
	if len(kv) == 0 {
		return r
	}
	m := make(map[string]any, len(r.metadata)+len(kv))
	for k, v := range r.metadata {
		m[k] = v
	}
	for k, v := range kv {
		m[k] = v
	}
	r.metadata = m
	return r
}

// WithErrors returns a copy of r with errs appended. Appending to an Ok
// result turns it into a status.Error result.
func (r Result) WithErrors(errs ...Error) Result {
	if len(errs) == 0 {
		return r
	}
	list := make([]Error, 0, len(r.errors)+len(errs))
	list = append(list, r.errors...)
	list = append(list, errs...)
	r.errors = list
	return r.seal()
}

// Err returns nil for a successful result and a *Failure otherwise.
func (r Result) Err() error {
	if r.IsSuccess() {
		return nil
	}
	return &Failure{Result: r}
}

// MarshalJSON renders the result as
//
//	{"status":"NotFound","errors":[...],"metadata":{...}}
//
// Empty errors and metadata are omitted.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.view())
}

type resultView struct {
	Status   status.Status  `json:"status"`
	Errors   []Error        `json:"errors,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

func (r Result) view() resultView {
	return resultView{Status: r.Status(), Errors: r.errors, Metadata: r.metadata}
}

// seal restores the invariants after a mutation.
func (r Result) seal() Result {
	if r.status == 0 {
		r.status = status.Ok
	}
	if status.Validate(r.status) != nil {
		r.status = status.Error
	}
	if r.status == status.Ok && len(r.errors) > 0 {
		r.status = status.Error
	}
	if r.status != status.Ok && len(r.errors) == 0 {
		r.errors = []Error{DefaultError(r.status)}
	}
	return r
}
