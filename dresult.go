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

// Package dresult provides a discriminated outcome type for API handlers.
//
// A Result carries:
//   - Status: how the operation ended (Ok, Error, Invalid, NotFound, ...);
//   - Errors: an ordered list of severity-tagged messages;
//   - Metadata: an optional, shallow key/value payload.
//
// Of[T] extends Result with a value that is populated only when the status
// is Ok. Expected failures are returned as data, never as panics, and the
// transport adapters (httpx, grpcx) turn them into problem documents or
// gRPC statuses at the edge.
//
// All values are immutable: every WithX helper returns a copy, so results can
// be shared across goroutines without synchronization.
package dresult

import (
	"fmt"

	"dirpx.dev/dresult/severity"
)

// Error is a single message attached to a result, tagged with a severity.
//
// It is a small value type: copy it freely. The JSON form is
//
//	{"message": "...", "severity": "Warning"}
type Error struct {
	// Message is the human-readable description of the problem.
	Message string `json:"message" yaml:"message"`

	// Severity is the importance label of the message. It is independent of
	// the status of the result that carries it.
	Severity severity.Severity `json:"severity" yaml:"severity"`
}

// NewError builds an Error with an explicit severity.
func NewError(msg string, sev severity.Severity) Error {
	return Error{Message: msg, Severity: sev}
}

// Warn builds an Error at Warning severity, the level used when a caller
// does not choose one.
func Warn(msg string) Error {
	return Error{Message: msg, Severity: severity.Warning}
}

// Errorf builds an Error with a formatted message.
func Errorf(sev severity.Severity, format string, args ...any) Error {
	return Error{Message: fmt.Sprintf(format, args...), Severity: sev}
}

// WithSeverity returns a copy of e with another severity.
func (e Error) WithSeverity(sev severity.Severity) Error {
	e.Severity = sev
	return e
}

// String renders the error as "<severity>: <message>".
func (e Error) String() string {
	return e.Severity.String() + ": " + e.Message
}
