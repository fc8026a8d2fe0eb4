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
	"errors"
	"strings"

	"dirpx.dev/dresult/severity"
)

// Failure adapts a failed Result to the error interface, for code paths
// that must return an error (gRPC handlers, errgroup workers, ...).
//
// The transport adapters recognise *Failure anywhere in an error chain and
// render the wrapped result instead of a generic internal error.
type Failure struct {
	Result Result
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<status>: <message>[; <message>...]
func (f *Failure) Error() string {
	if f == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(f.Result.Status().String())
	b.WriteString(":")
	for i, e := range f.Result.errors {
		if i > 0 {
			b.WriteString(";")
		}
		b.WriteString(" ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// FromError recovers a Result from err.
//
//   - nil yields Ok();
//   - a *Failure anywhere in the chain yields its Result;
//   - any other error yields Fail with err's text at Error severity.
func FromError(err error) Result {
	if err == nil {
		return Ok()
	}
	var f *Failure
	if errors.As(err, &f) && f != nil {
		return f.Result
	}
	return Fail(NewError(err.Error(), severity.Error))
}
