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
	"dirpx.dev/dresult/severity"
	"dirpx.dev/dresult/status"
)

// Default messages substituted when a failure is built without errors.
const (
	MessageUnauthorized = "Your request has been denied."
	MessageForbidden    = "You don't have permission to access this resource."
	MessageConflict     = "Your request cannot be processed."
	MessageNotFound     = "Resource not found."
	MessageInvalid      = "The request is invalid."
	MessageFailure      = "The request could not be completed."
)

// DefaultError returns the Error-severity entry used for st when the caller
// supplies none.
func DefaultError(st status.Status) Error {
	msg := MessageFailure
	switch st {
	case status.Unauthorized:
		msg = MessageUnauthorized
	case status.Forbidden:
		msg = MessageForbidden
	case status.Conflict:
		msg = MessageConflict
	case status.NotFound:
		msg = MessageNotFound
	case status.Invalid:
		msg = MessageInvalid
	}
	return Error{Message: msg, Severity: severity.Error}
}
