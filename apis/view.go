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

package apis

// ErrorView is the wire shape of a single result error.
//
// Severity is the canonical severity name ("Error", "Warning", ...), so the
// view can be decoded without the severity package.
type ErrorView struct {
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// ProblemView is an RFC 7807 problem document with the dresult extensions.
//
// Type, Title, Status, Detail and Instance are the standard members.
// TraceID and Errors are written as the "traceId" and "errors" extension
// members; Extensions carries any other member, e.g. result metadata.
type ProblemView struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title,omitempty"`
	Status   int    `json:"status,omitempty"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`

	TraceID string      `json:"traceId,omitempty"`
	Errors  []ErrorView `json:"errors,omitempty"`

	Extensions map[string]any `json:"-"`
}

// ExtensionMetadata is the extension member that carries result metadata.
const ExtensionMetadata = "metadata"

// Extension returns the extension member named key.
func (p ProblemView) Extension(key string) (any, bool) {
	v, ok := p.Extensions[key]
	return v, ok
}
