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

// ResultDescriptor is a flat, transport-friendly description of a result,
// meant for logs, audit trails and message buses.
//
// It uses strings and ints only, so it can be emitted by code that does not
// import the result implementation.
type ResultDescriptor struct {
	// Status is the canonical status name, e.g. "NotFound" or "500" for a
	// custom status.
	Status string `json:"status"`

	// Route is the normalized route the result was produced for. It MAY be
	// empty.
	Route string `json:"route,omitempty"`

	// HTTPStatus is the resolved HTTP status.
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the resolved gRPC status code as an integer. 0 is OK.
	GRPCCode int `json:"grpc_code"`

	// Severity is the highest error severity, empty for successful results.
	Severity string `json:"severity,omitempty"`

	// Errors lists every error in insertion order.
	Errors []ErrorView `json:"errors,omitempty"`

	// Metadata carries the result metadata.
	Metadata map[string]any `json:"metadata,omitempty"`
}
