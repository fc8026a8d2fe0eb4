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

import (
	"google.golang.org/grpc/codes"

	"dirpx.dev/dresult/route"
	"dirpx.dev/dresult/status"
)

// Mapper is an immutable, concurrency-safe view of the mapping rules.
// It resolves a result status (and optionally the route that produced it)
// into transport statuses for HTTP and gRPC.
type Mapper interface {
	// HTTPStatus returns the HTTP status code for st on route r.
	// Without a route-specific rule the status-level rule applies.
	HTTPStatus(st status.Status, r route.Route) int

	// GRPCStatus returns the gRPC status code for st on route r.
	GRPCStatus(st status.Status, r route.Route) codes.Code

	// Status resolves both HTTP and gRPC in a single call, using the same
	// matching logic.
	Status(st status.Status, r route.Route) Status

	// Explain returns a human-readable description of which rule matched.
	Explain(st status.Status, r route.Route) string
}

// Status is a resolved pair of transport statuses for a single result.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}
