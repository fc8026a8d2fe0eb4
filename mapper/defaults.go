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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/dresult/status"
)

// defaultHTTP is the identity projection: every known status already is an
// HTTP status code.
var defaultHTTP = map[status.Status]int{
	status.Ok:           http.StatusOK,
	status.Error:        http.StatusBadRequest,
	status.Unauthorized: http.StatusUnauthorized,
	status.Forbidden:    http.StatusForbidden,
	status.NotFound:     http.StatusNotFound,
	status.Conflict:     http.StatusConflict,
	status.Invalid:      http.StatusUnprocessableEntity,
}

// defaultGRPC aligns the known statuses with canonical gRPC codes.
var defaultGRPC = map[status.Status]codes.Code{
	status.Ok:           codes.OK,
	status.Error:        codes.InvalidArgument, // generic client-side failure
	status.Invalid:      codes.InvalidArgument, // validation errors
	status.Unauthorized: codes.Unauthenticated,
	status.Forbidden:    codes.PermissionDenied,
	status.NotFound:     codes.NotFound,
	status.Conflict:     codes.Aborted, // concurrent update, duplicate submit
}

// fallbackHTTP is used for statuses without any rule. Custom statuses are
// valid HTTP codes by construction, anything else becomes 500.
func fallbackHTTP(st status.Status) int {
	if status.Validate(st) == nil {
		return int(st)
	}
	return http.StatusInternalServerError
}

// fallbackGRPC is used for statuses without any rule.
func fallbackGRPC(st status.Status) codes.Code {
	if st >= 500 && st <= status.MaxCustom {
		return codes.Internal
	}
	return codes.Unknown
}
