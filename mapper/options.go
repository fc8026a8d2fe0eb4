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
	"fmt"

	"google.golang.org/grpc/codes"

	"dirpx.dev/dresult/status"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets or replaces the default HTTP status for st.
func WithHTTPDefault(st status.Status, http int) Option {
	return func(b *builder) {
		if b.check(st, http) {
			b.httpDefaults[st] = http
		}
	}
}

// WithGRPCDefault sets or replaces the default gRPC code for st.
func WithGRPCDefault(st status.Status, grpc codes.Code) Option {
	return func(b *builder) {
		if b.checkGRPC(st, grpc) {
			b.grpcDefaults[st] = grpc
		}
	}
}

// WithHTTPOverride registers an exact HTTP status for st. Overrides win
// over every route rule and default of that status.
func WithHTTPOverride(st status.Status, http int) Option {
	return func(b *builder) {
		if b.check(st, http) {
			b.httpOverride[st] = http
		}
	}
}

// WithGRPCOverride registers an exact gRPC code for st.
func WithGRPCOverride(st status.Status, grpc codes.Code) Option {
	return func(b *builder) {
		if b.checkGRPC(st, grpc) {
			b.grpcOverride[st] = grpc
		}
	}
}

// WithHTTPPrefix adds an HTTP longest-prefix-match rule for st, evaluated
// against the '/'-separated route. A more specific prefix wins; "*" matches
// exactly one segment.
func WithHTTPPrefix(st status.Status, prefix string, http int) Option {
	return func(b *builder) {
		if b.check(st, http) {
			b.httpPrefixes[st] = append(b.httpPrefixes[st], prefixRule[int]{prefix, http})
		}
	}
}

// WithGRPCPrefix adds a gRPC longest-prefix-match rule for st.
func WithGRPCPrefix(st status.Status, prefix string, grpc codes.Code) Option {
	return func(b *builder) {
		if b.checkGRPC(st, grpc) {
			b.grpcPrefixes[st] = append(b.grpcPrefixes[st], prefixRule[codes.Code]{prefix, grpc})
		}
	}
}

// check records an error for an invalid status or HTTP code.
func (b *builder) check(st status.Status, http int) bool {
	if err := status.Validate(st); err != nil {
		b.errs = append(b.errs, fmt.Errorf("mapper: status %d: %w", int(st), err))
		return false
	}
	if http < 100 || http > 599 {
		b.errs = append(b.errs, fmt.Errorf("mapper: HTTP status %d for %v out of range", http, st))
		return false
	}
	return true
}

// checkGRPC validates st and rejects codes.OK for failure statuses.
func (b *builder) checkGRPC(st status.Status, grpc codes.Code) bool {
	if !b.check(st, 200) {
		return false
	}
	if grpc == codes.OK && st != status.Ok {
		b.errs = append(b.errs, fmt.Errorf("mapper: gRPC code OK for failure status %v", st))
		return false
	}
	return true
}
