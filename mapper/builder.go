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
	"google.golang.org/grpc/codes"

	"dirpx.dev/dresult/status"
)

type prefixRule[V any] struct {
	// prefix is the raw route prefix (may contain "*"). It is normalized and
	// validated when the per-status trie is built.
	prefix string
	val    V
}

type builder struct {
	// httpDefaults and grpcDefaults start as copies of the library defaults.
	httpDefaults map[status.Status]int
	grpcDefaults map[status.Status]codes.Code

	// exact per-status overrides, checked first.
	httpOverride map[status.Status]int
	grpcOverride map[status.Status]codes.Code

	// per-status route prefix rules, compiled into segment tries.
	httpPrefixes map[status.Status][]prefixRule[int]
	grpcPrefixes map[status.Status][]prefixRule[codes.Code]

	// errs collects option misuse reported by New.
	errs []error
}

// newBuilder creates a builder seeded with the library defaults.
func newBuilder() *builder {
	b := &builder{
		httpDefaults: make(map[status.Status]int, len(defaultHTTP)),
		grpcDefaults: make(map[status.Status]codes.Code, len(defaultGRPC)),
		httpOverride: make(map[status.Status]int),
		grpcOverride: make(map[status.Status]codes.Code),
		httpPrefixes: make(map[status.Status][]prefixRule[int]),
		grpcPrefixes: make(map[status.Status][]prefixRule[codes.Code]),
	}
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = v
	}
	return b
}
