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
	"errors"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/grpc/codes"

	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/mapper/internal/segmenttrie"
	"dirpx.dev/dresult/route"
	"dirpx.dev/dresult/status"
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, prefix rules).
//  3. Normalize and validate all route prefixes.
//  4. Build per-status segment tries supporting longest-prefix-match with
//     '*' as a single-segment wildcard.
//  5. Freeze all maps into fresh copies.
//
// Errors report invalid statuses, HTTP codes or prefixes.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}

	httpTrie, err := compile("HTTP", b.httpPrefixes)
	if err != nil {
		return nil, err
	}
	grpcTrie, err := compile("gRPC", b.grpcPrefixes)
	if err != nil {
		return nil, err
	}

	return &mapper{
		httpDefault:  freeze(b.httpDefaults),
		grpcDefault:  freeze(b.grpcDefaults),
		httpOverride: freeze(b.httpOverride),
		grpcOverride: freeze(b.grpcOverride),
		httpTrie:     httpTrie,
		grpcTrie:     grpcTrie,
	}, nil
}

// MustNew is the panic-on-error variant of New, for package-level mappers
// built from constant rules.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

var defaultMapper = sync.OnceValue(func() apis.Mapper { return MustNew() })

// Default returns the shared mapper with library defaults only.
func Default() apis.Mapper { return defaultMapper() }

// mapper combines per-status defaults, exact overrides and route prefix
// tries. Lookups are O(route depth) and safe for concurrent use.
type mapper struct {
	httpDefault map[status.Status]int
	grpcDefault map[status.Status]codes.Code

	httpOverride map[status.Status]int
	grpcOverride map[status.Status]codes.Code

	httpTrie map[status.Status]*segmenttrie.Trie[int]
	grpcTrie map[status.Status]*segmenttrie.Trie[codes.Code]
}

// resolution is the outcome of one lookup, kept for Explain.
type resolution[V any] struct {
	val     V
	source  string // override | prefix | default | fallback
	pattern string
}

func resolve[V any](st status.Status, r route.Route,
	override map[status.Status]V,
	tries map[status.Status]*segmenttrie.Trie[V],
	defaults map[status.Status]V,
	fallback func(status.Status) V,
) resolution[V] {
	if v, ok := override[st]; ok {
		return resolution[V]{val: v, source: "override"}
	}
	if t := tries[st]; t != nil && r != route.Empty {
		if v, ok, pat := t.MatchWithPattern(string(r)); ok {
			return resolution[V]{val: v, source: "prefix", pattern: pat}
		}
	}
	if v, ok := defaults[st]; ok {
		return resolution[V]{val: v, source: "default"}
	}
	return resolution[V]{val: fallback(st), source: "fallback"}
}

func (m *mapper) http(st status.Status, r route.Route) resolution[int] {
	return resolve(st, r, m.httpOverride, m.httpTrie, m.httpDefault, fallbackHTTP)
}

func (m *mapper) grpc(st status.Status, r route.Route) resolution[codes.Code] {
	return resolve(st, r, m.grpcOverride, m.grpcTrie, m.grpcDefault, fallbackGRPC)
}

// HTTPStatus resolves an HTTP status for st produced on route r.
//
// Resolution order (highest to lowest):
//  1. exact per-status override;
//  2. per-status longest-prefix-match rule on the route;
//  3. per-status default (library or user overridden);
//  4. fallback: the numeric status when it is a valid HTTP code, else 500.
func (m *mapper) HTTPStatus(st status.Status, r route.Route) int {
	return m.http(st, r).val
}

// GRPCStatus resolves a gRPC code with the same precedence as HTTPStatus.
// The fallback is codes.Internal for 5xx statuses and codes.Unknown
// otherwise.
func (m *mapper) GRPCStatus(st status.Status, r route.Route) codes.Code {
	return m.grpc(st, r).val
}

// Status resolves both HTTP and gRPC using the same inputs.
func (m *mapper) Status(st status.Status, r route.Route) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(st, r),
		GRPC: m.GRPCStatus(st, r),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a (status, route) pair.
//
// Example output:
//
//	status="Invalid" route="legacy/orders/7"
//	http: source=prefix pattern="legacy" -> 400
//	grpc: source=default -> INVALIDARGUMENT(3)
//
// This is meant for inspection and logging, not for stable machine parsing.
func (m *mapper) Explain(st status.Status, r route.Route) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "status=%q route=%q\n", st.String(), string(r))

	h := m.http(st, r)
	_, _ = fmt.Fprintf(&b, "http: source=%s", h.source)
	if h.pattern != "" {
		_, _ = fmt.Fprintf(&b, " pattern=%q", h.pattern)
	}
	_, _ = fmt.Fprintf(&b, " -> %d\n", h.val)

	g := m.grpc(st, r)
	_, _ = fmt.Fprintf(&b, "grpc: source=%s", g.source)
	if g.pattern != "" {
		_, _ = fmt.Fprintf(&b, " pattern=%q", g.pattern)
	}
	_, _ = fmt.Fprintf(&b, " -> %s(%d)", strings.ToUpper(g.val.String()), int(g.val))

	return b.String()
}
