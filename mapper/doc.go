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

// Package mapper provides deterministic, immutable mappings from result
// statuses (dirpx.dev/dresult/status) and optional routes
// (dirpx.dev/dresult/route) to transport-level statuses for HTTP and gRPC.
//
// # Overview
//
// A result only says how an operation ended. Transport layers (HTTP
// handlers, gRPC servers) need concrete status codes, and sometimes a
// different one per endpoint: a legacy API may have to answer 400 where
// newer ones answer 422. Package mapper does that in a way that is:
//
//   - immutable: a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable: callers can change library defaults per status;
//   - route-aware: callers can add rules for specific route prefixes;
//   - dual: HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the status;
//  2. per-status longest-prefix-match (LPM) on the route;
//  3. per-status default (library or user-adjusted);
//  4. fallback (the numeric status or 500 / codes.Unknown or codes.Internal).
//
// Prefix rules are segment-aware: routes are '/'-separated, and "*" matches
// exactly one segment:
//
//	WithHTTPPrefix(status.Invalid, "legacy", http.StatusBadRequest)
//	WithHTTPPrefix(status.NotFound, "api/*/archive", http.StatusGone)
//
// The more specific prefix wins.
//
// # Library defaults
//
// HTTP defaults are the identity: every named status is its own HTTP code.
// gRPC defaults follow the canonical codes (Invalid -> InvalidArgument,
// Unauthorized -> Unauthenticated, Conflict -> Aborted, ...).
//
// # Building a mapper
//
//	m, err := mapper.New(
//	    mapper.WithHTTPPrefix(status.Invalid, "legacy", 400),
//	    mapper.WithGRPCOverride(status.Conflict, codes.AlreadyExists),
//	)
//
// Rules may also come from a YAML file through LoadYAML.
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of which tier matched and,
// for prefixes, which pattern was used.
package mapper
