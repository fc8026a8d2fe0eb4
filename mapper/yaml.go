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
	"io"
	"strconv"
	"strings"

	"google.golang.org/grpc/codes"
	"gopkg.in/yaml.v3"

	"dirpx.dev/dresult/status"
)

// ruleFile is the on-disk shape of a mapping rule file:
//
//	http:
//	  defaults:  {Conflict: 409}
//	  overrides: {Error: 500}
//	  prefixes:
//	    - {status: Invalid, prefix: legacy, code: "400"}
//	grpc:
//	  overrides: {Conflict: ALREADY_EXISTS}
//	  prefixes:
//	    - {status: NotFound, prefix: "api/*/archive", code: FAILED_PRECONDITION}
//
// Status keys accept every spelling status.Parse accepts. gRPC codes are
// canonical upper-case names or numbers.
type ruleFile struct {
	HTTP ruleSet `yaml:"http"`
	GRPC ruleSet `yaml:"grpc"`
}

type ruleSet struct {
	Defaults  map[string]string `yaml:"defaults"`
	Overrides map[string]string `yaml:"overrides"`
	Prefixes  []prefixEntry     `yaml:"prefixes"`
}

type prefixEntry struct {
	Status string `yaml:"status"`
	Prefix string `yaml:"prefix"`
	Code   string `yaml:"code"`
}

// LoadYAML reads a rule file and returns the equivalent options, to be
// passed to New (possibly together with programmatic ones).
func LoadYAML(r io.Reader) ([]Option, error) {
	var f ruleFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("mapper: decode rules: %w", err)
	}

	var opts []Option
	add := func(section, key, val string, mk func(status.Status, string) (Option, error)) error {
		st, err := status.Parse(key)
		if err != nil {
			return fmt.Errorf("mapper: %s: status %q: %w", section, key, err)
		}
		opt, err := mk(st, val)
		if err != nil {
			return fmt.Errorf("mapper: %s: %v: %w", section, st, err)
		}
		opts = append(opts, opt)
		return nil
	}

	httpOpt := func(with func(status.Status, int) Option) func(status.Status, string) (Option, error) {
		return func(st status.Status, v string) (Option, error) {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return nil, fmt.Errorf("HTTP status %q: %w", v, err)
			}
			return with(st, n), nil
		}
	}
	grpcOpt := func(with func(status.Status, codes.Code) Option) func(status.Status, string) (Option, error) {
		return func(st status.Status, v string) (Option, error) {
			c, err := parseCode(v)
			if err != nil {
				return nil, err
			}
			return with(st, c), nil
		}
	}

	for k, v := range f.HTTP.Defaults {
		if err := add("http.defaults", k, v, httpOpt(WithHTTPDefault)); err != nil {
			return nil, err
		}
	}
	for k, v := range f.HTTP.Overrides {
		if err := add("http.overrides", k, v, httpOpt(WithHTTPOverride)); err != nil {
			return nil, err
		}
	}
	for _, p := range f.HTTP.Prefixes {
		prefix := p.Prefix
		if err := add("http.prefixes", p.Status, p.Code, httpOpt(func(st status.Status, n int) Option {
			return WithHTTPPrefix(st, prefix, n)
		})); err != nil {
			return nil, err
		}
	}
	for k, v := range f.GRPC.Defaults {
		if err := add("grpc.defaults", k, v, grpcOpt(WithGRPCDefault)); err != nil {
			return nil, err
		}
	}
	for k, v := range f.GRPC.Overrides {
		if err := add("grpc.overrides", k, v, grpcOpt(WithGRPCOverride)); err != nil {
			return nil, err
		}
	}
	for _, p := range f.GRPC.Prefixes {
		prefix := p.Prefix
		if err := add("grpc.prefixes", p.Status, p.Code, grpcOpt(func(st status.Status, c codes.Code) Option {
			return WithGRPCPrefix(st, prefix, c)
		})); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

// parseCode accepts "NOT_FOUND", "not_found" or "5".
func parseCode(v string) (codes.Code, error) {
	v = strings.TrimSpace(v)
	if n, err := strconv.ParseUint(v, 10, 32); err == nil {
		if n > uint64(codes.Unauthenticated) {
			return 0, fmt.Errorf("gRPC code %d out of range", n)
		}
		return codes.Code(n), nil
	}
	var c codes.Code
	if err := c.UnmarshalJSON([]byte(strconv.Quote(strings.ToUpper(v)))); err != nil {
		return 0, fmt.Errorf("gRPC code %q: %w", v, err)
	}
	return c, nil
}
