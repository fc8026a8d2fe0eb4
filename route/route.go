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

package route

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Route is the canonical, validated representation of a request location.
//
// Routes are '/'-separated, lowercase, and carry neither a leading nor a
// trailing slash. Query strings and fragments are never part of a route.
type Route string

// MinLength and MaxLength define the allowed length range for a non-empty
// route.
const (
	MinLength = 1
	MaxLength = 256
)

const (
	// routeFmt accepts one or more segments separated by '/'. Each segment
	// starts with a lowercase letter or digit and continues with letters,
	// digits, '.', '_' or '-'. Dots are allowed inside a segment so that gRPC
	// service names ("pkg.Service") stay a single segment.
	routeFmt = `^[a-z0-9][a-z0-9._-]*(/[a-z0-9][a-z0-9._-]*)*$`
)

var routeRe = regexp.MustCompile(routeFmt)

var (
	// ErrRouteInvalidFormat is returned when a route does not conform to the
	// expected format.
	ErrRouteInvalidFormat = errors.New("dresult: invalid route format")
	// ErrRouteInvalidLength is returned when a route is too long.
	ErrRouteInvalidLength = errors.New("dresult: invalid route length")
)

var (
	_ encoding.TextMarshaler   = (*Route)(nil)
	_ encoding.TextUnmarshaler = (*Route)(nil)
)

// Empty is the zero-value route, meaning "no route known".
var Empty Route = ""

// Normalize brings an arbitrary path closer to the canonical form:
//
//   - trims spaces;
//   - drops the query string and the fragment;
//   - lowercases;
//   - collapses repeated slashes and trims leading/trailing ones.
//
// It does NOT guarantee validity.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	segs := strings.Split(s, "/")
	out := segs[:0]
	for _, seg := range segs {
		if seg != "" {
			out = append(out, seg)
		}
	}
	return strings.Join(out, "/")
}

// Parse normalizes and validates s. The empty string yields Empty without
// error.
func Parse(s string) (Route, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Route(s), nil
}

// MustParse is the panic-on-error variant of Parse. Unlike Parse it rejects
// the empty route.
func MustParse(s string) Route {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if r == Empty {
		panic("dresult: empty route in MustParse")
	}
	return r
}

// FromMethod converts a gRPC full method name ("/pkg.Service/Method") into a
// route ("pkg.service/method"). Invalid names yield Empty.
func FromMethod(fullMethod string) Route {
	r, err := Parse(fullMethod)
	if err != nil {
		return Empty
	}
	return r
}

// Validate checks whether r is in canonical form. Empty is valid.
func Validate(r Route) error {
	if r == Empty {
		return nil
	}
	return validate(string(r))
}

// Segments splits the route on '/'. Empty yields nil.
func (r Route) Segments() []string {
	if r == Empty {
		return nil
	}
	return strings.Split(string(r), "/")
}

// String returns the canonical string representation of the route.
func (r Route) String() string {
	return string(r)
}

// MarshalText implements encoding.TextMarshaler.
func (r Route) MarshalText() ([]byte, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	return []byte(r), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Route) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrRouteInvalidLength
	}
	if !routeRe.MatchString(s) {
		return ErrRouteInvalidFormat
	}
	return nil
}
