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

package status

import (
	"bytes"
	"encoding"
	"errors"
	"strconv"
	"strings"
)

// Status is the outcome classification of a result.
//
// The numeric value of every named status equals the HTTP status it maps to
// by default. The zero value is not a valid status; constructors in the
// dresult package always set one explicitly.
type Status int

// Named statuses.
const (
	// Ok indicates a successful operation. It is the only status for which
	// a result is considered a success, and the only one allowed to carry an
	// empty error list.
	Ok Status = 200

	// Error indicates a general failure of the operation.
	// Can be mapped to an HTTP 400.
	Error Status = 400

	// Unauthorized indicates that the caller is not authenticated.
	// Can be mapped to an HTTP 401.
	Unauthorized Status = 401

	// Forbidden indicates that the caller is authenticated but not allowed
	// to perform the operation.
	// Can be mapped to an HTTP 403.
	Forbidden Status = 403

	// NotFound indicates that the requested resource does not exist.
	// Can be mapped to an HTTP 404.
	NotFound Status = 404

	// Conflict indicates that the operation conflicts with the current state
	// of the resource.
	// Can be mapped to an HTTP 409.
	Conflict Status = 409

	// Invalid indicates that the input is well-formed but fails validation.
	// Can be mapped to an HTTP 422.
	Invalid Status = 422
)

// MinCustom and MaxCustom bound the numeric range accepted for custom
// statuses. They mirror the range of valid HTTP status codes.
const (
	MinCustom = 100
	MaxCustom = 599
)

var names = map[Status]string{
	Ok:           "Ok",
	Error:        "Error",
	Unauthorized: "Unauthorized",
	Forbidden:    "Forbidden",
	NotFound:     "NotFound",
	Conflict:     "Conflict",
	Invalid:      "Invalid",
}

var (
	// ErrStatusInvalid is returned when a value cannot be parsed or
	// validated as a status.
	ErrStatusInvalid = errors.New("dresult: invalid status")
)

var (
	_ encoding.TextMarshaler   = (*Status)(nil)
	_ encoding.TextUnmarshaler = (*Status)(nil)
)

// Known returns every named status, success first.
func Known() []Status {
	return []Status{Ok, Error, Unauthorized, Forbidden, NotFound, Conflict, Invalid}
}

// Parse accepts a status name (case-insensitive, "not_found" and
// "not-found" spell NotFound) or a number in [MinCustom, MaxCustom].
func Parse(s string) (Status, error) {
	n := Normalize(s)
	if n == "" {
		return 0, ErrStatusInvalid
	}
	for st, name := range names {
		if strings.ToLower(name) == n {
			return st, nil
		}
	}
	v, err := strconv.Atoi(n)
	if err != nil {
		return 0, ErrStatusInvalid
	}
	st := Status(v)
	if err := Validate(st); err != nil {
		return 0, err
	}
	return st, nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Status {
	st, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return st
}

// Normalize trims, lowercases and removes '_' and '-' separators.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, "-", "")
	return s
}

// Validate checks that st is a named status or a custom status inside
// [MinCustom, MaxCustom].
func Validate(st Status) error {
	if int(st) < MinCustom || int(st) > MaxCustom {
		return ErrStatusInvalid
	}
	return nil
}

// IsKnown reports whether st is one of the named statuses.
func (st Status) IsKnown() bool {
	_, ok := names[st]
	return ok
}

// IsSuccess reports whether st is Ok.
func (st Status) IsSuccess() bool { return st == Ok }

// HTTP returns the numeric value, which is the default HTTP projection.
func (st Status) HTTP() int { return int(st) }

// String returns the status name, or its number for custom statuses.
func (st Status) String() string {
	if name, ok := names[st]; ok {
		return name
	}
	return strconv.Itoa(int(st))
}

// MarshalText implements encoding.TextMarshaler.
func (st Status) MarshalText() ([]byte, error) {
	if err := Validate(st); err != nil {
		return nil, err
	}
	return []byte(st.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (st *Status) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*st = parsed
	return nil
}
