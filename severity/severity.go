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

package severity

import (
	"bytes"
	"encoding"
	"errors"
	"strconv"
	"strings"
)

// Severity is the importance label of a single error entry.
//
// It is an ordered integer type so that callers can compare levels
// (see AtLeast). The zero value is Information.
type Severity uint8

const (
	// Information marks messages that do not indicate an issue.
	Information Severity = iota

	// Debug marks detailed messages useful while troubleshooting.
	Debug

	// Notice marks noteworthy events that do not need immediate attention.
	Notice

	// Warning marks a potential problem that does not prevent the operation
	// from being understood. Optional validation rules report at this level.
	Warning

	// Error marks an issue that prevents normal processing. Required
	// validation rules and the default failure messages report at this level.
	Error

	// Critical marks a severe problem that requires immediate attention.
	Critical

	// Emergency is reserved for the most severe issues, typically ones that
	// may result in a system failure.
	Emergency
)

// names holds the canonical spelling, indexed by ordinal.
var names = [...]string{
	Information: "Information",
	Debug:       "Debug",
	Notice:      "Notice",
	Warning:     "Warning",
	Error:       "Error",
	Critical:    "Critical",
	Emergency:   "Emergency",
}

var (
	// ErrSeverityInvalid is returned when a value cannot be parsed or
	// validated as a severity.
	ErrSeverityInvalid = errors.New("dresult: invalid severity")
)

// Ensure Severity implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it renders by name inside JSON and YAML documents.
var (
	_ encoding.TextMarshaler   = (*Severity)(nil)
	_ encoding.TextUnmarshaler = (*Severity)(nil)
)

// All returns every known severity in ascending order.
func All() []Severity {
	return []Severity{Information, Debug, Notice, Warning, Error, Critical, Emergency}
}

// Parse takes a user-provided string, normalizes it and returns the matching
// severity. Both names ("critical", " Warning ") and ordinals ("3") are
// accepted.
func Parse(s string) (Severity, error) {
	s = Normalize(s)
	if s == "" {
		return Information, ErrSeverityInvalid
	}
	for i, n := range names {
		if strings.ToLower(n) == s {
			return Severity(i), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n < len(names) {
		return Severity(n), nil
	}
	return Information, ErrSeverityInvalid
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Severity {
	sev, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return sev
}

// Normalize trims surrounding spaces and lowercases the value. It does not
// guarantee that the result names a severity.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Validate checks whether the provided Severity is one of the known levels.
func Validate(s Severity) error {
	if !s.IsValid() {
		return ErrSeverityInvalid
	}
	return nil
}

// IsValid reports whether s is one of the known levels.
func (s Severity) IsValid() bool {
	return int(s) < len(names)
}

// AtLeast reports whether s is as important as other or more.
func (s Severity) AtLeast(other Severity) bool {
	return s >= other
}

// String returns the canonical name, or "Severity(n)" for unknown values.
func (s Severity) String() string {
	if !s.IsValid() {
		return "Severity(" + strconv.Itoa(int(s)) + ")"
	}
	return names[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}
	return []byte(names[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
