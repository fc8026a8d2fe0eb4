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

package validate

import (
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/severity"
)

const (
	entrySep = "|"
	fieldSep = "`"
)

// ErrMalformedEntry is returned by Decode for an entry without a severity
// separator or with an unknown severity.
var ErrMalformedEntry = errors.New("validate: malformed error entry")

// Encode renders errs in the compact composite form
//
//	Error`The City field is required.|Warning`The Email field is not a valid e-mail address.
//
// Backticks and pipes inside messages are stripped so the output always
// decodes.
func Encode(errs []dresult.Error) string {
	var b strings.Builder
	for i, e := range errs {
		if i > 0 {
			b.WriteString(entrySep)
		}
		b.WriteString(e.Severity.String())
		b.WriteString(fieldSep)
		b.WriteString(Sanitize(e.Message))
	}
	return b.String()
}

// Decode parses the output of Encode. An empty string yields no errors.
func Decode(s string) ([]dresult.Error, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, entrySep)
	out := make([]dresult.Error, 0, len(parts))
	for i, p := range parts {
		name, msg, ok := strings.Cut(p, fieldSep)
		if !ok {
			return nil, fmt.Errorf("%w: entry %d %q", ErrMalformedEntry, i, p)
		}
		sev, err := severity.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrMalformedEntry, i, err)
		}
		out = append(out, dresult.NewError(msg, sev))
	}
	return out, nil
}

// Sanitize removes the characters reserved by the composite form.
func Sanitize(msg string) string {
	if !strings.ContainsAny(msg, entrySep+fieldSep) {
		return msg
	}
	return strings.NewReplacer(entrySep, "", fieldSep, "").Replace(msg)
}
