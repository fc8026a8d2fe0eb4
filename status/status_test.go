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
	"net/http"
	"testing"
)

func TestNumericValuesMatchHTTP(t *testing.T) {
	tests := []struct {
		st   Status
		want int
	}{
		{Ok, http.StatusOK},
		{Error, http.StatusBadRequest},
		{Unauthorized, http.StatusUnauthorized},
		{Forbidden, http.StatusForbidden},
		{NotFound, http.StatusNotFound},
		{Conflict, http.StatusConflict},
		{Invalid, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		if tt.st.HTTP() != tt.want {
			t.Fatalf("%v.HTTP() = %d, want %d", tt.st, tt.st.HTTP(), tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"Ok", Ok},
		{"notfound", NotFound},
		{"not_found", NotFound},
		{" NOT-FOUND ", NotFound},
		{"invalid", Invalid},
		{"500", Status(500)},
		{"404", NotFound},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "teapot", "99", "600", "4o4"} {
		t.Run(in, func(t *testing.T) {
			if got, err := Parse(in); err == nil {
				t.Fatalf("Parse(%q) = %v, want error", in, got)
			}
		})
	}
}

func TestString_CustomStatus(t *testing.T) {
	if Status(500).String() != "500" {
		t.Fatalf("custom String() = %q", Status(500).String())
	}
	if Status(500).IsKnown() {
		t.Fatal("500 must not be a named status")
	}
	if !Conflict.IsKnown() || Conflict.String() != "Conflict" {
		t.Fatal("Conflict must be named")
	}
}

func TestIsSuccess(t *testing.T) {
	for _, st := range Known() {
		if st.IsSuccess() != (st == Ok) {
			t.Fatalf("%v.IsSuccess() = %v", st, st.IsSuccess())
		}
	}
}

func TestText_RoundTrip(t *testing.T) {
	for _, st := range append(Known(), Status(503)) {
		b, err := st.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", st, err)
		}
		var back Status
		if err := back.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", b, err)
		}
		if back != st {
			t.Fatalf("round trip %v -> %q -> %v", st, b, back)
		}
	}
	if _, err := Status(0).MarshalText(); err == nil {
		t.Fatal("zero status must not marshal")
	}
}
