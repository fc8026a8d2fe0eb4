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
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"

	"dirpx.dev/dresult/route"
	"dirpx.dev/dresult/status"
)

var update = flag.Bool("update", false, "update golden files")

// TestExplain_Golden verifies Explain() output is stable and human-friendly.
// Update golden with: go test ./mapper -run Explain_Golden -update
func TestExplain_Golden(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(status.Invalid, "legacy", 400),
		WithGRPCPrefix(status.NotFound, "api/*/archive", codes.FailedPrecondition),
		WithHTTPOverride(status.Conflict, 412),
		WithGRPCOverride(status.Conflict, codes.AlreadyExists),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cases := []struct {
		st status.Status
		r  route.Route
	}{
		{status.Invalid, route.MustParse("legacy/orders/7")},
		{status.NotFound, route.MustParse("api/v1/archive/3")},
		{status.Conflict, route.Empty},
		{status.Status(503), route.Empty},
	}

	var b strings.Builder
	for i, c := range cases {
		if i > 0 {
			b.WriteString("\n---\n")
		}
		b.WriteString(m.Explain(c.st, c.r))
	}
	b.WriteString("\n")
	got := b.String()

	goldenPath := filepath.Join("testdata", "explain.golden")
	if *update {
		if err := os.MkdirAll(filepath.Dir(goldenPath), 0o755); err != nil {
			t.Fatalf("mkdir testdata: %v", err)
		}
		if err := os.WriteFile(goldenPath, []byte(got), 0o644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
		t.Logf("updated %s", goldenPath)
		return
	}

	wantBytes, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v (run with -update to create)", err)
	}

	normalize := func(s string) string { return strings.TrimRight(s, "\r\n") }
	if normalize(string(wantBytes)) != normalize(got) {
		t.Fatalf("Explain() output mismatch.\n--- want ---\n%s\n--- got ---\n%s", wantBytes, got)
	}
}
