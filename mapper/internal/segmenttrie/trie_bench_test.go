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

package segmenttrie

import (
	"math/rand"
	"strings"
	"testing"
)

const segChars = "abcdefghijklmnopqrstuvwxyz0123456789-_."

// genSegment returns a valid route segment of n in [min, max] bytes.
func genSegment(rng *rand.Rand, min, max int) string {
	n := min + rng.Intn(max-min+1)
	var b strings.Builder
	b.WriteByte(byte('a' + rng.Intn(26)))
	for i := 1; i < n; i++ {
		b.WriteByte(segChars[rng.Intn(len(segChars))])
	}
	return b.String()
}

// makePrefix builds a route prefix of depth segments, with a wildcard every
// k segments when k > 0.
func makePrefix(rng *rand.Rand, depth, k int) string {
	segs := make([]string, depth)
	for i := range segs {
		if k > 0 && (i+1)%k == 0 {
			segs[i] = Wildcard
			continue
		}
		segs[i] = genSegment(rng, 3, 8)
	}
	return strings.Join(segs, "/")
}

// buildTrie inserts n prefixes and returns routes that extend each of them
// by two segments.
func buildTrie(b *testing.B, n, depth, k int) (*Trie[int], []string) {
	rng := rand.New(rand.NewSource(1))
	tr := New[int]()
	routes := make([]string, 0, n)
	for i := 0; i < n; i++ {
		p := makePrefix(rng, depth, k)
		if err := tr.Insert(p, 100+i); err != nil {
			b.Fatalf("insert %q: %v", p, err)
		}
		parts := strings.Split(p, "/")
		for j := range parts {
			if parts[j] == Wildcard {
				parts[j] = genSegment(rng, 3, 8)
			}
		}
		routes = append(routes, strings.Join(parts, "/")+"/"+genSegment(rng, 3, 8)+"/"+genSegment(rng, 3, 8))
	}
	return tr, routes
}

func BenchmarkTrieInsert_N128_Depth4(b *testing.B)  { benchInsert(b, 128, 4, 0) }
func BenchmarkTrieInsert_N1024_Depth4(b *testing.B) { benchInsert(b, 1024, 4, 0) }

func BenchmarkTrieInsert_N1024_Depth4_WildcardEvery3(b *testing.B) { benchInsert(b, 1024, 4, 3) }

func benchInsert(b *testing.B, n, depth, k int) {
	rng := rand.New(rand.NewSource(7))
	prefixes := make([]string, n)
	for i := range prefixes {
		prefixes[i] = makePrefix(rng, depth, k)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr := New[int]()
		for j, p := range prefixes {
			if err := tr.Insert(p, j); err != nil {
				b.Fatalf("insert: %v", err)
			}
		}
	}
}

func BenchmarkTrieMatch_N16_Depth4(b *testing.B)   { benchMatch(b, 16, 4, 0) }
func BenchmarkTrieMatch_N1024_Depth4(b *testing.B) { benchMatch(b, 1024, 4, 0) }
func BenchmarkTrieMatch_N1024_Depth8(b *testing.B) { benchMatch(b, 1024, 8, 0) }

func BenchmarkTrieMatch_N1024_Depth4_WildcardEvery3(b *testing.B) { benchMatch(b, 1024, 4, 3) }

func benchMatch(b *testing.B, n, depth, k int) {
	tr, routes := buildTrie(b, n, depth, k)

	// misses
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < n/8+1; i++ {
		routes = append(routes, makePrefix(rng, depth, 0)+"/"+genSegment(rng, 3, 8))
	}

	b.ReportAllocs()
	b.ResetTimer()
	var sum int
	for i := 0; i < b.N; i++ {
		if v, ok := tr.Match(routes[i%len(routes)]); ok {
			sum += v
		}
	}
	if sum == 42 {
		b.Log("keep")
	}
}

func BenchmarkTrieMatchParallel_N1024_Depth4(b *testing.B) {
	tr, routes := buildTrie(b, 1024, 4, 0)
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		rng := rand.New(rand.NewSource(rand.Int63()))
		for pb.Next() {
			_, _ = tr.Match(routes[rng.Intn(len(routes))])
		}
	})
}
