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
	"fmt"
	"strings"

	"dirpx.dev/dresult/mapper/internal/segmenttrie"
	"dirpx.dev/dresult/route"
	"dirpx.dev/dresult/status"
)

// freeze makes an immutable copy of a builder map, so later mutations of the
// builder cannot affect the mapper.
func freeze[K comparable, V any](src map[K]V) map[K]V {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[K]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// compile builds one trie per status from the raw prefix rules.
func compile[V any](kind string, rules map[status.Status][]prefixRule[V]) (map[status.Status]*segmenttrie.Trie[V], error) {
	if len(rules) == 0 {
		return nil, nil
	}
	out := make(map[status.Status]*segmenttrie.Trie[V], len(rules))
	for st, list := range rules {
		t := segmenttrie.New[V]()
		for _, r := range list {
			p, err := normalizePrefix(r.prefix)
			if err != nil {
				return nil, fmt.Errorf("mapper: invalid %s route prefix %q for status %v: %w", kind, r.prefix, st, err)
			}
			if err := t.Insert(p, r.val); err != nil {
				return nil, fmt.Errorf("mapper: cannot insert %s prefix %q for status %v: %w", kind, p, st, err)
			}
		}
		out[st] = t
	}
	return out, nil
}

// normalizePrefix brings a prefix to canonical route form. Wildcard segments
// are checked by replacing them with a placeholder before route validation.
func normalizePrefix(raw string) (string, error) {
	p := route.Normalize(raw)
	if p == "" {
		return "", fmt.Errorf("empty prefix")
	}
	segs := strings.Split(p, "/")
	probe := make([]string, len(segs))
	literal := false
	for i, s := range segs {
		if s == segmenttrie.Wildcard {
			probe[i] = "x"
			continue
		}
		probe[i] = s
		literal = true
	}
	if !literal {
		return "", fmt.Errorf("prefix cannot consist of '*' only")
	}
	if err := route.Validate(route.Route(strings.Join(probe, "/"))); err != nil {
		return "", err
	}
	return p, nil
}
