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
	"errors"
	"strings"
)

// Wildcard matches exactly one route segment.
const Wildcard = "*"

// Trie is a segment-aware prefix index for '/'-separated routes.
// Each node represents one segment; Wildcard matches exactly one segment.
// Lookups return the longest (deepest) matching prefix; at equal depth a
// literal segment beats the wildcard.
type Trie[T any] struct {
	children map[string]*Trie[T]
	hasVal   bool
	val      T
	// pattern is the prefix as inserted, kept for Explain.
	pattern string
}

var (
	// ErrInvalidPrefix is returned when inserting a prefix that is empty,
	// has empty segments, contains invalid characters, or consists only of
	// wildcards.
	ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")
)

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert associates val with a canonical route prefix, e.g.
//
//	"api/v1/users"
//	"api/*/orders"
//	"helloworld.greeter"
//
// Re-inserting an existing prefix replaces its value.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil || prefix == "" {
		return ErrInvalidPrefix
	}
	segs := strings.Split(prefix, "/")
	literal := false
	for _, s := range segs {
		if !validSegment(s, true) {
			return ErrInvalidPrefix
		}
		if s != Wildcard {
			literal = true
		}
	}
	if !literal {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		child, ok := cur.children[s]
		if !ok {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = prefix
	return nil
}

// Match returns the value of the longest prefix of route.
func (t *Trie[T]) Match(route string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(route)
	return v, ok
}

// MatchWithPattern is Match plus the pattern of the winning rule.
// An invalid route segment stops the descent on that path.
func (t *Trie[T]) MatchWithPattern(route string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	best, _ := t.lookup(route, 0, 0, nil, -1)
	if best == nil {
		return zero, false, ""
	}
	return best.val, true, best.pattern
}

// lookup walks route from byte offset off and returns the deepest node
// carrying a value, together with its depth. best/bestDepth is the winner so
// far; it is kept on ties.
func (t *Trie[T]) lookup(route string, off, depth int, best *Trie[T], bestDepth int) (*Trie[T], int) {
	if t.hasVal && depth > bestDepth {
		best, bestDepth = t, depth
	}
	if off >= len(route) {
		return best, bestDepth
	}
	end, next := len(route), len(route)
	if i := strings.IndexByte(route[off:], '/'); i >= 0 {
		end = off + i
		next = end + 1
	}
	seg := route[off:end]
	if !validSegment(seg, false) {
		return best, bestDepth
	}

	// literal first, so it wins over the wildcard at equal depth
	for _, key := range [2]string{seg, Wildcard} {
		if child, ok := t.children[key]; ok {
			best, bestDepth = child.lookup(route, next, depth+1, best, bestDepth)
		}
	}
	return best, bestDepth
}

// validSegment reports whether seg is a route segment: it starts with a
// lowercase letter or digit and continues with letters, digits, '.', '_'
// or '-'. With allowWildcard the segment "*" is accepted too.
func validSegment(seg string, allowWildcard bool) bool {
	if seg == "" {
		return false
	}
	if allowWildcard && seg == Wildcard {
		return true
	}
	if !isAlnum(seg[0]) {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if isAlnum(c) || c == '.' || c == '_' || c == '-' {
			continue
		}
		return false
	}
	return true
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}
