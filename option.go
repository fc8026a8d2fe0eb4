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

package dresult

// Option is a functional option for constructing a Result.
// It always takes a Result and returns a (possibly new) Result.
type Option func(Result) Result

// WithErrorsOption appends errs on construction.
// Intended to be used with New(...).
func WithErrorsOption(errs ...Error) Option {
	return func(r Result) Result {
		if len(errs) == 0 {
			return r
		}
		list := make([]Error, 0, len(r.errors)+len(errs))
		list = append(list, r.errors...)
		r.errors = append(list, errs...)
		return r
	}
}

// WithMetadataOption adds a single metadata entry on construction.
// Intended to be used with New(...).
func WithMetadataOption(k string, v any) Option {
	return func(r Result) Result {
		return r.WithMetadata(k, v)
	}
}

// WithMetadataMapOption merges several metadata entries on construction.
// Intended to be used with New(...).
func WithMetadataMapOption(kv map[string]any) Option {
	return func(r Result) Result {
		return r.WithMetadataMap(kv)
	}
}
