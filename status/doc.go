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

// Package status defines the outcome classification of a dresult.Result.
//
// A status answers "how did the operation end?": Ok, a generic Error, an
// Invalid request, Unauthorized, Forbidden, NotFound or Conflict. Every
// status value is numerically aligned with the HTTP status code it is
// usually exposed as, so the default transport projection is the identity.
//
// Callers MAY use custom numeric statuses in the HTTP range [100, 599] for
// outcomes the named set does not cover (for example 500 for an unexpected
// server failure). Such statuses render as their number.
package status
