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

// Package route defines the normalized request location that transport
// mappers use to refine the status projection of a result.
//
// Where a status answers "how did the operation end?", a route answers
// "which endpoint produced it?", e.g.:
//
//   - "api/v1/users"
//   - "legacy/orders/42"
//   - "helloworld.greeter/sayhello" (gRPC full method)
//
// Route is optional: the zero value ("") means that no route is known, and
// only per-status defaults apply.
package route
