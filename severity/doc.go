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

// Package severity defines the qualitative importance label attached to a
// dresult error.
//
// A severity is independent of the transport status of a result: a result
// with status NotFound may carry an Information entry, and an Invalid result
// usually mixes Error and Warning entries produced by validation.
//
// Severities are totally ordered, from the least to the most important:
//
//	Information < Debug < Notice < Warning < Error < Critical < Emergency
//
// The canonical textual form is the PascalCase name ("Warning", "Critical").
// Parsing is case-insensitive and also accepts the ordinal digit, so values
// written by older clients ("3") still decode.
package severity
