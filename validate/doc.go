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

// Package validate turns explicit per-type rule tables into dresult errors.
//
// A type opts in by implementing Validatable and listing its fields:
//
//	func (u User) ValidationFields() []validate.Field {
//	    return []validate.Field{
//	        validate.Required("Username", u.Username),
//	        validate.Optional("Email", u.Email, validate.Email()),
//	        validate.Required("Profile", u.Profile).Nested(u.Profile),
//	    }
//	}
//
// Required fields report at severity.Error, fields that only carry rules
// report at severity.Warning. Only the first failing rule of a field is
// reported. Nested objects are validated recursively and their errors keep
// the severity they were raised with.
//
// Result and ResultOf bridge a validation outcome to dresult.Result with the
// Invalid status.
package validate
