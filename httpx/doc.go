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

// Package httpx writes dresult values as HTTP responses.
//
// Successful results become 200 responses carrying the value, if any.
// Failed results become RFC 7807 "application/problem+json" documents whose
// status is resolved through an apis.Mapper, with every result error listed
// in the "errors" extension member:
//
//	{
//	  "type": "about:blank",
//	  "title": "Unprocessable Entity",
//	  "status": 422,
//	  "detail": "The Username field is required.",
//	  "instance": "/users",
//	  "traceId": "4bf92f3577b34da6a3ce929d0e0e4736",
//	  "errors": [{"message": "The Username field is required.", "severity": "Error"}]
//	}
package httpx
