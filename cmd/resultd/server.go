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

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/httpx"
	"dirpx.dev/dresult/severity"
	"dirpx.dev/dresult/validate"
)

// server holds the in-memory state of the sample API.
type server struct {
	w httpx.Writer

	mu     sync.RWMutex
	nextID int
	users  map[string]User
}

func newServer(w httpx.Writer) *server {
	return &server{w: w, users: make(map[string]User)}
}

// routes registers every sample endpoint.
func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /{$}", httpx.Handle(s.w, s.index))
	mux.Handle("POST /users", httpx.HandleOf(s.w, s.createUser))
	mux.Handle("GET /users/{id}", httpx.HandleOf(s.w, s.getUser))
	mux.Handle("POST /password/reset", httpx.Handle(s.w, s.resetPassword))
	mux.Handle("GET /problem-details-ext", httpx.HandleOf(s.w, s.problemDetailsExt))
	return mux
}

func (s *server) index(*http.Request) dresult.Result {
	return dresult.Ok()
}

func (s *server) createUser(r *http.Request) dresult.Of[User] {
	var u User
	if res := decode(r, &u); !res.IsSuccess() {
		return dresult.Cast[User](res)
	}
	res := validate.ResultOf(u)
	if !res.IsSuccess() {
		return res
	}

	s.mu.Lock()
	s.nextID++
	u.ID = strconv.Itoa(s.nextID)
	s.users[u.ID] = u
	s.mu.Unlock()

	return dresult.OkOf(u).WithMetadata("id", u.ID)
}

func (s *server) getUser(r *http.Request) dresult.Of[User] {
	id := r.PathValue("id")
	s.mu.RLock()
	u, ok := s.users[id]
	s.mu.RUnlock()
	if !ok {
		return dresult.Cast[User](dresult.NotFound(
			dresult.NewError(fmt.Sprintf("User %q was not found.", id), severity.Error),
		).WithMetadata("id", id))
	}
	return dresult.OkOf(u)
}

func (s *server) resetPassword(r *http.Request) dresult.Result {
	var body ResetPassword
	if res := decode(r, &body); !res.IsSuccess() {
		return res
	}
	return validate.Result(body)
}

// extView is the payload of GET /problem-details-ext: a sample problem
// document parsed back by a client.
type extView struct {
	Status   int             `json:"status"`
	Title    string          `json:"title"`
	Errors   []dresult.Error `json:"errors"`
	Metadata any             `json:"metadata,omitempty"`
}

func (s *server) problemDetailsExt(r *http.Request) dresult.Of[extView] {
	sample := dresult.Conflict(
		dresult.NewError("The order was modified by another request.", severity.Error),
		dresult.Warn("Reload the order and retry."),
	).WithMetadata("version", 3)

	rec := httptest.NewRecorder()
	s.w.Write(rec, r, sample, httpx.Meta{})

	p, err := httpx.ParseProblem(rec.Body.Bytes())
	if err != nil {
		return dresult.Cast[extView](dresult.WithStatus(http.StatusInternalServerError,
			dresult.Errorf(severity.Critical, "problem document: %v", err)))
	}
	md, _ := p.Extension(apis.ExtensionMetadata)
	return dresult.OkOf(extView{
		Status:   p.Status,
		Title:    p.Title,
		Errors:   httpx.ErrorsOf(p),
		Metadata: md,
	})
}

// decode reads a JSON body into v. Malformed input is the client's fault.
func decode(r *http.Request, v any) dresult.Result {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return dresult.Fail(dresult.NewError("The request body is not valid JSON: "+err.Error(), severity.Error))
	}
	return dresult.Ok()
}
