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
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	"dirpx.dev/dresult/httpx"
	"dirpx.dev/dresult/internal/config"
	"dirpx.dev/dresult/route"
	"dirpx.dev/dresult/severity"
	"dirpx.dev/dresult/status"
)

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func problemOf(t *testing.T, rec *httptest.ResponseRecorder) (code int, errs []string) {
	t.Helper()
	require.Equal(t, httpx.ContentTypeProblem, rec.Header().Get("Content-Type"))
	p, err := httpx.ParseProblem(rec.Body.Bytes())
	require.NoError(t, err)
	for _, e := range p.Errors {
		errs = append(errs, e.Severity+": "+e.Message)
	}
	return p.Status, errs
}

const validUserJSON = `{
	"username": "jwick",
	"email": "john.wick@continental",
	"age": 40,
	"profile": {
		"firstName": "John",
		"lastName": "Wick",
		"address": {"street": "Broad St", "city": "New York", "zip": "10004"}
	}
}`

func TestIndex(t *testing.T) {
	h := newServer(httpx.Writer{}).routes()
	rec := do(t, h, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUsers_CreateAndGet(t *testing.T) {
	h := newServer(httpx.Writer{}).routes()

	rec := do(t, h, http.MethodPost, "/users", validUserJSON)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var created User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "1", created.ID)
	assert.Equal(t, "New York", created.Profile.Address.City)

	rec = do(t, h, http.MethodGet, "/users/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, rec.Body.String(), mustJSON(t, created))

	rec = do(t, h, http.MethodGet, "/users/42", "")
	st, errs := problemOf(t, rec)
	assert.Equal(t, http.StatusNotFound, st)
	assert.Equal(t, []string{`Error: User "42" was not found.`}, errs)
}

func TestUsers_CompositeValidation(t *testing.T) {
	h := newServer(httpx.Writer{}).routes()

	body := strings.Replace(validUserJSON, `"city": "New York"`, `"city": ""`, 1)
	rec := do(t, h, http.MethodPost, "/users", body)
	st, errs := problemOf(t, rec)
	assert.Equal(t, http.StatusUnprocessableEntity, st)
	assert.Equal(t, []string{
		"Error: Validation for Profile failed.",
		"Error: The City field is required.",
	}, errs)

	body = strings.Replace(validUserJSON, `"john.wick@continental"`, `"@continental"`, 1)
	rec = do(t, h, http.MethodPost, "/users", body)
	st, errs = problemOf(t, rec)
	assert.Equal(t, http.StatusUnprocessableEntity, st)
	assert.Equal(t, []string{"Warning: The Email field is not a valid e-mail address."}, errs)

	rec = do(t, h, http.MethodPost, "/users", `{"username": "jwick"}`)
	_, errs = problemOf(t, rec)
	assert.Equal(t, []string{"Error: The Profile field is required."}, errs)

	rec = do(t, h, http.MethodPost, "/users", `{"username": 7}`)
	st, _ = problemOf(t, rec)
	assert.Equal(t, http.StatusBadRequest, st)
}

func TestPasswordReset(t *testing.T) {
	h := newServer(httpx.Writer{}).routes()

	rec := do(t, h, http.MethodPost, "/password/reset", `{"password":"s3cret-pw","confirmPassword":"s3cret-pw"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPost, "/password/reset", `{"password":"s3cret-pw","confirmPassword":"other-pw"}`)
	st, errs := problemOf(t, rec)
	assert.Equal(t, http.StatusUnprocessableEntity, st)
	assert.Equal(t, []string{"Error: 'ConfirmPassword' and 'Password' do not match."}, errs)
}

func TestProblemDetailsExt(t *testing.T) {
	h := newServer(httpx.Writer{}).routes()

	rec := do(t, h, http.MethodGet, "/problem-details-ext", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got struct {
		Status int    `json:"status"`
		Title  string `json:"title"`
		Errors []struct {
			Message  string            `json:"message"`
			Severity severity.Severity `json:"severity"`
		} `json:"errors"`
		Metadata map[string]any `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, http.StatusConflict, got.Status)
	assert.Equal(t, "Conflict", got.Title)
	require.Len(t, got.Errors, 2)
	assert.Equal(t, severity.Warning, got.Errors[1].Severity)
	assert.Equal(t, float64(3), got.Metadata["version"])
}

func TestServer_LogsFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	h := newServer(httpx.Writer{Logger: &logger}).routes()

	do(t, h, http.MethodGet, "/users/9", "")
	assert.Contains(t, buf.String(), `"status":"NotFound"`)
	assert.Contains(t, buf.String(), `"route":"users/9"`)
}

func TestLoadMapper(t *testing.T) {
	m, err := loadMapper("")
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, m.HTTPStatus(status.Conflict, route.Empty))

	m, err = loadMapper("../../mapper/testdata/rules.yaml")
	require.NoError(t, err)
	assert.Equal(t, http.StatusPreconditionFailed, m.HTTPStatus(status.Conflict, route.Empty))

	_, err = loadMapper("missing.yaml")
	assert.Error(t, err)
}

func TestGRPCHealth(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	srv := newGRPCServer(nil, nil)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestRun_ConfigError(t *testing.T) {
	t.Chdir(t.TempDir())
	err := run(context.Background(), []string{"--log-level", "loud"}, io.Discard)
	assert.Error(t, err)
}

func TestRun_Help(t *testing.T) {
	t.Chdir(t.TempDir())
	err := run(context.Background(), []string{"-h"}, io.Discard)
	assert.ErrorIs(t, err, config.ErrHelp)
}

func TestRun_Shutdown(t *testing.T) {
	t.Chdir(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := run(ctx, []string{"--http-addr", "127.0.0.1:0", "--grpc-addr", "127.0.0.1:0", "--log-format", "json"}, io.Discard)
	assert.NoError(t, err)
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
