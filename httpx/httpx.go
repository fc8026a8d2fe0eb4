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

package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/adapter"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/logx"
	"dirpx.dev/dresult/route"
	"dirpx.dev/dresult/severity"
)

// Content types written by Writer.
const (
	ContentTypeJSON    = "application/json"
	ContentTypeProblem = "application/problem+json"
)

// Meta carries request-scoped data added on top of the result. Empty
// fields are filled from the request: Instance from the URL path, TraceID
// from the W3C traceparent header, Route from the normalized path.
type Meta = adapter.Meta

// Writer is a thin adapter that turns results into HTTP responses using the
// provided status mapper. The zero value is usable: it maps with the library
// defaults and does not log.
type Writer struct {
	// Mapper resolves the HTTP status of failures. Nil means mapper.Default().
	Mapper apis.Mapper

	// Logger, when set, receives every failed result (see logx.Result).
	Logger *zerolog.Logger

	// TypeURI returns the problem "type" for an HTTP status. Nil or an empty
	// return value means "about:blank".
	TypeURI func(status int) string
}

// Write writes res. A successful result yields 200 with an empty body; a
// failure yields a problem document.
func (w Writer) Write(rw http.ResponseWriter, r *http.Request, res dresult.Result, meta Meta) {
	if res.IsSuccess() {
		rw.WriteHeader(http.StatusOK)
		return
	}
	w.problem(rw, r, res, meta)
}

// WriteOf writes a typed result: the value as JSON on success (protojson for
// proto messages), a problem document otherwise.
func WriteOf[T any](w Writer, rw http.ResponseWriter, r *http.Request, res dresult.Of[T], meta Meta) {
	if !res.IsSuccess() {
		w.problem(rw, r, res.Result, meta)
		return
	}
	b, err := marshalValue(res.Value())
	if err != nil {
		fail := dresult.Errorf(severity.Critical, "response encoding failed: %v", err)
		w.problem(rw, r, dresult.WithStatus(http.StatusInternalServerError, fail), meta)
		return
	}
	rw.Header().Set("Content-Type", ContentTypeJSON)
	rw.WriteHeader(http.StatusOK)
	_, _ = rw.Write(b)
}

// Handle adapts a result-returning function to http.HandlerFunc.
func Handle(w Writer, fn func(*http.Request) dresult.Result) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		w.Write(rw, r, fn(r), Meta{})
	}
}

// HandleOf adapts a typed result-returning function to http.HandlerFunc.
func HandleOf[T any](w Writer, fn func(*http.Request) dresult.Of[T]) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		WriteOf(w, rw, r, fn(r), Meta{})
	}
}

func (w Writer) problem(rw http.ResponseWriter, r *http.Request, res dresult.Result, meta Meta) {
	meta = fill(r, meta)
	st := adapter.Resolve(w.Mapper, res, meta.Route)
	if meta.Type == "" && w.TypeURI != nil {
		meta.Type = w.TypeURI(st.HTTP)
	}
	view := adapter.ToProblem(res, st, meta)

	if w.Logger != nil {
		logx.Event(w.Logger, res).
			Int("http_status", st.HTTP).
			Str("route", meta.Route.String()).
			Str("trace_id", meta.TraceID).
			Msg(view.Detail)
	}

	body, err := marshalProblem(view)
	if err != nil {
		// metadata that structpb cannot carry is dropped, the rest is kept
		view.Extensions = nil
		body, _ = marshalProblem(view)
	}

	rw.Header().Set("Content-Type", ContentTypeProblem)
	rw.WriteHeader(st.HTTP)
	_, _ = rw.Write(body)
}

// fill completes meta from the request.
func fill(r *http.Request, meta Meta) Meta {
	if r == nil {
		return meta
	}
	if meta.Instance == "" && r.URL != nil {
		meta.Instance = r.URL.Path
	}
	if meta.TraceID == "" {
		meta.TraceID = TraceID(r.Header.Get("traceparent"))
	}
	if meta.Route == route.Empty && r.URL != nil {
		meta.Route, _ = route.Parse(r.URL.Path)
	}
	return meta
}

// TraceID extracts the trace-id of a W3C traceparent header
// ("00-<32 hex>-<16 hex>-<2 hex>"). It returns "" for malformed values and
// for the all-zero id.
func TraceID(traceparent string) string {
	parts := strings.Split(strings.TrimSpace(traceparent), "-")
	if len(parts) < 4 || len(parts[0]) != 2 || len(parts[1]) != 32 {
		return ""
	}
	id := strings.ToLower(parts[1])
	if strings.Trim(id, "0") == "" {
		return ""
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return ""
		}
	}
	return id
}

func marshalValue(v any) ([]byte, error) {
	if m, ok := v.(proto.Message); ok {
		return protojson.Marshal(m)
	}
	return json.Marshal(v)
}

// marshalProblem renders view as a structpb.Struct through protojson.
func marshalProblem(view apis.ProblemView) ([]byte, error) {
	fields := map[string]any{
		"type":   view.Type,
		"title":  view.Title,
		"status": view.Status,
	}
	if view.Detail != "" {
		fields["detail"] = view.Detail
	}
	if view.Instance != "" {
		fields["instance"] = view.Instance
	}
	if view.TraceID != "" {
		fields["traceId"] = view.TraceID
	}
	errs := make([]any, len(view.Errors))
	for i, e := range view.Errors {
		errs[i] = map[string]any{"message": e.Message, "severity": e.Severity}
	}
	fields["errors"] = errs
	for k, v := range view.Extensions {
		if _, taken := fields[k]; !taken {
			fields[k] = v
		}
	}

	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("httpx: problem document: %w", err)
	}
	return protojson.Marshal(s)
}

// ParseProblem reads a problem document, including the "errors" and
// "traceId" extensions, back into a view. Unknown members end up in
// Extensions.
func ParseProblem(b []byte) (apis.ProblemView, error) {
	var s structpb.Struct
	if err := protojson.Unmarshal(b, &s); err != nil {
		return apis.ProblemView{}, fmt.Errorf("httpx: parse problem: %w", err)
	}

	var p apis.ProblemView
	for k, v := range s.GetFields() {
		switch k {
		case "type":
			p.Type = v.GetStringValue()
		case "title":
			p.Title = v.GetStringValue()
		case "status":
			p.Status = int(v.GetNumberValue())
		case "detail":
			p.Detail = v.GetStringValue()
		case "instance":
			p.Instance = v.GetStringValue()
		case "traceId":
			p.TraceID = v.GetStringValue()
		case "errors":
			for _, item := range v.GetListValue().GetValues() {
				f := item.GetStructValue().GetFields()
				p.Errors = append(p.Errors, apis.ErrorView{
					Message:  f["message"].GetStringValue(),
					Severity: f["severity"].GetStringValue(),
				})
			}
		default:
			if p.Extensions == nil {
				p.Extensions = make(map[string]any)
			}
			p.Extensions[k] = v.AsInterface()
		}
	}
	return p, nil
}

// ErrorsOf converts the views of a parsed problem back into result errors.
// Unknown severities fall back to severity.Error.
func ErrorsOf(p apis.ProblemView) []dresult.Error {
	out := make([]dresult.Error, 0, len(p.Errors))
	for _, v := range p.Errors {
		sev, err := severity.Parse(v.Severity)
		if err != nil {
			sev = severity.Error
		}
		out = append(out, dresult.NewError(v.Message, sev))
	}
	return out
}
