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

package adapter

import (
	"net/http"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/mapper"
	"dirpx.dev/dresult/route"
)

// DefaultProblemType is the RFC 7807 type used when no type URI is given.
const DefaultProblemType = "about:blank"

// Meta carries request-scoped data that is not part of the result.
type Meta struct {
	// Type overrides the problem type URI.
	Type string
	// Instance identifies the failing request, usually its path.
	Instance string
	// TraceID correlates the problem with logs and traces.
	TraceID string
	// Route is the normalized route the result was produced for.
	Route route.Route
}

// ToErrorViews converts result errors into their wire shape, preserving
// order.
func ToErrorViews(errs []dresult.Error) []apis.ErrorView {
	if len(errs) == 0 {
		return nil
	}
	out := make([]apis.ErrorView, len(errs))
	for i, e := range errs {
		out[i] = apis.ErrorView{Message: e.Message, Severity: e.Severity.String()}
	}
	return out
}

// ToProblem builds the problem document for a failed result, using the
// resolved transport status st.
//
// Status is st.HTTP; Title is the standard reason phrase of that code (or
// the result status name when net/http has none); Detail is the first error
// message. Every error is listed in Errors, and non-empty metadata is
// exposed as the "metadata" extension.
//
// A successful result yields an empty view.
func ToProblem(res dresult.Result, st apis.Status, meta Meta) apis.ProblemView {
	if res.IsSuccess() {
		return apis.ProblemView{}
	}
	p := apis.ProblemView{
		Type:     meta.Type,
		Title:    http.StatusText(st.HTTP),
		Status:   st.HTTP,
		Instance: meta.Instance,
		TraceID:  meta.TraceID,
		Errors:   ToErrorViews(res.Errors()),
	}
	if p.Type == "" {
		p.Type = DefaultProblemType
	}
	if p.Title == "" {
		p.Title = res.Status().String()
	}
	if e, ok := res.FirstError(); ok {
		p.Detail = e.Message
	}
	if md := res.Metadata(); len(md) > 0 {
		p.Extensions = map[string]any{apis.ExtensionMetadata: md}
	}
	return p
}

// ToDescriptor converts a result together with its resolved transport
// status into a portable ResultDescriptor for logs and message buses.
func ToDescriptor(res dresult.Result, st apis.Status, r route.Route) apis.ResultDescriptor {
	d := apis.ResultDescriptor{
		Status:     res.Status().String(),
		Route:      r.String(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Errors:     ToErrorViews(res.Errors()),
		Metadata:   res.Metadata(),
	}
	if sev, ok := res.MaxSeverity(); ok {
		d.Severity = sev.String()
	}
	return d
}

// Resolve projects res through m for route r. A nil m uses the library
// defaults.
func Resolve(m apis.Mapper, res dresult.Result, r route.Route) apis.Status {
	if m == nil {
		m = mapper.Default()
	}
	return m.Status(res.Status(), r)
}
