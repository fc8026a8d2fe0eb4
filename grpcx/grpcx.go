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

// Package grpcx carries dresult values over gRPC.
//
// A failed result becomes a gRPC status whose code is resolved through an
// apis.Mapper, with two details attached:
//
//   - an errdetails.ErrorInfo (reason = status name, domain = Domain,
//     metadata http_status and, when known, route);
//   - a structpb.ListValue of {message, severity} entries.
//
// ExtractErrors reverses the projection on the client side.
package grpcx

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/adapter"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/logx"
	"dirpx.dev/dresult/route"
	"dirpx.dev/dresult/severity"
	"dirpx.dev/dresult/status"
)

// Domain is the ErrorInfo domain of every status built by this package.
const Domain = "dresult.dirpx.dev"

// Metadata keys of the ErrorInfo detail.
const (
	MetaHTTPStatus = "http_status"
	MetaRoute      = "route"
)

// Status projects res onto a gRPC status. fullMethod ("/pkg.Service/Method")
// is used as the route for mapper rules and may be empty. A nil m uses the
// library defaults. A successful result yields an OK status without details.
func Status(m apis.Mapper, res dresult.Result, fullMethod string) *gstatus.Status {
	if res.IsSuccess() {
		return gstatus.New(gcodes.OK, "")
	}
	r := route.FromMethod(fullMethod)
	st := adapter.Resolve(m, res, r)

	msg := res.Status().String()
	if e, ok := res.FirstError(); ok {
		msg = e.Message
	}
	code := st.GRPC
	if code == gcodes.OK {
		// a failure must never travel as a nil error
		code = gcodes.Unknown
	}
	base := gstatus.New(code, msg)

	info := &errdetails.ErrorInfo{
		Reason:   res.Status().String(),
		Domain:   Domain,
		Metadata: map[string]string{MetaHTTPStatus: strconv.Itoa(st.HTTP)},
	}
	if r != route.Empty {
		info.Metadata[MetaRoute] = r.String()
	}

	list := &structpb.ListValue{}
	for _, v := range adapter.ToErrorViews(res.Errors()) {
		list.Values = append(list.Values, structpb.NewStructValue(&structpb.Struct{
			Fields: map[string]*structpb.Value{
				"message":  structpb.NewStringValue(v.Message),
				"severity": structpb.NewStringValue(v.Severity),
			},
		}))
	}

	// If attaching details fails, the bare status still carries the code.
	if with, err := base.WithDetails(info, list); err == nil {
		return with
	}
	return base
}

// UnaryServerInterceptor returns an interceptor that converts a
// *dresult.Failure anywhere in a handler error chain into a status built by
// Status. Other errors pass through unchanged. Converted failures are logged
// through logger when it is not nil.
func UnaryServerInterceptor(m apis.Mapper, logger *zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var f *dresult.Failure
		if !errors.As(err, &f) || f == nil {
			// Not ours, return as-is.
			return nil, err
		}

		st := Status(m, f.Result, info.FullMethod)
		if logger != nil {
			logx.Event(logger, f.Result).
				Str("method", info.FullMethod).
				Stringer("grpc_code", st.Code()).
				Msg(st.Message())
		}
		return nil, st.Err()
	}
}

// ExtractErrors pulls the result errors and status out of a gRPC error built
// by Status. ok is false for errors without the dresult details.
func ExtractErrors(err error) (errs []dresult.Error, st status.Status, ok bool) {
	if err == nil {
		return nil, 0, false
	}
	gs, isStatus := gstatus.FromError(err)
	if !isStatus {
		return nil, 0, false
	}

	for _, a := range gs.Proto().GetDetails() {
		switch {
		case a.MessageIs(&errdetails.ErrorInfo{}):
			var info errdetails.ErrorInfo
			if a.UnmarshalTo(&info) != nil || info.GetDomain() != Domain {
				continue
			}
			parsed, perr := status.Parse(info.GetReason())
			if perr != nil {
				continue
			}
			st, ok = parsed, true
		case a.MessageIs(&structpb.ListValue{}):
			var list structpb.ListValue
			if a.UnmarshalTo(&list) != nil {
				continue
			}
			errs = errs[:0]
			for _, v := range list.GetValues() {
				f := v.GetStructValue().GetFields()
				sev, serr := severity.Parse(f["severity"].GetStringValue())
				if serr != nil {
					sev = severity.Error
				}
				errs = append(errs, dresult.NewError(f["message"].GetStringValue(), sev))
			}
		}
	}
	if !ok {
		return nil, 0, false
	}
	return errs, st, true
}

// FromError rebuilds a result from a gRPC error built by Status. Other
// errors become a generic failure, like dresult.FromError.
func FromError(err error) dresult.Result {
	if err == nil {
		return dresult.Ok()
	}
	if errs, st, ok := ExtractErrors(err); ok {
		return dresult.WithStatus(st, errs...)
	}
	return dresult.FromError(err)
}
