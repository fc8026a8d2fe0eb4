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

// Command resultd serves a sample API whose handlers return dresult values.
// Failures are rendered as RFC 7807 problem documents over HTTP and as
// detailed statuses over gRPC.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/grpcx"
	"dirpx.dev/dresult/httpx"
	"dirpx.dev/dresult/internal/config"
	"dirpx.dev/dresult/logx"
	"dirpx.dev/dresult/mapper"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, config.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "resultd:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	cfg, err := config.Load(args, stderr)
	if err != nil {
		return err
	}
	logger, err := logx.New(cfg.LogConfig(stderr))
	if err != nil {
		return err
	}
	m, err := loadMapper(cfg.Mapper.File)
	if err != nil {
		return err
	}

	w := httpx.Writer{Mapper: m, Logger: &logger}
	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           newServer(w).routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 2)
	go func() {
		logger.Info().Str("addr", cfg.HTTP.Addr).Msg("http listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- fmt.Errorf("http: %w", err)
		}
	}()

	var grpcSrv *grpc.Server
	if cfg.GRPC.Addr != "" {
		lis, err := net.Listen("tcp", cfg.GRPC.Addr)
		if err != nil {
			_ = httpSrv.Close()
			return fmt.Errorf("grpc: %w", err)
		}
		grpcSrv = newGRPCServer(m, &logger)
		go func() {
			logger.Info().Str("addr", cfg.GRPC.Addr).Msg("grpc listening")
			if err := grpcSrv.Serve(lis); err != nil {
				errc <- fmt.Errorf("grpc: %w", err)
			}
		}()
	} else {
		logger.Info().Msg("grpc disabled")
	}

	select {
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
	case err = <-errc:
		logger.Error().Err(err).Msg("server failed")
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if grpcSrv != nil {
		grpcSrv.GracefulStop()
	}
	if serr := httpSrv.Shutdown(sctx); serr != nil {
		err = errors.Join(err, fmt.Errorf("http shutdown: %w", serr))
	}
	return err
}

// loadMapper builds the status mapper, applying the YAML rules in path when
// it is set.
func loadMapper(path string) (apis.Mapper, error) {
	if path == "" {
		return mapper.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapper rules: %w", err)
	}
	defer f.Close()

	opts, err := mapper.LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("mapper rules %s: %w", path, err)
	}
	return mapper.New(opts...)
}

// newGRPCServer returns a server exposing the health service behind the
// result interceptor.
func newGRPCServer(m apis.Mapper, logger *zerolog.Logger) *grpc.Server {
	srv := grpc.NewServer(grpc.UnaryInterceptor(grpcx.UnaryServerInterceptor(m, logger)))
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)
	return srv
}
