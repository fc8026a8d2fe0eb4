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

// Package logx wires dresult values into zerolog.
//
// New builds the process logger from a small Config, Level maps error
// severities onto zerolog levels, and Result/Event log failed results with
// a stable set of fields.
package logx

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/severity"
	"dirpx.dev/dresult/validate"
)

// Output formats.
const (
	FormatAuto    = "auto"
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Field names used by Event.
const (
	FieldStatus     = "status"
	FieldSeverity   = "severity"
	FieldErrorCount = "error_count"
	FieldErrors     = "errors"
)

// Config selects the logger output.
type Config struct {
	// Level is a zerolog level name ("debug", "info", ...). Empty means info.
	Level string
	// Format is FormatAuto (default), FormatConsole or FormatJSON. Auto
	// picks the console writer when Output is a terminal.
	Format string
	// Output defaults to os.Stderr.
	Output io.Writer
}

// New builds a logger with timestamps.
func New(cfg Config) (zerolog.Logger, error) {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	level := zerolog.InfoLevel
	if cfg.Level != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("logx: %w", err)
		}
		level = l
	}

	switch strings.ToLower(cfg.Format) {
	case "", FormatAuto:
		if isTerminal(out) {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		}
	case FormatConsole:
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: !isTerminal(out)}
	case FormatJSON:
	default:
		return zerolog.Nop(), fmt.Errorf("logx: unknown format %q", cfg.Format)
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Level maps a severity onto a zerolog level. Critical and Emergency map to
// the fatal and panic levels; Event logs them through WithLevel, which does
// not exit or panic.
func Level(s severity.Severity) zerolog.Level {
	switch s {
	case severity.Debug:
		return zerolog.DebugLevel
	case severity.Information, severity.Notice:
		return zerolog.InfoLevel
	case severity.Warning:
		return zerolog.WarnLevel
	case severity.Error:
		return zerolog.ErrorLevel
	case severity.Critical:
		return zerolog.FatalLevel
	case severity.Emergency:
		return zerolog.PanicLevel
	}
	return zerolog.ErrorLevel
}

// Event starts a log event describing res at the level of its highest
// severity. Successful results log at info level with the status only.
//
// The returned event may be nil when the level is disabled; zerolog events
// are nil-safe.
func Event(l *zerolog.Logger, res dresult.Result) *zerolog.Event {
	sev, failed := res.MaxSeverity()
	if !failed {
		return l.Info().Stringer(FieldStatus, res.Status())
	}
	errs := res.Errors()
	return l.WithLevel(Level(sev)).
		Stringer(FieldStatus, res.Status()).
		Stringer(FieldSeverity, sev).
		Int(FieldErrorCount, len(errs)).
		Str(FieldErrors, validate.Encode(errs))
}

// Result logs a failed result with its first error message. Successful
// results are not logged.
func Result(l *zerolog.Logger, res dresult.Result) {
	if l == nil || res.IsSuccess() {
		return
	}
	e, _ := res.FirstError()
	Event(l, res).Msg(e.Message)
}
