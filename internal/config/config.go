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

// Package config loads resultd settings from defaults, an optional config
// file, RESULTD_* environment variables and command line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"dirpx.dev/dresult/logx"
)

// EnvPrefix prefixes every environment variable, e.g. RESULTD_HTTP_ADDR.
const EnvPrefix = "RESULTD"

// Setting keys.
const (
	KeyHTTPAddr   = "http.addr"
	KeyGRPCAddr   = "grpc.addr"
	KeyLogLevel   = "log.level"
	KeyLogFormat  = "log.format"
	KeyMapperFile = "mapper.file"
)

// Config is the resolved daemon configuration.
type Config struct {
	HTTP struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"http"`
	GRPC struct {
		// Addr is the gRPC listen address. Empty disables the gRPC server.
		Addr string `mapstructure:"addr"`
	} `mapstructure:"grpc"`
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
	Mapper struct {
		// File is an optional YAML rule file for the status mapper.
		File string `mapstructure:"file"`
	} `mapstructure:"mapper"`
}

// ErrInvalid is wrapped by every validation failure of Load.
var ErrInvalid = errors.New("config: invalid value")

// ErrHelp is returned by Load when -h or --help was given.
var ErrHelp = pflag.ErrHelp

var defaults = map[string]string{
	KeyHTTPAddr:   ":8080",
	KeyGRPCAddr:   ":9090",
	KeyLogLevel:   "info",
	KeyLogFormat:  logx.FormatAuto,
	KeyMapperFile: "",
}

// flag name -> setting key
var flagKeys = map[string]string{
	"http-addr":   KeyHTTPAddr,
	"grpc-addr":   KeyGRPCAddr,
	"log-level":   KeyLogLevel,
	"log-format":  KeyLogFormat,
	"mapper-file": KeyMapperFile,
}

// Load parses args (without the program name) and resolves the
// configuration. Flag errors and usage are printed to stderr. A help
// request returns ErrHelp after printing usage.
func Load(args []string, stderr io.Writer) (*Config, error) {
	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}

	fs := pflag.NewFlagSet("resultd", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgFile := fs.String("config", "", "path to a config file (yaml, toml or json)")
	fs.String("http-addr", defaults[KeyHTTPAddr], "HTTP listen address")
	fs.String("grpc-addr", defaults[KeyGRPCAddr], "gRPC listen address, empty disables gRPC")
	fs.String("log-level", defaults[KeyLogLevel], "log level (trace, debug, info, warn, error)")
	fs.String("log-format", defaults[KeyLogFormat], "log format (auto, console, json)")
	fs.String("mapper-file", defaults[KeyMapperFile], "YAML status mapping rules")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			// usage is already printed
			return nil, ErrHelp
		}
		fmt.Fprintln(stderr, err)
		fs.PrintDefaults()
		return nil, err
	}
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", name, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if *cfgFile != "" {
		v.SetConfigFile(*cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", *cfgFile, err)
		}
	} else {
		v.SetConfigName("resultd")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/resultd")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: read: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that cannot be checked by type alone.
func (c *Config) Validate() error {
	var errs []error
	if c.HTTP.Addr == "" {
		errs = append(errs, fmt.Errorf("%w: %s must not be empty", ErrInvalid, KeyHTTPAddr))
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: %s %q", ErrInvalid, KeyLogLevel, c.Log.Level))
	}
	switch c.Log.Format {
	case logx.FormatAuto, logx.FormatConsole, logx.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("%w: %s %q", ErrInvalid, KeyLogFormat, c.Log.Format))
	}
	return errors.Join(errs...)
}

// LogConfig projects the log settings onto a logx.Config writing to out.
func (c *Config) LogConfig(out io.Writer) logx.Config {
	return logx.Config{Level: c.Log.Level, Format: c.Log.Format, Output: out}
}
