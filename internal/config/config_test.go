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

package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into an empty directory so no stray resultd.* file is found.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t)
	cfg, err := Load(nil, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, ":9090", cfg.GRPC.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "auto", cfg.Log.Format)
	assert.Empty(t, cfg.Mapper.File)
}

func TestLoad_Precedence(t *testing.T) {
	dir := chdir(t)
	file := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
http:
  addr: ":7000"
grpc:
  addr: ":7001"
log:
  level: warn
mapper:
  file: rules.yaml
`), 0o600))

	t.Setenv("RESULTD_GRPC_ADDR", ":7002")
	t.Setenv("RESULTD_LOG_LEVEL", "debug")

	cfg, err := Load([]string{"--config", file, "--log-level", "error"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.HTTP.Addr, "file beats default")
	assert.Equal(t, ":7002", cfg.GRPC.Addr, "env beats file")
	assert.Equal(t, "error", cfg.Log.Level, "flag beats env")
	assert.Equal(t, "rules.yaml", cfg.Mapper.File)
}

func TestLoad_SearchesWorkingDir(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "resultd.yaml"), []byte("log:\n  format: json\n"), 0o600))

	cfg, err := Load(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Errors(t *testing.T) {
	chdir(t)

	_, err := Load([]string{"--config", "does-not-exist.yaml"}, io.Discard)
	assert.Error(t, err)

	_, err = Load([]string{"--log-level", "loud"}, io.Discard)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Load([]string{"--log-format", "xml", "--http-addr", ""}, io.Discard)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), KeyLogFormat)
	assert.Contains(t, err.Error(), KeyHTTPAddr)

	var usage bytes.Buffer
	_, err = Load([]string{"--nope"}, &usage)
	assert.Error(t, err)
	assert.Contains(t, usage.String(), "unknown flag: --nope")
	assert.Contains(t, usage.String(), "--http-addr")
}

func TestLoad_Help(t *testing.T) {
	chdir(t)
	var usage bytes.Buffer
	_, err := Load([]string{"--help"}, &usage)
	assert.ErrorIs(t, err, ErrHelp)
	assert.Contains(t, usage.String(), "--mapper-file")
}

func TestLogConfig(t *testing.T) {
	chdir(t)
	cfg, err := Load([]string{"--log-format", "json"}, io.Discard)
	require.NoError(t, err)

	lc := cfg.LogConfig(io.Discard)
	assert.Equal(t, "info", lc.Level)
	assert.Equal(t, "json", lc.Format)
	assert.Equal(t, io.Discard, lc.Output)
}
