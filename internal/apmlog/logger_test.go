// Licensed to Elasticsearch B.V. under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. Elasticsearch B.V. licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package apmlog

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerFromEnvUnset(t *testing.T) {
	t.Setenv(envLogFile, "")
	assert.Nil(t, loggerFromEnv())
}

func TestLoggerFromEnvInvalidFile(t *testing.T) {
	var logbuf bytes.Buffer
	log.SetOutput(&logbuf)
	defer log.SetOutput(os.Stderr)

	t.Setenv(envLogFile, t.TempDir())
	assert.Nil(t, loggerFromEnv())
	assert.Regexp(t, `failed to open ".*": .* \(disabling logging\)`, logbuf.String())
}

func TestLoggerFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")
	t.Setenv(envLogFile, path)
	t.Setenv(envLogLevel, "")

	logger := loggerFromEnv()
	require.NotNil(t, logger)
	logger.Debugf("parsed %s", "jdbc:h2:mem:test")
	logger.Errorf("no parser for %q", "jdbc:foo")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Regexp(t, `^{"level":"error","time":".*","logger":"apmdburl","message":"no parser for \\"jdbc:foo\\""}\n$`, string(data))
}

func TestLoggerFromEnvLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")
	t.Setenv(envLogFile, path)
	t.Setenv(envLogLevel, "DEBUG")

	logger := loggerFromEnv()
	require.NotNil(t, logger)
	assert.Equal(t, DebugLevel, logger.Level())
	logger.Debugf("debug message")
	logger.Warningf("warning message")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Regexp(t, `
{"level":"debug","time":".*","logger":"apmdburl","message":"debug message"}
{"level":"warn","time":".*","logger":"apmdburl","message":"warning message"}
`[1:], string(data))
}

func TestLoggerFromEnvInvalidLevel(t *testing.T) {
	var logbuf bytes.Buffer
	log.SetOutput(&logbuf)
	defer log.SetOutput(os.Stderr)

	t.Setenv(envLogFile, filepath.Join(t.TempDir(), "log.json"))
	t.Setenv(envLogLevel, "panic")

	logger := loggerFromEnv()
	require.NotNil(t, logger)
	assert.Equal(t, ErrorLevel, logger.Level())
	assert.Contains(t, logbuf.String(), `invalid ELASTIC_APM_LOG_LEVEL "panic", falling back to "error"`)
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, OffLevel)
	logger.Errorf("dropped")
	assert.Empty(t, buf.String())

	logger.SetLevel(InfoLevel)
	logger.Debugf("dropped")
	logger.Errorf("kept")
	assert.Contains(t, buf.String(), `"message":"kept"`)
	assert.NotContains(t, buf.String(), "dropped")
}

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"debug", "info", "warn", "error", "critical", "off"} {
		level, err := ParseLevel(name)
		require.NoError(t, err)
		assert.Equal(t, name, level.String())
	}
	_, err := ParseLevel("verbose")
	assert.EqualError(t, err, `invalid log level "verbose"`)
}
