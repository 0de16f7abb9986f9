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

// Package apmlog provides the levelled JSON logger used when
// ELASTIC_APM_LOG_FILE is set.
package apmlog // import "go.elastic.co/apm/module/apmdburl/v2/internal/apmlog"

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.elastic.co/fastjson"
)

const (
	envLogFile  = "ELASTIC_APM_LOG_FILE"
	envLogLevel = "ELASTIC_APM_LOG_LEVEL"

	loggerName = "apmdburl"
)

// DefaultLogger is the logger configured by ELASTIC_APM_LOG_FILE and
// ELASTIC_APM_LOG_LEVEL, or nil if no log file is configured.
var DefaultLogger *LevelLogger

var writerPool = sync.Pool{
	New: func() interface{} {
		return &fastjson.Writer{}
	},
}

func init() {
	DefaultLogger = loggerFromEnv()
}

func loggerFromEnv() *LevelLogger {
	file := strings.TrimSpace(os.Getenv(envLogFile))
	if file == "" {
		return nil
	}

	var w io.Writer
	switch strings.ToLower(file) {
	case "stdout":
		w = os.Stdout
	case "stderr":
		w = os.Stderr
	default:
		f, err := os.OpenFile(file, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			log.Printf("failed to open %q: %s (disabling logging)", file, err)
			return nil
		}
		w = &lockedWriter{w: f}
	}

	level := ErrorLevel
	if s := strings.TrimSpace(os.Getenv(envLogLevel)); s != "" {
		parsed, err := ParseLevel(s)
		if err != nil {
			log.Printf("invalid %s %q, falling back to %q", envLogLevel, s, level)
		} else {
			level = parsed
		}
	}
	return New(w, level)
}

// Level is a logging level.
type Level uint32

// Logging levels, from most to least verbose.
const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	CriticalLevel
	OffLevel
)

var levelNames = [...]string{
	DebugLevel:    "debug",
	InfoLevel:     "info",
	WarnLevel:     "warn",
	ErrorLevel:    "error",
	CriticalLevel: "critical",
	OffLevel:      "off",
}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return ""
}

// ParseLevel parses s, case-insensitively, as a logging level.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return OffLevel, fmt.Errorf("invalid log level %q", s)
}

// LevelLogger writes one JSON object per message to an io.Writer,
// dropping messages below its level.
type LevelLogger struct {
	level uint32 // atomic
	w     io.Writer
}

// New returns a LevelLogger writing messages at or above level to w.
func New(w io.Writer, level Level) *LevelLogger {
	return &LevelLogger{w: w, level: uint32(level)}
}

// SetLevel sets the minimum level of messages that are written.
func (l *LevelLogger) SetLevel(level Level) {
	atomic.StoreUint32(&l.level, uint32(level))
}

// Level returns the minimum level of messages that are written.
func (l *LevelLogger) Level() Level {
	return Level(atomic.LoadUint32(&l.level))
}

// Debugf logs a message at DebugLevel.
func (l *LevelLogger) Debugf(format string, args ...interface{}) {
	l.logf(DebugLevel, format, args...)
}

// Warningf logs a message at WarnLevel.
func (l *LevelLogger) Warningf(format string, args ...interface{}) {
	l.logf(WarnLevel, format, args...)
}

// Errorf logs a message at ErrorLevel.
func (l *LevelLogger) Errorf(format string, args ...interface{}) {
	l.logf(ErrorLevel, format, args...)
}

func (l *LevelLogger) logf(level Level, format string, args ...interface{}) {
	if level < l.Level() {
		return
	}
	w := writerPool.Get().(*fastjson.Writer)
	defer func() {
		w.Reset()
		writerPool.Put(w)
	}()
	w.RawString(`{"level":`)
	w.String(level.String())
	w.RawString(`,"time":"`)
	w.Time(time.Now(), time.RFC3339)
	w.RawString(`","logger":`)
	w.String(loggerName)
	w.RawString(`,"message":`)
	w.String(fmt.Sprintf(format, args...))
	w.RawString("}\n")
	l.w.Write(w.Bytes())
}

// lockedWriter serializes writes to a log file shared by several loggers.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (w *lockedWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.w.Write(p)
}
