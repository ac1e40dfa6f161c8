// Copyright The Notary Project Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging is a thin wrapper of zap logging library.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix is the prefix of the environment variables holding log levels.
// DERTOOL_LOG sets the level of every package, DERTOOL_LOG_<pkg> overrides
// it for one package.
const EnvPrefix = "DERTOOL_LOG"

// New creates a logger writing JSON lines to stderr, initialized with the
// configured log level of pkg.
func New(pkg string) *zap.Logger {
	return NewWithOutput(pkg, os.Stderr)
}

// NewWithOutput is like New but writes to w.
func NewWithOutput(pkg string, w io.Writer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		Level(pkg),
	)
	return zap.New(core).Named(pkg)
}

// Level returns the configured log level of a package. The first letter of
// the variable selects the level: V or D for debug, I for info, W for warn,
// E for error, F or N for fatal-only. Anything else means info.
func Level(pkg string) zapcore.Level {
	lvl, ok := os.LookupEnv(EnvPrefix + "_" + pkg)
	if !ok {
		lvl = os.Getenv(EnvPrefix)
	}
	if len(lvl) == 0 {
		return zapcore.InfoLevel
	}
	switch lvl[0] {
	case 'V', 'D':
		return zapcore.DebugLevel
	case 'I':
		return zapcore.InfoLevel
	case 'W':
		return zapcore.WarnLevel
	case 'E':
		return zapcore.ErrorLevel
	case 'F', 'N':
		return zapcore.DPanicLevel
	}
	return zapcore.InfoLevel
}
