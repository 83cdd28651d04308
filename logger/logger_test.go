// Copyright 2025 The packetd Authors
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

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestToZapLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zapcore.Level
	}{
		{input: "debug", want: zapcore.DebugLevel},
		{input: "info", want: zapcore.InfoLevel},
		{input: "warn", want: zapcore.WarnLevel},
		{input: "error", want: zapcore.ErrorLevel},
		{input: "", want: zapcore.WarnLevel},
		{input: "verbose", want: zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, toZapLevel(tt.input))
		})
	}
}

func TestFileLogger(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "logs", "textin.log")
	l := New(Options{
		Level:      "info",
		Filename:   filename,
		MaxSize:    1,
		MaxBackups: 1,
	})

	l.Debugf("hidden %d", 1)
	l.With("source", "stdin").Infof("visible %d", 2)
	_ = l.Sync()

	b, err := os.ReadFile(filename)
	assert.NoError(t, err)
	assert.Contains(t, string(b), "visible 2")
	assert.Contains(t, string(b), "source")
	assert.NotContains(t, string(b), "hidden")
}
