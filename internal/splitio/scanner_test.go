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

package splitio

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/packetd/textin/internal/chunkio"
	"github.com/packetd/textin/tokenreader"
)

func TestScanner(t *testing.T) {
	tests := []struct {
		name  string
		input string
		mode  Mode
		want  []string
	}{
		{
			name:  "EmptyInput",
			input: "",
			mode:  ModeLines,
			want:  nil,
		},
		{
			name:  "SingleLineWithoutLF",
			input: "hello world",
			mode:  ModeLines,
			want:  []string{"hello world"},
		},
		{
			name:  "MultipleLines",
			input: "line1\nline2\nline3\n",
			mode:  ModeLines,
			want:  []string{"line1", "line2", "line3"},
		},
		{
			name:  "ConsecutiveLFs",
			input: "\n\n\n",
			mode:  ModeLines,
			want:  []string{"", "", ""},
		},
		{
			name:  "MixedLineEndings",
			input: "unix\nwindows\r\nmac\r",
			mode:  ModeLines,
			want:  []string{"unix", "windows\r", "mac\r"},
		},
		{
			name:  "Tokens",
			input: "  a bb\tccc\n\ndddd  ",
			mode:  ModeTokens,
			want:  []string{"a", "bb", "ccc", "dddd"},
		},
		{
			name:  "TokensEmpty",
			input: " \n\t ",
			mode:  ModeTokens,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := NewScanner(tokenreader.NewSize(strings.NewReader(tt.input), 3), tt.mode)
			var got []string
			for sc.Scan() {
				got = append(got, sc.Text())
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want), sc.Count())
			assert.Equal(t, "", sc.Text())
			assert.NoError(t, sc.Err())
		})
	}
}

func TestScannerErr(t *testing.T) {
	errBroken := errors.New("broken pipe")
	src := chunkio.NewFailingReader([]byte("a b"), 1, errBroken)
	sc := NewScanner(tokenreader.New(src), ModeTokens)

	var got []string
	for sc.Scan() {
		got = append(got, sc.Text())
	}
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, errBroken, sc.Err())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "tokens", ModeTokens.String())
	assert.Equal(t, "lines", ModeLines.String())
	assert.Equal(t, "unknown", Mode(9).String())
}

type mockScanner interface {
	Scan() bool
	Text() string
}

func BenchmarkScanner(b *testing.B) {
	benchmarkScanner(b, func(p []byte) mockScanner {
		return NewScanner(tokenreader.New(bytes.NewReader(p)), ModeLines)
	})
}

func BenchmarkBufioScanner(b *testing.B) {
	benchmarkScanner(b, func(p []byte) mockScanner {
		return bufio.NewScanner(bytes.NewReader(p))
	})
}

func benchmarkScanner(b *testing.B, f func([]byte) mockScanner) {
	var input []byte
	input = append(input, bytes.Repeat([]byte(strings.Repeat("x", 1024)+"\n"), 100)...)

	b.ReportAllocs()
	b.ResetTimer()
	b.SetBytes(int64(len(input)))

	b.RunParallel(func(pb *testing.PB) {
		var n int
		for pb.Next() {
			scanner := f(input)
			for scanner.Scan() {
				n += len(scanner.Text())
			}
		}
	})
}
