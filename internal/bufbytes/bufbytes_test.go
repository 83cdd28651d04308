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

package bufbytes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufBytesWrite(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		inputs   [][]byte
		expected []byte
	}{
		{
			name:     "Empty write",
			size:     10,
			inputs:   [][]byte{},
			expected: nil,
		},
		{
			name:     "Unbounded",
			size:     0,
			inputs:   [][]byte{[]byte("hello"), []byte("world")},
			expected: []byte("helloworld"),
		},
		{
			name:     "Single fit",
			size:     5,
			inputs:   [][]byte{[]byte("hello")},
			expected: []byte("hello"),
		},
		{
			name:     "Single write exceeds capacity",
			size:     5,
			inputs:   [][]byte{[]byte("helloworld")},
			expected: []byte("hello"),
		},
		{
			name:     "Multiple inputs exceed capacity",
			size:     8,
			inputs:   [][]byte{[]byte("hello"), []byte("world")},
			expected: []byte("hellowor"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.size)
			for _, input := range tt.inputs {
				b.Write(input)
			}
			assert.Equal(t, tt.expected, b.buf)
		})
	}
}

func TestBufBytesWriteRune(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		runes []rune
		want  string
		ok    []bool
	}{
		{
			name:  "ASCII unbounded",
			size:  0,
			runes: []rune{'a', 'b', 'c'},
			want:  "abc",
			ok:    []bool{true, true, true},
		},
		{
			name:  "MultiByte fits",
			size:  6,
			runes: []rune{'世', '界'},
			want:  "世界",
			ok:    []bool{true, true},
		},
		{
			name:  "MultiByte never split",
			size:  5,
			runes: []rune{'世', '界'},
			want:  "世",
			ok:    []bool{true, false},
		},
		{
			name:  "Smaller rune still fits",
			size:  4,
			runes: []rune{'世', '界', 'x'},
			want:  "世x",
			ok:    []bool{true, false, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.size)
			var oks []bool
			for _, r := range tt.runes {
				oks = append(oks, b.WriteRune(r))
			}
			assert.Equal(t, tt.ok, oks)
			assert.Equal(t, tt.want, b.Text())
		})
	}
}

func TestBufBytesReset(t *testing.T) {
	b := New(0)
	b.WriteRune('x')
	assert.False(t, b.Empty())
	assert.Equal(t, []byte("x"), b.Clone())

	b.Reset()
	assert.True(t, b.Empty())
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, "", b.Text())
}
