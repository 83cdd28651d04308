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

package chunkio

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer(t *testing.T) {
	t.Run("Next", func(t *testing.T) {
		n := 64
		buf := NewBuffer(bytes.Repeat([]byte("a"), n*16))

		for i := 0; i < n; i++ {
			b, err := buf.Next(16)
			assert.NoError(t, err)
			assert.Len(t, b, 16)
		}
		_, err := buf.Next(1)
		assert.Equal(t, io.EOF, err)
	})

	t.Run("Close", func(t *testing.T) {
		buf := NewBuffer(bytes.Repeat([]byte("a"), 1024))
		buf.Close()
		assert.Equal(t, 0, buf.Remaining())
		_, err := buf.Next(1)
		assert.Equal(t, io.EOF, err)
	})
}

func TestReader(t *testing.T) {
	errBroken := errors.New("broken pipe")

	tests := []struct {
		name    string
		reader  *Reader
		chunks  []int
		lastErr error
	}{
		{
			name:    "Chunked",
			reader:  NewReader([]byte("hello world"), 4),
			chunks:  []int{4, 4, 3},
			lastErr: io.EOF,
		},
		{
			name:    "Unlimited",
			reader:  NewReader([]byte("hello world"), 0),
			chunks:  []int{11},
			lastErr: io.EOF,
		},
		{
			name:    "Failing",
			reader:  NewFailingReader([]byte("abc"), 2, errBroken),
			chunks:  []int{2, 1},
			lastErr: errBroken,
		},
		{
			name:    "Empty",
			reader:  NewReader(nil, 2),
			chunks:  nil,
			lastErr: io.EOF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := make([]byte, 64)
			var chunks []int
			var err error
			for {
				var n int
				n, err = tt.reader.Read(p)
				if err != nil {
					assert.Equal(t, 0, n)
					break
				}
				chunks = append(chunks, n)
			}
			assert.Equal(t, tt.chunks, chunks)
			assert.Equal(t, tt.lastErr, err)
			assert.Equal(t, len(tt.chunks)+1, tt.reader.Calls())
		})
	}
}

func TestEagerReader(t *testing.T) {
	errBroken := errors.New("broken pipe")
	r := NewEagerReader([]byte("abcd"), 3, errBroken)
	p := make([]byte, 8)

	n, err := r.Read(p)
	assert.Equal(t, 3, n)
	assert.NoError(t, err)

	n, err = r.Read(p)
	assert.Equal(t, 1, n)
	assert.Equal(t, errBroken, err)
	assert.Equal(t, "d", string(p[:n]))

	n, err = r.Read(p)
	assert.Equal(t, 0, n)
	assert.Equal(t, errBroken, err)
}

func TestReaderClose(t *testing.T) {
	r := NewReader([]byte("abc"), 1)
	assert.NoError(t, r.Close())
	n, err := r.Read(make([]byte, 4))
	assert.Equal(t, 0, n)
	assert.Equal(t, io.EOF, err)
}
