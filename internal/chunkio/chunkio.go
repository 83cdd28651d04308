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

// Package chunkio 提供按块吐出数据的 io.Reader 实现
//
// 真实的数据源 (终端 / 管道 / socket) 每次 Read 返回的字节数并不固定
// 这里的 Reader 用于在内存中复现这些行为 驱动 refill 相关的测试与 benchmark
package chunkio

import (
	"io"
)

// Buffer 以零拷贝方式切割一段字节数据
type Buffer struct {
	r int
	b []byte
}

// NewBuffer 创建并返回 *Buffer 实例 调用方不应再修改 p
func NewBuffer(p []byte) *Buffer {
	return &Buffer{b: p}
}

// Next 零拷贝方式读取最多 n 字节数据
func (buf *Buffer) Next(n int) ([]byte, error) {
	if buf.r == len(buf.b) {
		return nil, io.EOF
	}

	if buf.r+n >= len(buf.b) {
		b := buf.b[buf.r:]
		buf.r = len(buf.b)
		return b, nil
	}

	b := buf.b[buf.r : buf.r+n]
	buf.r += n
	return b, nil
}

// Remaining 返回尚未读取的字节数
func (buf *Buffer) Remaining() int {
	return len(buf.b) - buf.r
}

// Close 将 Buffer 置为 io.EOF 状态
func (buf *Buffer) Close() {
	buf.r = len(buf.b)
}

// Reader 每次 Read 最多返回 chunk 字节
type Reader struct {
	buf   *Buffer
	chunk int
	err   error
	eager bool

	calls int
}

// NewReader 创建并返回 *Reader 实例
//
// chunk <= 0 时每次尽可能填满调用方的 p
func NewReader(p []byte, chunk int) *Reader {
	return &Reader{
		buf:   NewBuffer(p),
		chunk: chunk,
		err:   io.EOF,
	}
}

// NewFailingReader 数据读完后返回 err 而不是 io.EOF
func NewFailingReader(p []byte, chunk int, err error) *Reader {
	r := NewReader(p, chunk)
	r.err = err
	return r
}

// NewEagerReader 在返回最后一块数据的同时返回 err (n > 0 && err != nil)
//
// io.Reader 的契约允许这种行为 调用方需要先处理 n 字节再处理 err
func NewEagerReader(p []byte, chunk int, err error) *Reader {
	r := NewFailingReader(p, chunk, err)
	r.eager = true
	return r
}

// Read 实现 io.Reader 接口
func (r *Reader) Read(p []byte) (int, error) {
	r.calls++
	if len(p) == 0 {
		return 0, nil
	}

	n := len(p)
	if r.chunk > 0 && r.chunk < n {
		n = r.chunk
	}

	b, err := r.buf.Next(n)
	if err != nil {
		return 0, r.err
	}

	copied := copy(p, b)
	if r.eager && r.buf.Remaining() == 0 {
		return copied, r.err
	}
	return copied, nil
}

// Calls 返回 Read 被调用的次数
func (r *Reader) Calls() int {
	return r.calls
}

// Close 实现 io.Closer 接口 之后的 Read 均返回结束状态
func (r *Reader) Close() error {
	r.buf.Close()
	return nil
}
