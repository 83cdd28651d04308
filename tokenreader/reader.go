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

// Package tokenreader 实现了基于固定缓冲区的增量 UTF-8 解码读取器
//
// Reader 每次只解码一个字符 在缓冲区耗尽时才向数据源请求更多数据
// 因此可以流式处理只有一行但体积巨大的输入 而不需要一次性读入内存
//
// 注意 Reader 不支持回退 (pushback/rewind):
// 一个 token 解析失败时 已经消费掉的字节不会归还给数据源 下一次读取从其后继续
package tokenreader

import (
	"io"

	"github.com/pkg/errors"

	"github.com/packetd/textin/common"
	"github.com/packetd/textin/internal/bufbytes"
)

var errInvalidReadCount = errors.New("tokenreader: source returned invalid count from Read")

type Config struct {
	// BufferSize 缓冲区容量 <= 0 时使用 common.DefaultBufferSize
	BufferSize int `config:"bufferSize"`

	// MaxTokenSize 单个 token / 行最多保留的字节数 0 代表不限制
	//
	// 超出部分仍会被消费 只是不再保留
	MaxTokenSize int `config:"maxTokenSize"`
}

func (c Config) bufferSize() int {
	if c.BufferSize <= 0 {
		return common.DefaultBufferSize
	}
	return c.BufferSize
}

// Reader 从 io.Reader 中按字符读取数据
//
// 不变式: 0 <= r <= w <= len(buf)
// errored 一旦置位便不再清除 此后所有读取都直接返回结束状态 不会再访问数据源
//
// Reader 独占数据源及缓冲区 非并发安全
type Reader struct {
	src  io.Reader
	buf  []byte
	r, w int

	errored bool
	err     error // 数据源返回的非 io.EOF 错误
	pending error // 与最后一批数据一同返回的错误 在下一次 refill 时生效

	acc       *bufbytes.Bytes
	truncated bool
}

// New 使用默认缓冲区长度创建并返回 *Reader 实例
func New(src io.Reader) *Reader {
	return NewWithConfig(src, Config{})
}

// NewSize 使用指定缓冲区长度创建并返回 *Reader 实例
func NewSize(src io.Reader, size int) *Reader {
	return NewWithConfig(src, Config{BufferSize: size})
}

func NewWithConfig(src io.Reader, conf Config) *Reader {
	return &Reader{
		src: src,
		buf: make([]byte, conf.bufferSize()),
		acc: bufbytes.New(conf.MaxTokenSize),
	}
}

func (r *Reader) fail(err error) {
	r.errored = true
	r.r, r.w = 0, 0
	if err != nil && err != io.EOF {
		r.err = err
	}
}

// fill 向数据源请求至多 len(buf) 字节 这是整个 Reader 唯一可能阻塞的地方
func (r *Reader) fill() {
	if r.pending != nil {
		r.fail(r.pending)
		return
	}

	n, err := r.src.Read(r.buf)
	r.r = 0
	switch {
	case n < 0 || n > len(r.buf):
		r.fail(errInvalidReadCount)
	case n == 0:
		// 0 字节即视为耗尽 无论 err 是 nil/io.EOF 还是其他错误
		r.fail(err)
	default:
		r.w = n
		r.pending = err
	}
}

// nextByte 返回缓冲区中的下一个字节 必要时 refill
func (r *Reader) nextByte() (byte, bool) {
	if r.errored {
		return 0, false
	}
	if r.r >= r.w {
		r.fill()
		if r.errored {
			return 0, false
		}
	}

	c := r.buf[r.r]
	r.r++
	return c, true
}

// Valid 返回数据源是否仍然可用
//
// 数据正常读完与数据源出错均会导致 Valid 返回 false 如需区分请使用 Err
func (r *Reader) Valid() bool {
	return !r.errored
}

// Err 返回导致 Reader 失效的数据源错误 正常读完 (io.EOF) 时返回 nil
func (r *Reader) Err() error {
	return r.err
}

// Truncated 返回最近一次 ReadToken / ReadLine 的结果是否因 MaxTokenSize 被截断
func (r *Reader) Truncated() bool {
	return r.truncated
}

// Buffered 返回缓冲区中尚未消费的字节数
func (r *Reader) Buffered() int {
	return r.w - r.r
}

// Size 返回缓冲区容量
func (r *Reader) Size() int {
	return len(r.buf)
}

// Close 释放数据源 (如果其实现了 io.Closer) 之后 Reader 不再可用
func (r *Reader) Close() error {
	r.fail(nil)
	if closer, ok := r.src.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
