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
	"unicode/utf8"
)

// Bytes 是可复用的文本累加器
//
// size > 0 时最多保留 size 字节 超出部分直接丢弃
// WriteRune 保证不会把一个字符的编码截断成半个
type Bytes struct {
	size int
	buf  []byte
}

// New 创建并返回 *Bytes 实例 size <= 0 代表不限制长度
func New(size int) *Bytes {
	return &Bytes{
		size: size,
	}
}

func (b *Bytes) room() int {
	if b.size <= 0 {
		return -1
	}
	return b.size - len(b.buf)
}

// WriteRune 追加一个字符 超出容量时返回 false 且不写入任何字节
func (b *Bytes) WriteRune(r rune) bool {
	n := b.room()
	if n >= 0 && utf8.RuneLen(r) > n {
		return false
	}
	b.buf = utf8.AppendRune(b.buf, r)
	return true
}

// Write 追加字节 超出容量的部分会被截断
func (b *Bytes) Write(p []byte) {
	n := b.room()
	if n < 0 || len(p) <= n {
		b.buf = append(b.buf, p...)
		return
	}
	if n > 0 {
		b.buf = append(b.buf, p[:n]...)
	}
}

func (b *Bytes) Len() int {
	return len(b.buf)
}

func (b *Bytes) Empty() bool {
	return len(b.buf) == 0
}

// Text 返回当前内容的拷贝
func (b *Bytes) Text() string {
	return string(b.buf)
}

func (b *Bytes) Clone() []byte {
	if b.buf == nil {
		return nil
	}
	return append([]byte{}, b.buf...)
}

// Reset 清空内容但保留底层空间以便复用
func (b *Bytes) Reset() {
	b.buf = b.buf[:0]
}
