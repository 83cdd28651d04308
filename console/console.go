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

// Package console 提供进程级别的标准输入读取器
//
// 所有函数共享同一个惰性初始化的 tokenreader.Reader 并通过一把互斥锁串行化
// 并发调用方之间以完整的操作为单位交错 不保证公平性
package console

import (
	"io"
	"os"
	"sync"

	"github.com/packetd/textin/common"
	"github.com/packetd/textin/tokenreader"
)

var (
	mut    sync.Mutex
	once   sync.Once
	reader *tokenreader.Reader

	source     io.Reader = os.Stdin
	bufferSize           = common.DefaultBufferSize
)

// Configure 设置首次使用前的缓冲区长度 Reader 已创建时返回 false
func Configure(size int) bool {
	mut.Lock()
	defer mut.Unlock()

	if reader != nil {
		return false
	}
	bufferSize = size
	return true
}

// with 在持锁状态下执行 fn
func with(fn func(r *tokenreader.Reader)) {
	mut.Lock()
	defer mut.Unlock()

	once.Do(func() {
		reader = tokenreader.NewSize(source, bufferSize)
	})
	fn(reader)
}

// Read 从标准输入读取下一个 token 并解析为 T
func Read[T any]() (v T, ok bool) {
	with(func(r *tokenreader.Reader) {
		v, ok = tokenreader.Read[T](r)
	})
	return v, ok
}

// Scan 读取成功时写入 *v 并返回 true
//
//	var n int
//	for console.Scan(&n) {
//		...
//	}
func Scan[T any](v *T) (ok bool) {
	with(func(r *tokenreader.Reader) {
		ok = tokenreader.Scan(r, v)
	})
	return ok
}

func ReadToken() (s string, ok bool) {
	with(func(r *tokenreader.Reader) {
		s, ok = r.ReadToken()
	})
	return s, ok
}

func ReadLine() (s string, ok bool) {
	with(func(r *tokenreader.Reader) {
		s, ok = r.ReadLine()
	})
	return s, ok
}

// ReadRune 读取下一个字符 包括空白字符
func ReadRune() (c rune, ok bool) {
	with(func(r *tokenreader.Reader) {
		c, ok = r.ReadRune()
	})
	return c, ok
}

func SkipLine() {
	with(func(r *tokenreader.Reader) {
		r.SkipLine()
	})
}

func Valid() (ok bool) {
	with(func(r *tokenreader.Reader) {
		ok = r.Valid()
	})
	return ok
}

// reset 替换底层数据源 仅供测试使用
func reset(src io.Reader, size int) {
	mut.Lock()
	defer mut.Unlock()

	source = src
	bufferSize = size
	reader = nil
	once = sync.Once{}
}
