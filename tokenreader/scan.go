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

package tokenreader

import (
	"unicode"
)

// ReadToken 读取下一个以空白字符分隔的 token
//
// 前导空白会被跳过 token 之后的第一个空白字符会被消费并丢弃
// 解码失败与数据结束同样会终止 token 没有读到任何字符时返回 false
// 超出 MaxTokenSize 的部分仍被消费 此时 Truncated 返回 true
func (r *Reader) ReadToken() (string, bool) {
	r.acc.Reset()
	r.truncated = false
	var started bool
	for {
		c, ok := r.ReadRune()
		if !ok {
			break
		}
		if unicode.IsSpace(c) {
			if started {
				break
			}
			continue
		}
		started = true
		if !r.acc.WriteRune(c) {
			r.truncated = true
		}
	}

	if !started {
		return "", false
	}
	return r.acc.Text(), true
}

// ReadLine 读取直到 '\n' 为止的内容 '\n' 会被消费但不包含在结果中
//
// 只有在数据源已失效并且没有读到任何字符时才返回 false
// 因此空行会返回 ("", true) '\r' 不做特殊处理
func (r *Reader) ReadLine() (string, bool) {
	r.acc.Reset()
	r.truncated = false
	var started bool
	for {
		c, ok := r.ReadRune()
		if !ok {
			break
		}
		if c == '\n' {
			return r.acc.Text(), true
		}
		started = true
		if !r.acc.WriteRune(c) {
			r.truncated = true
		}
	}

	if !started && r.errored {
		return "", false
	}
	return r.acc.Text(), true
}

// SkipLine 丢弃直到 '\n' (含) 为止的内容 常用于跳过表头
func (r *Reader) SkipLine() {
	for {
		c, ok := r.ReadRune()
		if !ok || c == '\n' {
			return
		}
	}
}
