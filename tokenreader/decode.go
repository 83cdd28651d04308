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
	"unicode/utf8"
)

const (
	maskCont = 0x3F // 10xxxxxx 中的有效位
	maskTag  = 0xC0

	tagCont  = 0x80 // 10xxxxxx
	tagTwo   = 0xC0 // 110xxxxx
	tagThree = 0xE0 // 1110xxxx
	tagFour  = 0xF0 // 11110xxx
)

// ReadRune 解码并返回下一个字符 (Unicode scalar value)
//
// 以下情况返回 false:
//   - 数据源耗尽或出错 (此时 Valid 为 false)
//   - 首字节是一个孤立的续字节 (10xxxxxx) 或者 0xF8 及以上
//   - 多字节序列在中途遇到数据源耗尽 已读取的字节不会被归还
//   - 组装出的值是代理区间或超过 U+10FFFF
//
// 解码失败本身不会使 Reader 失效 调用方可以继续读取
// 续字节的前缀位以及过长编码 (overlong) 不做校验
func (r *Reader) ReadRune() (rune, bool) {
	c0, ok := r.nextByte()
	if !ok {
		return 0, false
	}

	var code rune
	var need int
	switch {
	case c0 < utf8.RuneSelf:
		return rune(c0), true
	case c0&maskTag == tagCont:
		return 0, false
	case c0&0xE0 == tagTwo:
		code, need = rune(c0&0x1F), 1
	case c0&0xF0 == tagThree:
		code, need = rune(c0&0x0F), 2
	case c0&0xF8 == tagFour:
		code, need = rune(c0&0x07), 3
	default:
		return 0, false
	}

	for i := 0; i < need; i++ {
		c, ok := r.nextByte()
		if !ok {
			return 0, false
		}
		// 先取低 6 位再移位
		code = code<<6 | rune(c&maskCont)
	}

	if !utf8.ValidRune(code) {
		return 0, false
	}
	return code, true
}
