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
	"github.com/packetd/textin/tokenreader"
)

type Mode uint8

const (
	ModeTokens Mode = iota
	ModeLines
)

func (m Mode) String() string {
	switch m {
	case ModeTokens:
		return "tokens"
	case ModeLines:
		return "lines"
	}
	return "unknown"
}

// Scanner 以 bufio.Scanner 的风格迭代 tokenreader.Reader 中的 token 或者行
//
//	sc := splitio.NewScanner(r, splitio.ModeLines)
//	for sc.Scan() {
//		fmt.Println(sc.Text())
//	}
type Scanner struct {
	r    *tokenreader.Reader
	mode Mode
	text string
	n    int
}

// NewScanner 创建并返回 *Scanner 实例
func NewScanner(r *tokenreader.Reader, mode Mode) *Scanner {
	return &Scanner{
		r:    r,
		mode: mode,
	}
}

// Scan 读取下一个元素 没有更多数据时返回 false
func (s *Scanner) Scan() bool {
	var ok bool
	switch s.mode {
	case ModeLines:
		s.text, ok = s.r.ReadLine()
	default:
		s.text, ok = s.r.ReadToken()
	}
	if !ok {
		s.text = ""
		return false
	}
	s.n++
	return true
}

// Text 返回最近一次 Scan 读取到的内容
func (s *Scanner) Text() string {
	return s.text
}

// Count 返回成功 Scan 的次数
func (s *Scanner) Count() int {
	return s.n
}

// Err 返回数据源错误 正常结束时为 nil
func (s *Scanner) Err() error {
	return s.r.Err()
}
