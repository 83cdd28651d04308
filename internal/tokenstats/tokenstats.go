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

package tokenstats

import (
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"

	"github.com/packetd/textin/tokenreader"
)

// Summary 统计结果
type Summary struct {
	Tokens   int64   `json:"tokens"`
	Numeric  int64   `json:"numeric"`
	Runes    int64   `json:"runes"`
	MinRunes int     `json:"minRunes"`
	MaxRunes int     `json:"maxRunes"`
	AvgRunes float64 `json:"avgRunes"`
	Distinct int     `json:"distinct"`

	// DistinctCapped 为 true 时 Distinct 只是下界
	DistinctCapped bool `json:"distinctCapped"`
}

// Stats 统计 token 数量 / 长度 / 去重数
//
// 去重使用 xxhash 摘要而非原文 内存占用与 token 长度无关
type Stats struct {
	maxDistinct int
	seen        map[uint64]struct{}
	capped      bool
	sum         Summary
}

// New 创建并返回 *Stats 实例 maxDistinct <= 0 代表不限制去重集合大小
func New(maxDistinct int) *Stats {
	return &Stats{
		maxDistinct: maxDistinct,
		seen:        make(map[uint64]struct{}),
	}
}

func (s *Stats) Add(token string) {
	n := utf8.RuneCountInString(token)
	if s.sum.Tokens == 0 || n < s.sum.MinRunes {
		s.sum.MinRunes = n
	}
	if n > s.sum.MaxRunes {
		s.sum.MaxRunes = n
	}
	s.sum.Tokens++
	s.sum.Runes += int64(n)

	if _, err := tokenreader.Parse[float64](token); err == nil {
		s.sum.Numeric++
	}

	h := xxhash.Sum64String(token)
	if _, ok := s.seen[h]; ok {
		return
	}
	if s.maxDistinct > 0 && len(s.seen) >= s.maxDistinct {
		s.capped = true
		return
	}
	s.seen[h] = struct{}{}
}

// Consume 读取 r 中剩余的全部 token
func (s *Stats) Consume(r *tokenreader.Reader) {
	for {
		token, ok := r.ReadToken()
		if !ok {
			return
		}
		s.Add(token)
	}
}

func (s *Stats) Summary() Summary {
	sum := s.sum
	sum.Distinct = len(s.seen)
	sum.DistinctCapped = s.capped
	if sum.Tokens > 0 {
		sum.AvgRunes = float64(sum.Runes) / float64(sum.Tokens)
	}
	return sum
}
