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

package common

import (
	"github.com/spf13/cast"
)

// Options 是自由格式的键值配置 用于不同 codec 的个性化参数
type Options map[string]any

func NewOptions() Options {
	return make(Options)
}

func (o Options) Has(k string) bool {
	_, ok := o[k]
	return ok
}

func (o Options) GetInt(k string) (int, error) {
	return cast.ToIntE(o[k])
}

func (o Options) GetBool(k string) (bool, error) {
	return cast.ToBoolE(o[k])
}

func (o Options) GetString(k string) (string, error) {
	return cast.ToStringE(o[k])
}

// GetIntOr 读取整型配置 不存在或者类型不匹配时返回 def
func (o Options) GetIntOr(k string, def int) int {
	if !o.Has(k) {
		return def
	}
	i, err := o.GetInt(k)
	if err != nil {
		return def
	}
	return i
}

// GetBoolOr 读取布尔配置 不存在或者类型不匹配时返回 def
func (o Options) GetBoolOr(k string, def bool) bool {
	if !o.Has(k) {
		return def
	}
	b, err := o.GetBool(k)
	if err != nil {
		return def
	}
	return b
}

func (o Options) Merge(k string, v any) {
	o[k] = v
}
