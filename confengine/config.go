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

package confengine

import (
	"fmt"

	"github.com/elastic/go-ucfg"
	"github.com/elastic/go-ucfg/yaml"
	"github.com/pkg/errors"
)

var configOpts = []ucfg.Option{
	ucfg.PathSep("."),
}

// Config 是对 ucfg.Config 的封装 并提供一些简便的操作函数
type Config struct {
	conf *ucfg.Config
}

func New(conf *ucfg.Config) *Config {
	return &Config{conf: conf}
}

// Empty 返回一个不含任何配置项的 Config 各模块会使用默认值
func Empty() *Config {
	return New(ucfg.New())
}

func (c *Config) Has(s string) bool {
	ok, err := c.conf.Has(s, -1, configOpts...)
	if err != nil {
		return false
	}
	return ok
}

func (c *Config) Child(s string) (*Config, error) {
	content, err := c.conf.Child(s, -1, configOpts...)
	if err != nil {
		return nil, err
	}
	return &Config{conf: content}, nil
}

func (c *Config) Unpack(to any) error {
	return c.conf.Unpack(to)
}

func (c *Config) Disabled(s string) bool {
	ok, err := c.conf.Bool(fmt.Sprintf("%s.disabled", s), -1, configOpts...)
	if err != nil {
		return false
	}
	return ok
}

func (c *Config) Enabled(s string) bool {
	ok, err := c.conf.Bool(fmt.Sprintf("%s.enabled", s), -1, configOpts...)
	if err != nil {
		return false
	}
	return ok
}

// UnpackChild 将 s 节点解析至 to 节点不存在时保留 to 的默认值
func (c *Config) UnpackChild(s string, to any) error {
	if !c.Has(s) {
		return nil
	}
	content, err := c.conf.Child(s, -1, configOpts...)
	if err != nil {
		return errors.Wrapf(err, "lookup section %q", s)
	}
	if err := content.Unpack(to); err != nil {
		return errors.Wrapf(err, "unpack section %q", s)
	}
	return nil
}

// Merge 将 other 的配置覆盖到当前配置上
func (c *Config) Merge(other *Config) error {
	return c.conf.Merge(other.conf, configOpts...)
}

// FromMap 使用 "a.b.c" 形式的路径构建配置
func FromMap(m map[string]any) (*Config, error) {
	config, err := ucfg.NewFrom(m, configOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "load config map")
	}
	return New(config), nil
}

func LoadConfigPath(path string) (*Config, error) {
	config, err := yaml.NewConfigWithFile(path, configOpts...)
	if err != nil {
		return nil, errors.Wrapf(err, "load config file %s", path)
	}
	return New(config), nil
}

func LoadContent(b []byte) (*Config, error) {
	config, err := yaml.NewConfig(b, configOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "load config content")
	}
	return New(config), nil
}
