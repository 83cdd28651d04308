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

package source

import (
	"path/filepath"
	"strings"

	"github.com/packetd/textin/common"
)

const (
	CodecAuto   = "auto"
	CodecNone   = "none"
	CodecGzip   = "gzip"
	CodecZstd   = "zstd"
	CodecSnappy = "snappy"
	CodecXz     = "xz"
)

type Config struct {
	// Path 文件路径 为空或者为 "-" 时读取标准输入
	Path string `config:"path"`

	// Codec 压缩格式 默认 auto 即根据文件后缀判断
	Codec string `config:"codec"`

	// Charset 源数据编码 为空或 utf-8 时不做转换
	Charset string `config:"charset"`

	// StripBOM 是否丢弃开头的 UTF-8 BOM
	StripBOM bool `config:"stripBOM"`

	// Options 各 codec 的个性化参数
	//
	// zstd: concurrency (int)
	// gzip: multistream (bool)
	Options common.Options `config:"options"`
}

func (c Config) IsStdin() bool {
	return c.Path == "" || c.Path == common.StdinPath
}

// Name 返回数据源名称 用于日志及指标标签
func (c Config) Name() string {
	if c.IsStdin() {
		return "stdin"
	}
	return filepath.Base(c.Path)
}

var extCodecs = map[string]string{
	".gz":     CodecGzip,
	".gzip":   CodecGzip,
	".zst":    CodecZstd,
	".zstd":   CodecZstd,
	".sz":     CodecSnappy,
	".snappy": CodecSnappy,
	".xz":     CodecXz,
}

// ResolveCodec 返回实际生效的压缩格式
func (c Config) ResolveCodec() string {
	codec := strings.ToLower(strings.TrimSpace(c.Codec))
	if codec != "" && codec != CodecAuto {
		return codec
	}
	if c.IsStdin() {
		return CodecNone
	}
	if v, ok := extCodecs[strings.ToLower(filepath.Ext(c.Path))]; ok {
		return v
	}
	return CodecNone
}
