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

// Package source 根据配置打开字节数据源
//
// 数据源按 文件 -> 解压 -> BOM -> 字符集转换 -> 指标统计 的顺序逐层包装
// 最终交给 tokenreader.Reader 独占使用
package source

import (
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/packetd/textin/logger"
)

// Source 是打开后的数据源 实现 io.ReadCloser
type Source struct {
	name    string
	codec   string
	r       io.Reader
	closers []io.Closer
}

// Open 按照 conf 打开数据源
func Open(conf Config) (*Source, error) {
	var (
		f       io.Reader
		closers []io.Closer
	)

	if conf.IsStdin() {
		f = os.Stdin // 不负责关闭 stdin
	} else {
		file, err := os.Open(conf.Path)
		if err != nil {
			return nil, errors.Wrapf(err, "open source %s", conf.Path)
		}
		f = file
		closers = append(closers, file)
	}

	src, err := wrap(f, conf, closers)
	if err != nil {
		_ = closeAll(closers)
		return nil, err
	}
	logger.Debugf("source %s opened (codec=%s, charset=%q, stripBOM=%v)", src.name, src.codec, conf.Charset, conf.StripBOM)
	return src, nil
}

// NewReader 以 conf 描述的方式包装一个已有的 io.Reader (conf.Path 仅用于推断 codec 和命名)
func NewReader(r io.Reader, conf Config) (*Source, error) {
	return wrap(r, conf, nil)
}

func wrap(r io.Reader, conf Config, closers []io.Closer) (*Source, error) {
	codec := conf.ResolveCodec()
	dr, closer, err := decompress(codec, r, conf.Options)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		closers = append(closers, closer)
	}

	if conf.StripBOM {
		dr = newBOMReader(dr)
	}
	if dr, err = transcode(dr, conf.Charset); err != nil {
		return nil, err
	}

	name := conf.Name()
	return &Source{
		name:    name,
		codec:   codec,
		r:       instrument(dr, name),
		closers: closers,
	}, nil
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Codec() string {
	return s.codec
}

// Read 实现 io.Reader 接口
func (s *Source) Read(p []byte) (int, error) {
	return s.r.Read(p)
}

// Close 由外向内关闭所有层 并汇总错误
func (s *Source) Close() error {
	err := closeAll(s.closers)
	s.closers = nil
	return err
}

func closeAll(closers []io.Closer) error {
	var errs error
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].Close(); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs
}
