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
	"io"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"github.com/ulikunitz/xz"

	"github.com/packetd/textin/common"
)

// decompressFunc 包装 r 返回解压后的数据流 closer 可以为空
type decompressFunc func(r io.Reader, opts common.Options) (io.Reader, io.Closer, error)

var codecs = map[string]decompressFunc{
	CodecNone: func(r io.Reader, _ common.Options) (io.Reader, io.Closer, error) {
		return r, nil, nil
	},
	CodecGzip:   newGzipReader,
	CodecZstd:   newZstdReader,
	CodecSnappy: newSnappyReader,
	CodecXz:     newXzReader,
}

func newGzipReader(r io.Reader, opts common.Options) (io.Reader, io.Closer, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, nil, err
	}
	zr.Multistream(opts.GetBoolOr("multistream", true))
	return zr, zr, nil
}

func newZstdReader(r io.Reader, opts common.Options) (io.Reader, io.Closer, error) {
	var decOpts []zstd.DOption
	if n := opts.GetIntOr("concurrency", 0); n > 0 {
		decOpts = append(decOpts, zstd.WithDecoderConcurrency(n))
	}
	dec, err := zstd.NewReader(r, decOpts...)
	if err != nil {
		return nil, nil, err
	}
	rc := dec.IOReadCloser()
	return rc, rc, nil
}

func newSnappyReader(r io.Reader, _ common.Options) (io.Reader, io.Closer, error) {
	return snappy.NewReader(r), nil, nil
}

func newXzReader(r io.Reader, _ common.Options) (io.Reader, io.Closer, error) {
	xr, err := xz.NewReader(r)
	if err != nil {
		return nil, nil, err
	}
	return xr, nil, nil
}

func decompress(codec string, r io.Reader, opts common.Options) (io.Reader, io.Closer, error) {
	fn, ok := codecs[codec]
	if !ok {
		return nil, nil, errors.Errorf("unsupported codec %q", codec)
	}
	dr, closer, err := fn(r, opts)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "create %s reader", codec)
	}
	return dr, closer, nil
}
