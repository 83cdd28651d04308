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
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// UTF8BOM is the utf-8 byte-order marker
var UTF8BOM = []byte{'\xef', '\xbb', '\xbf'}

func isUTF8(label string) bool {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}

// transcode 将 label 编码的数据流转换为 UTF-8
func transcode(r io.Reader, label string) (io.Reader, error) {
	if isUTF8(label) {
		return r, nil
	}

	enc, name := charset.Lookup(label)
	if enc == nil {
		return nil, errors.Errorf("unknown charset %q", label)
	}
	if name == "utf-8" {
		return r, nil
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// bomReader 丢弃数据流开头的 UTF-8 BOM
type bomReader struct {
	r       io.Reader
	checked bool
	head    []byte
}

func newBOMReader(r io.Reader) io.Reader {
	return &bomReader{r: r}
}

func (br *bomReader) Read(p []byte) (int, error) {
	if !br.checked {
		br.checked = true
		buf := make([]byte, len(UTF8BOM))
		n, err := io.ReadFull(br.r, buf)
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			return 0, err
		}
		br.head = buf[:n]
		if bytes.Equal(br.head, UTF8BOM) {
			br.head = nil
		}
	}

	if len(br.head) > 0 {
		n := copy(p, br.head)
		br.head = br.head[n:]
		return n, nil
	}
	return br.r.Read(p)
}
