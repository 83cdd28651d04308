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

package cmd

import (
	"bufio"
	"io"
	"sync"
	"sync/atomic"

	"github.com/goccy/go-json"
	"github.com/valyala/bytebufferpool"
)

// recordWriter 带缓冲的输出 支持纯文本与 JSON Lines 两种格式
//
// 中断时 Flush 可能与读取协程的写入并发 因此所有操作都需持锁
type recordWriter struct {
	mut sync.Mutex
	w   *bufio.Writer
	n   atomic.Int64
}

func newRecordWriter(w io.Writer) *recordWriter {
	return &recordWriter{w: bufio.NewWriterSize(w, 64<<10)}
}

func (rw *recordWriter) WriteLine(s string) error {
	rw.mut.Lock()
	defer rw.mut.Unlock()

	if _, err := rw.w.WriteString(s); err != nil {
		return err
	}
	if err := rw.w.WriteByte('\n'); err != nil {
		return err
	}
	rw.n.Add(1)
	return nil
}

// WriteJSON 将 v 编码为一行 JSON
func (rw *recordWriter) WriteJSON(v any) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	rw.mut.Lock()
	defer rw.mut.Unlock()

	if _, err := rw.w.Write(buf.B); err != nil {
		return err
	}
	rw.n.Add(1)
	return nil
}

// Records 返回已写出的记录数
func (rw *recordWriter) Records() int64 {
	return rw.n.Load()
}

func (rw *recordWriter) Flush() error {
	rw.mut.Lock()
	defer rw.mut.Unlock()

	return rw.w.Flush()
}
