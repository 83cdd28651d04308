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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/packetd/textin/common"
)

var (
	readBytesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: common.App,
			Name:      "source_read_bytes_total",
			Help:      "Source read bytes total",
		},
		[]string{"source"},
	)

	readCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: common.App,
			Name:      "source_read_calls_total",
			Help:      "Source read calls total",
		},
		[]string{"source"},
	)

	readErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: common.App,
			Name:      "source_read_errors_total",
			Help:      "Source read errors total (io.EOF excluded)",
		},
		[]string{"source"},
	)
)

// instrumentedReader 统计每次 Read 的调用次数与字节数
type instrumentedReader struct {
	r      io.Reader
	bytes  prometheus.Counter
	calls  prometheus.Counter
	errors prometheus.Counter
}

func instrument(r io.Reader, name string) io.Reader {
	return &instrumentedReader{
		r:      r,
		bytes:  readBytesTotal.WithLabelValues(name),
		calls:  readCallsTotal.WithLabelValues(name),
		errors: readErrorsTotal.WithLabelValues(name),
	}
}

func (ir *instrumentedReader) Read(p []byte) (int, error) {
	n, err := ir.r.Read(p)
	ir.calls.Inc()
	if n > 0 {
		ir.bytes.Add(float64(n))
	}
	if err != nil && err != io.EOF {
		ir.errors.Inc()
	}
	return n, err
}
