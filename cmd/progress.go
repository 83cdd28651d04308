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
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

const (
	progressInterval = time.Second
	progressTimeout  = 5 * time.Second
)

// progress 读取进度快照 通过 /progress 暴露
type progress struct {
	Source  string    `json:"source"`
	Codec   string    `json:"codec"`
	Records int64     `json:"records"`
	Time    time.Time `json:"time"`
}

func (a *app) snapshot() progress {
	return progress{
		Source:  a.src.Name(),
		Codec:   a.src.Codec(),
		Records: a.out.Records(),
		Time:    time.Now(),
	}
}

// publishProgress 周期性广播进度 直到 done 关闭
func (a *app) publishProgress(done <-chan struct{}) {
	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			a.feed.Publish(a.snapshot())
		}
	}
}

// serveProgress 等待下一次进度广播 ?timeout= 指定最长等待时间
//
// 等待时间必须小于 waitLimit (server.timeout) 否则响应会在写超时之后才发出
func (a *app) serveProgress(w http.ResponseWriter, r *http.Request) {
	timeout := progressTimeout
	if a.waitLimit > 0 && timeout >= a.waitLimit {
		timeout = a.waitLimit / 2
	}
	if v := r.URL.Query().Get("timeout"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			http.Error(w, "invalid timeout: "+v, http.StatusBadRequest)
			return
		}
		if a.waitLimit > 0 && d >= a.waitLimit {
			http.Error(w, fmt.Sprintf("timeout %s must be below %s", d, a.waitLimit), http.StatusBadRequest)
			return
		}
		timeout = d
	}

	q := a.feed.Subscribe(1)
	defer a.feed.Unsubscribe(q)

	p, ok := q.PopTimeout(timeout)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(p); err != nil {
		a.log.Warnf("failed to write progress: %v", err)
	}
}
