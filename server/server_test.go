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

package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packetd/textin/confengine"
)

func TestNewDisabled(t *testing.T) {
	s, err := New(confengine.Empty())
	assert.NoError(t, err)
	assert.Nil(t, s)
}

func TestRoutes(t *testing.T) {
	cfg, err := confengine.LoadContent([]byte("server:\n  enabled: true\n  pprof: true\n"))
	require.NoError(t, err)

	s, err := New(cfg)
	require.NoError(t, err)
	require.NotNil(t, s)

	tests := []struct {
		method string
		path   string
		code   int
	}{
		{method: http.MethodGet, path: "/metrics", code: http.StatusOK},
		{method: http.MethodGet, path: "/debug/pprof/cmdline", code: http.StatusOK},
		{method: http.MethodPost, path: "/metrics", code: http.StatusMethodNotAllowed},
		{method: http.MethodGet, path: "/notfound", code: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.Handler().ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestStartStop(t *testing.T) {
	cfg, err := confengine.LoadContent([]byte("server:\n  enabled: true\n  address: 127.0.0.1:0\n"))
	require.NoError(t, err)

	s, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, s.Timeout())
	require.NoError(t, s.Start())

	rsp, err := http.Get("http://" + s.Addr().String() + "/metrics")
	require.NoError(t, err)
	b, err := io.ReadAll(rsp.Body)
	assert.NoError(t, err)
	assert.NoError(t, rsp.Body.Close())
	assert.Contains(t, string(b), "go_goroutines")

	assert.NoError(t, s.Stop(context.Background()))
}
