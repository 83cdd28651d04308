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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type readerConfig struct {
	BufferSize   int `config:"bufferSize"`
	MaxTokenSize int `config:"maxTokenSize"`
}

const content = `
reader:
  bufferSize: 16
server:
  enabled: true
logger:
  disabled: true
`

func TestLoadContent(t *testing.T) {
	cfg, err := LoadContent([]byte(content))
	require.NoError(t, err)

	assert.True(t, cfg.Has("reader"))
	assert.False(t, cfg.Has("source"))
	assert.True(t, cfg.Enabled("server"))
	assert.False(t, cfg.Enabled("reader"))
	assert.True(t, cfg.Disabled("logger"))

	conf := readerConfig{MaxTokenSize: 64}
	assert.NoError(t, cfg.UnpackChild("reader", &conf))
	assert.Equal(t, readerConfig{BufferSize: 16, MaxTokenSize: 64}, conf)

	// 不存在的节点保留默认值
	missing := readerConfig{BufferSize: 8}
	assert.NoError(t, cfg.UnpackChild("source", &missing))
	assert.Equal(t, 8, missing.BufferSize)
}

func TestLoadConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textin.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfigPath(path)
	require.NoError(t, err)

	child, err := cfg.Child("reader")
	require.NoError(t, err)

	var conf readerConfig
	assert.NoError(t, child.Unpack(&conf))
	assert.Equal(t, 16, conf.BufferSize)

	_, err = LoadConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	base, err := LoadContent([]byte(content))
	require.NoError(t, err)

	override, err := LoadContent([]byte("reader:\n  bufferSize: 32\n"))
	require.NoError(t, err)
	require.NoError(t, base.Merge(override))

	var conf readerConfig
	assert.NoError(t, base.UnpackChild("reader", &conf))
	assert.Equal(t, 32, conf.BufferSize)
	assert.True(t, base.Enabled("server"))
}

func TestEmpty(t *testing.T) {
	cfg := Empty()
	assert.False(t, cfg.Has("reader"))

	conf := readerConfig{BufferSize: 4}
	assert.NoError(t, cfg.UnpackChild("reader", &conf))
	assert.Equal(t, 4, conf.BufferSize)
}

func TestFromMap(t *testing.T) {
	cfg, err := FromMap(map[string]any{
		"reader.bufferSize": 128,
		"server.enabled":    true,
	})
	require.NoError(t, err)

	var conf readerConfig
	assert.NoError(t, cfg.UnpackChild("reader", &conf))
	assert.Equal(t, 128, conf.BufferSize)
	assert.True(t, cfg.Enabled("server"))
}
