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
	"bytes"
	"text/template"

	"github.com/pkg/errors"

	"github.com/packetd/textin/confengine"
)

// rootCmdConfig 所有子命令共享的参数
type rootCmdConfig struct {
	ConfigPath   string
	BufferSize   int
	MaxTokenSize int
	Codec        string
	Charset      string
	StripBOM     bool
	LogLevel     string
	LogFile      string
	Address      string
	Pprof        bool
	JSON         bool
}

const configTemplate = `
logger:
  console: {{ if .LogFile }}false{{ else }}true{{ end }}
  level: {{ .LogLevel }}
  filename: {{ printf "%q" .LogFile }}
  maxSize: 100
  maxAge: 7
  maxBackups: 3

reader:
  bufferSize: {{ .BufferSize }}
  maxTokenSize: {{ .MaxTokenSize }}

source:
  codec: {{ .Codec }}
  charset: {{ printf "%q" .Charset }}
  stripBOM: {{ .StripBOM }}

server:
  enabled: {{ if .Address }}true{{ else }}false{{ end }}
  address: {{ printf "%q" .Address }}
  pprof: {{ .Pprof }}
`

var tpl = template.Must(template.New("Config").Parse(configTemplate))

// Yaml 将命令行参数渲染为配置文件内容
func (c *rootCmdConfig) Yaml() ([]byte, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, c); err != nil {
		return nil, errors.Wrap(err, "render config")
	}
	return buf.Bytes(), nil
}

// Load 加载 --config 指定的文件 命令行中显式设置的参数优先
func (c *rootCmdConfig) Load(changed func(name string) bool) (*confengine.Config, error) {
	b, err := c.Yaml()
	if err != nil {
		return nil, err
	}
	flagsCfg, err := confengine.LoadContent(b)
	if err != nil {
		return nil, err
	}
	if c.ConfigPath == "" {
		return flagsCfg, nil
	}

	fileCfg, err := confengine.LoadConfigPath(c.ConfigPath)
	if err != nil {
		return nil, err
	}

	// 仅将用户显式指定的命令行参数覆盖到配置文件之上
	overrides, err := confengine.FromMap(c.overrides(changed))
	if err != nil {
		return nil, err
	}
	if err := fileCfg.Merge(overrides); err != nil {
		return nil, errors.Wrap(err, "merge flags into config")
	}
	return fileCfg, nil
}

type flagValue struct {
	path  string
	value any
}

func (c *rootCmdConfig) overrides(changed func(name string) bool) map[string]any {
	flags := map[string]flagValue{
		"buffer-size":    {path: "reader.bufferSize", value: c.BufferSize},
		"max-token-size": {path: "reader.maxTokenSize", value: c.MaxTokenSize},
		"codec":          {path: "source.codec", value: c.Codec},
		"charset":        {path: "source.charset", value: c.Charset},
		"strip-bom":      {path: "source.stripBOM", value: c.StripBOM},
		"log-level":      {path: "logger.level", value: c.LogLevel},
		"log-file":       {path: "logger.filename", value: c.LogFile},
		"server.address": {path: "server.address", value: c.Address},
		"server.pprof":   {path: "server.pprof", value: c.Pprof},
	}

	values := make(map[string]any)
	for name, fv := range flags {
		if changed(name) {
			values[fv.path] = fv.value
		}
	}
	if changed("log-file") && c.LogFile != "" {
		values["logger.console"] = false
	}
	if changed("server.address") && c.Address != "" {
		values["server.enabled"] = true
	}
	return values
}
