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

package common

const (
	// App 应用程序名称
	App = "textin"

	// Version 应用程序版本
	Version = "v0.1.0"

	// DefaultBufferSize 默认的读缓冲区长度
	//
	// 与常见的 buffered reader 默认值保持同一量级 (8KB)
	// 单行超大输入场景下 缓冲区长度决定了每次 refill 的系统调用开销
	DefaultBufferSize = 8000

	// StdinPath 代表标准输入的路径占位符
	StdinPath = "-"
)
