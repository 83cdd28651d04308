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
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/packetd/textin/common"
	"github.com/packetd/textin/logger"
)

func newRootCmd() *cobra.Command {
	var conf rootCmdConfig

	rootCmd := &cobra.Command{
		Use:           common.App,
		Short:         "Stream tokens and lines out of arbitrarily large text inputs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if _, err := maxprocs.Set(maxprocs.Logger(logger.Debugf)); err != nil {
				logger.Warnf("failed to set GOMAXPROCS: %v", err)
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&conf.ConfigPath, "config", "", "Configuration file path, flags set explicitly take precedence")
	flags.IntVar(&conf.BufferSize, "buffer-size", common.DefaultBufferSize, "Read buffer size in bytes")
	flags.IntVar(&conf.MaxTokenSize, "max-token-size", 0, "Maximum bytes kept per token or line, 0 for unlimited")
	flags.StringVar(&conf.Codec, "codec", "auto", "Source compression [auto|none|gzip|zstd|snappy|xz]")
	flags.StringVar(&conf.Charset, "charset", "", "Source charset, empty for UTF-8")
	flags.BoolVar(&conf.StripBOM, "strip-bom", false, "Drop a leading UTF-8 byte-order mark")
	flags.StringVar(&conf.LogLevel, "log-level", "warn", "Logger level [debug|info|warn|error]")
	flags.StringVar(&conf.LogFile, "log-file", "", "Write logs to a rotating file instead of stderr")
	flags.StringVar(&conf.Address, "server.address", "", "Expose /metrics on this address while reading")
	flags.BoolVar(&conf.Pprof, "server.pprof", false, "Expose pprof routes on the metrics server")
	flags.BoolVar(&conf.JSON, "json", false, "Emit JSON lines instead of plain text")

	rootCmd.AddCommand(
		newTokensCmd(&conf),
		newLinesCmd(&conf),
		newSumCmd(&conf),
		newStatsCmd(&conf),
		newVersionCmd(),
	)
	return rootCmd
}

// open 加载配置并打开 args[0] 指定的数据源 未指定时读取标准输入
func (c *rootCmdConfig) open(cmd *cobra.Command, args []string) (*app, error) {
	cfg, err := c.Load(cmd.Flags().Changed)
	if err != nil {
		return nil, err
	}

	var path string
	if len(args) > 0 {
		path = args[0]
	}
	return newApp(cfg, path, cmd.InOrStdin(), cmd.OutOrStdout())
}

// Execute 执行根命令 失败时以非零状态码退出
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", common.App, err)
		os.Exit(1)
	}
}
