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
	"context"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/packetd/textin/confengine"
	"github.com/packetd/textin/internal/pubsub"
	"github.com/packetd/textin/internal/rescue"
	"github.com/packetd/textin/internal/sigs"
	"github.com/packetd/textin/logger"
	"github.com/packetd/textin/server"
	"github.com/packetd/textin/source"
	"github.com/packetd/textin/tokenreader"
)

// app 持有一次命令执行所需的全部资源
type app struct {
	src    *source.Source
	reader *tokenreader.Reader
	srv    *server.Server
	out    *recordWriter
	log    logger.Logger
	feed   *pubsub.PubSub[progress]
	done   chan struct{}

	// waitLimit /progress 最长等待时间的上界 (不含) 0 代表不限制
	waitLimit time.Duration

	interrupted bool
}

// newApp 按照配置打开 path 对应的数据源 path 为空时读取标准输入
func newApp(cfg *confengine.Config, path string, stdin io.Reader, stdout io.Writer) (*app, error) {
	var logOpt logger.Options
	if err := cfg.UnpackChild("logger", &logOpt); err != nil {
		return nil, err
	}
	logger.SetOptions(logOpt)

	var srcConf source.Config
	if err := cfg.UnpackChild("source", &srcConf); err != nil {
		return nil, err
	}
	srcConf.Path = path

	var readerConf tokenreader.Config
	if err := cfg.UnpackChild("reader", &readerConf); err != nil {
		return nil, err
	}

	var (
		src *source.Source
		err error
	)
	if srcConf.IsStdin() && stdin != nil {
		src, err = source.NewReader(stdin, srcConf)
	} else {
		src, err = source.Open(srcConf)
	}
	if err != nil {
		return nil, err
	}

	srv, err := server.New(cfg)
	if err != nil {
		_ = src.Close()
		return nil, err
	}

	a := &app{
		src:    src,
		reader: tokenreader.NewWithConfig(src, readerConf),
		srv:    srv,
		out:    newRecordWriter(stdout),
		log:    logger.With("source", src.Name()),
		feed:   pubsub.New[progress](),
		done:   make(chan struct{}),
	}
	if srv != nil {
		a.waitLimit = srv.Timeout()
		srv.RegisterGetRoute("/progress", a.serveProgress)
		if err := srv.Start(); err != nil {
			_ = src.Close()
			return nil, err
		}
		go a.publishProgress(a.done)
	}

	a.log.Infof("reading with codec=%s bufferSize=%d", src.Codec(), readerConf.BufferSize)
	return a, nil
}

var errInterrupted = errors.New("interrupted")

// run 在后台执行 fn 收到终止信号时停止等待并刷新已有输出
//
// 阻塞在数据源上的读取无法被打断 因此信号到达后直接返回 由进程退出回收
func (a *app) run(ctx context.Context, fn func() error) error {
	ctx, cancel := sigs.WithTerminate(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- rescue.Run(fn)
	}()

	var err error
	select {
	case err = <-done:
		if rerr := a.reader.Err(); rerr != nil && err == nil {
			err = errors.Wrapf(rerr, "read %s", a.src.Name())
		}
	case <-ctx.Done():
		a.interrupted = true
		a.log.Warnf("interrupted")
		err = errInterrupted
	}

	if ferr := a.out.Flush(); ferr != nil && err == nil {
		err = errors.Wrap(ferr, "flush output")
	}
	return err
}

func (a *app) close() {
	close(a.done)

	// 被中断时读取协程可能仍持有 reader
	if !a.interrupted {
		if err := a.reader.Close(); err != nil {
			a.log.Warnf("failed to close source: %v", err)
		}
	}
	if a.srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := a.srv.Stop(ctx); err != nil {
			a.log.Warnf("failed to stop server: %v", err)
		}
	}
	_ = logger.Sync()
}
