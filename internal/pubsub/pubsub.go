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

package pubsub

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Queue 订阅者持有的有界队列 队列满时新消息被丢弃
type Queue[T any] struct {
	id     string
	ch     chan T
	closed atomic.Bool
}

func newQueue[T any](size int) *Queue[T] {
	if size <= 0 {
		size = 1
	}
	return &Queue[T]{
		id: uuid.New().String(),
		ch: make(chan T, size),
	}
}

// ID 队列唯一标识
func (q *Queue[T]) ID() string {
	return q.id
}

// PopTimeout 弹出一个元素 阻塞直到有元素 / 超时 / 队列关闭
func (q *Queue[T]) PopTimeout(timeout time.Duration) (T, bool) {
	var zero T
	if q.closed.Load() {
		return zero, false
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case v, ok := <-q.ch:
		return v, ok
	case <-timer.C:
		return zero, false
	}
}

// Push 推送一个元素 非阻塞
func (q *Queue[T]) Push(v T) {
	if q.closed.Load() {
		return
	}

	select {
	case q.ch <- v:
	default:
	}
}

func (q *Queue[T]) close() {
	if q.closed.CompareAndSwap(false, true) {
		close(q.ch)
	}
}

// PubSub 将消息广播至所有订阅队列
type PubSub[T any] struct {
	mut    sync.RWMutex
	queues map[string]*Queue[T]
}

func New[T any]() *PubSub[T] {
	return &PubSub[T]{
		queues: make(map[string]*Queue[T]),
	}
}

func (p *PubSub[T]) Num() int {
	p.mut.RLock()
	defer p.mut.RUnlock()

	return len(p.queues)
}

func (p *PubSub[T]) Subscribe(size int) *Queue[T] {
	p.mut.Lock()
	defer p.mut.Unlock()

	q := newQueue[T](size)
	p.queues[q.ID()] = q
	return q
}

func (p *PubSub[T]) Publish(v T) {
	p.mut.RLock()
	defer p.mut.RUnlock()

	for _, q := range p.queues {
		q.Push(v)
	}
}

// Unsubscribe 移除并关闭 q 关闭后 Push 不再生效
func (p *PubSub[T]) Unsubscribe(q *Queue[T]) {
	p.mut.Lock()
	defer p.mut.Unlock()

	delete(p.queues, q.ID())
	q.close()
}
