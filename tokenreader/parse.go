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

package tokenreader

import (
	"encoding"
	"reflect"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// ErrUnsupportedType 代表目标类型没有可用的文本解析规则
var ErrUnsupportedType = errors.New("tokenreader: unsupported type")

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

func parseSigned[I signed](s string, bits int) (I, error) {
	i, err := strconv.ParseInt(s, 10, bits)
	return I(i), err
}

func parseUnsigned[U unsigned](s string, bits int) (U, error) {
	u, err := strconv.ParseUint(s, 10, bits)
	return U(u), err
}

// Parse 按照 T 的标准文本格式解析 s
//
// 支持 string / 各宽度的整型 (十进制) / 浮点 / bool / time.Duration
// 以及实现了 encoding.TextUnmarshaler 的类型 (包括 *big.Int 这类指针类型)
func Parse[T any](s string) (T, error) {
	var v T
	var err error

	switch p := any(&v).(type) {
	case *string:
		*p = s
	case *int:
		*p, err = parseSigned[int](s, strconv.IntSize)
	case *int8:
		*p, err = parseSigned[int8](s, 8)
	case *int16:
		*p, err = parseSigned[int16](s, 16)
	case *int32:
		*p, err = parseSigned[int32](s, 32)
	case *int64:
		*p, err = parseSigned[int64](s, 64)
	case *uint:
		*p, err = parseUnsigned[uint](s, strconv.IntSize)
	case *uint8:
		*p, err = parseUnsigned[uint8](s, 8)
	case *uint16:
		*p, err = parseUnsigned[uint16](s, 16)
	case *uint32:
		*p, err = parseUnsigned[uint32](s, 32)
	case *uint64:
		*p, err = parseUnsigned[uint64](s, 64)
	case *uintptr:
		*p, err = parseUnsigned[uintptr](s, strconv.IntSize)
	case *float32:
		var f float64
		f, err = strconv.ParseFloat(s, 32)
		*p = float32(f)
	case *float64:
		*p, err = strconv.ParseFloat(s, 64)
	case *bool:
		*p, err = strconv.ParseBool(s)
	case *time.Duration:
		*p, err = time.ParseDuration(s)
	case encoding.TextUnmarshaler:
		err = p.UnmarshalText([]byte(s))
	default:
		return parseIndirect[T](s)
	}

	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// parseIndirect 处理 T 本身是指针 且其指向的类型实现了 encoding.TextUnmarshaler 的情况
func parseIndirect[T any](s string) (T, error) {
	var zero T
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if rt.Kind() != reflect.Pointer || !rt.Implements(textUnmarshalerType) {
		return zero, errors.Wrapf(ErrUnsupportedType, "%s", rt)
	}

	nv := reflect.New(rt.Elem())
	if err := nv.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
		return zero, err
	}
	return nv.Interface().(T), nil
}

// ReadFunc 读取下一个 token 并使用 parse 解析
//
// 解析失败或 token 被 MaxTokenSize 截断时返回 false 且该 token 已被消费 不会归还
func ReadFunc[T any](r *Reader, parse func(string) (T, error)) (T, bool) {
	var zero T
	s, ok := r.ReadToken()
	if !ok || r.truncated {
		return zero, false
	}

	v, err := parse(s)
	if err != nil {
		return zero, false
	}
	return v, true
}

// Read 读取下一个 token 并按照 T 的标准文本格式解析 参见 Parse
func Read[T any](r *Reader) (T, bool) {
	return ReadFunc(r, Parse[T])
}

// Scan 是 Read 的赋值形式 仅在成功时写入 *v
//
//	for tokenreader.Scan(r, &n) {
//		...
//	}
func Scan[T any](r *Reader, v *T) bool {
	got, ok := Read[T](r)
	if ok {
		*v = got
	}
	return ok
}

func (r *Reader) ReadInt() (int, bool) {
	return Read[int](r)
}

func (r *Reader) ReadInt64() (int64, bool) {
	return Read[int64](r)
}

func (r *Reader) ReadUint64() (uint64, bool) {
	return Read[uint64](r)
}

func (r *Reader) ReadFloat64() (float64, bool) {
	return Read[float64](r)
}

func (r *Reader) ReadBool() (bool, bool) {
	return Read[bool](r)
}
