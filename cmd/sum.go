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

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/packetd/textin/logger"
	"github.com/packetd/textin/tokenreader"
)

type sumResult[T int64 | float64] struct {
	Sum     T     `json:"sum"`
	Count   int64 `json:"count"`
	Skipped int64 `json:"skipped"`
}

var errSumOverflow = errors.New("sum overflows int64")

// addInt64 返回 a+b 溢出时 ok 为 false
func addInt64(a, b int64) (int64, bool) {
	s := a + b
	if (s > a) != (b > 0) {
		return 0, false
	}
	return s, true
}

// sumTokens 累加所有能解析为 T 的 token 其余 token 以及被截断的 token 计入 Skipped
//
// 整型累加溢出时返回 errSumOverflow
func sumTokens[T int64 | float64](r *tokenreader.Reader, log logger.Logger) (sumResult[T], error) {
	var res sumResult[T]
	for {
		s, ok := r.ReadToken()
		if !ok {
			return res, nil
		}
		if r.Truncated() {
			res.Skipped++
			log.Debugf("skip truncated token %q", s)
			continue
		}

		v, err := tokenreader.Parse[T](s)
		if err != nil {
			res.Skipped++
			log.Debugf("skip token %q: %v", s, err)
			continue
		}

		switch p := any(&res.Sum).(type) {
		case *int64:
			sum, ok := addInt64(*p, any(v).(int64))
			if !ok {
				return res, errors.Wrapf(errSumOverflow, "after %d tokens", res.Count)
			}
			*p = sum
		case *float64:
			*p += any(v).(float64)
		}
		res.Count++
	}
}

func writeSum[T int64 | float64](a *app, res sumResult[T], err error, asJSON bool) error {
	if err != nil {
		return err
	}
	if res.Skipped > 0 {
		a.log.Warnf("%d tokens skipped", res.Skipped)
	}
	if asJSON {
		return a.out.WriteJSON(res)
	}
	return a.out.WriteLine(fmt.Sprint(res.Sum))
}

func newSumCmd(conf *rootCmdConfig) *cobra.Command {
	var typ string

	cmd := &cobra.Command{
		Use:   "sum [path]",
		Short: "Sum every token that parses as --type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if typ != "int" && typ != "float" {
				return errors.Errorf("unsupported type %q, want one of [int|float]", typ)
			}

			a, err := conf.open(cmd, args)
			if err != nil {
				return err
			}
			defer a.close()

			return a.run(cmd.Context(), func() error {
				if typ == "int" {
					res, err := sumTokens[int64](a.reader, a.log)
					return writeSum(a, res, err, conf.JSON)
				}
				res, err := sumTokens[float64](a.reader, a.log)
				return writeSum(a, res, err, conf.JSON)
			})
		},
		Example: "# textin sum --type float measurements.txt.zst",
	}

	cmd.Flags().StringVar(&typ, "type", "int", "Token type [int|float]")
	return cmd
}
