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
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/packetd/textin/tokenreader"
)

type tokenRecord struct {
	Token any `json:"token"`
}

func parseAny[T any](s string) (any, error) {
	v, err := tokenreader.Parse[T](s)
	return v, err
}

var tokenParsers = map[string]func(string) (any, error){
	"string":   parseAny[string],
	"int":      parseAny[int64],
	"uint":     parseAny[uint64],
	"float":    parseAny[float64],
	"bool":     parseAny[bool],
	"duration": parseDuration,
}

func parseDuration(s string) (any, error) {
	d, err := tokenreader.Parse[time.Duration](s)
	if err != nil {
		return nil, err
	}
	return d.String(), nil
}

func tokenParser(typ string) (func(string) (any, error), error) {
	parse, ok := tokenParsers[typ]
	if !ok {
		types := make([]string, 0, len(tokenParsers))
		for k := range tokenParsers {
			types = append(types, k)
		}
		sort.Strings(types)
		return nil, errors.Errorf("unsupported type %q, want one of [%s]", typ, strings.Join(types, "|"))
	}
	return parse, nil
}

func newTokensCmd(conf *rootCmdConfig) *cobra.Command {
	var typ string

	cmd := &cobra.Command{
		Use:   "tokens [path]",
		Short: "Print whitespace-delimited tokens, dropping those that do not parse as --type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parse, err := tokenParser(typ)
			if err != nil {
				return err
			}

			a, err := conf.open(cmd, args)
			if err != nil {
				return err
			}
			defer a.close()

			return a.run(cmd.Context(), func() error {
				var invalid int
				for {
					s, ok := a.reader.ReadToken()
					if !ok {
						break
					}

					if typ != "string" && a.reader.Truncated() {
						invalid++
						a.log.Debugf("drop truncated token %q", s)
						continue
					}

					v, err := parse(s)
					if err != nil {
						invalid++
						a.log.Debugf("drop token %q: %v", s, err)
						continue
					}

					if conf.JSON {
						err = a.out.WriteJSON(tokenRecord{Token: v})
					} else {
						err = a.out.WriteLine(s)
					}
					if err != nil {
						return err
					}
				}
				if invalid > 0 {
					a.log.Warnf("%d tokens could not be parsed as %s", invalid, typ)
				}
				return nil
			})
		},
		Example: "# textin tokens --type int numbers.txt.gz",
	}

	cmd.Flags().StringVar(&typ, "type", "string", "Token type [string|int|uint|float|bool|duration]")
	return cmd
}
