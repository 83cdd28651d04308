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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/packetd/textin/internal/splitio"
)

type lineRecord struct {
	Line int    `json:"line"`
	Text string `json:"text"`
}

func newLinesCmd(conf *rootCmdConfig) *cobra.Command {
	var (
		skip   int
		number bool
	)

	cmd := &cobra.Command{
		Use:   "lines [path]",
		Short: "Print lines, optionally skipping leading header lines",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := conf.open(cmd, args)
			if err != nil {
				return err
			}
			defer a.close()

			return a.run(cmd.Context(), func() error {
				for i := 0; i < skip; i++ {
					a.reader.SkipLine()
				}
				if skip > 0 && !a.reader.Valid() {
					a.log.Warnf("input ended while skipping %d lines", skip)
				}

				sc := splitio.NewScanner(a.reader, splitio.ModeLines)
				for sc.Scan() {
					var err error
					n := skip + sc.Count()
					switch {
					case conf.JSON:
						err = a.out.WriteJSON(lineRecord{Line: n, Text: sc.Text()})
					case number:
						err = a.out.WriteLine(strconv.Itoa(n) + "\t" + sc.Text())
					default:
						err = a.out.WriteLine(sc.Text())
					}
					if err != nil {
						return err
					}
				}
				return sc.Err()
			})
		},
		Example: "# textin lines --skip 1 --number data.csv",
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "Number of leading lines to discard")
	cmd.Flags().BoolVar(&number, "number", false, "Prefix every line with its 1-based line number")
	return cmd
}
