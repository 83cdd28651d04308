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
	"github.com/spf13/cobra"

	"github.com/packetd/textin/internal/tokenstats"
)

func newStatsCmd(conf *rootCmdConfig) *cobra.Command {
	var maxDistinct int

	cmd := &cobra.Command{
		Use:   "stats [path]",
		Short: "Print token statistics as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := conf.open(cmd, args)
			if err != nil {
				return err
			}
			defer a.close()

			return a.run(cmd.Context(), func() error {
				stats := tokenstats.New(maxDistinct)
				stats.Consume(a.reader)
				return a.out.WriteJSON(stats.Summary())
			})
		},
		Example: "# textin stats --max-distinct 100000 words.txt.xz",
	}

	cmd.Flags().IntVar(&maxDistinct, "max-distinct", 1<<20, "Upper bound of the distinct token set, 0 for unlimited")
	return cmd
}
