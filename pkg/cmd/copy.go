// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"

	"github.com/consensys/go-array4d/pkg/array4d"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// copyCmd represents the copy command for duplicating dumps, or regions of them.
var copyCmd = &cobra.Command{
	Use:   "copy [flags] src_file dst_file",
	Short: "Copy a dump file, or a region of it.",
	Long: `Copy the hyper-rectangular region of a dump file with the given start
	coordinate and sizes into a new dump file.  The extents of the new dump are
	the sizes of the region which, by default, covers the whole of the source.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 2)
		//
		var (
			s                  = getSettings(cmd)
			start, _           = GetQuad(cmd, "start")
			quad, sizesChanged = GetQuad(cmd, "sizes")
			sizes              = array4d.Extents(quad)
		)
		//
		if !sizesChanged {
			for i := range array4d.RANK {
				sizes[i] = s.extents[i] - min(start[i], s.extents[i])
			}
		}
		//
		if err := getHandler(s).Copy(s, args[0], args[1], start, sizes); err != nil {
			fail(err, 4)
		}
		//
		log.Debugf("copied region %s+%s of %s", array4d.Coord(start), sizes, args[0])
		fmt.Printf("created %s %s (%s)\n", args[1], sizes, s.element)
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
	copyCmd.Flags().Var(&quadValue{}, "start", "start coordinate of the region")
	copyCmd.Flags().Var(&quadValue{}, "sizes", "number of elements along each axis (default: to the end)")
}
