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

	"github.com/spf13/cobra"
)

// lineCmd represents the line command for extracting lines.
var lineCmd = &cobra.Command{
	Use:   "line [flags] dump_file",
	Short: "Print a line of a dump file.",
	Long: `Print the line of a dump file obtained by varying one axis, whilst
	holding the others fixed at the start coordinate.  The start coordinate
	must be zero along the varying axis.  By default, the line steps by the
	product of the extents of axes 1 through the varying axis; use
	--address-stride to step by the address stride of that axis instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 1)
		//
		var (
			s             = getSettings(cmd)
			start, _      = GetQuad(cmd, "start")
			axis          = GetUint(cmd, "axis")
			addressStride = GetFlag(cmd, "address-stride")
		)
		//
		items, err := getHandler(s).Line(s, args[0], start, axis, addressStride)
		if err != nil {
			fail(err, 4)
		}
		//
		printItems(items)
	},
}

// regionCmd represents the region command for extracting regions.
var regionCmd = &cobra.Command{
	Use:   "region [flags] dump_file",
	Short: "Print a region of a dump file.",
	Long: `Print the hyper-rectangular region of a dump file with the given start
	coordinate and sizes.  By default, elements are printed in row-major order
	of the region; use --indirect to print them in the order of the region's
	gather list.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 1)
		//
		var (
			s        = getSettings(cmd)
			start, _ = GetQuad(cmd, "start")
			sizes, _ = GetQuad(cmd, "sizes")
			indirect = GetFlag(cmd, "indirect")
		)
		//
		items, err := getHandler(s).Region(s, args[0], start, sizes, indirect)
		if err != nil {
			fail(err, 4)
		}
		//
		if len(items) == 0 {
			fmt.Println("(empty region)")
			return
		}
		//
		printItems(items)
	},
}

func init() {
	rootCmd.AddCommand(lineCmd)
	rootCmd.AddCommand(regionCmd)
	lineCmd.Flags().Var(&quadValue{}, "start", "start coordinate of the line (e.g. 0,1,2,0)")
	lineCmd.Flags().Uint("axis", 3, "axis along which the line varies")
	lineCmd.Flags().Bool("address-stride", false, "step by the address stride of the axis")
	regionCmd.Flags().Var(&quadValue{}, "start", "start coordinate of the region")
	regionCmd.Flags().Var(&quadValue{1, 1, 1, 1}, "sizes", "number of elements along each axis")
	regionCmd.Flags().Bool("indirect", false, "print in gather-list order")
}
