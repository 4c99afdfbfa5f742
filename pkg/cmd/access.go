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
	"github.com/consensys/go-array4d/pkg/array4d"
	"github.com/spf13/cobra"
)

// getCmd represents the get command for reading elements.
var getCmd = &cobra.Command{
	Use:   "get [flags] dump_file coord1 coord2 ...",
	Short: "Print elements of a dump file.",
	Long: `Print the elements of a dump file at the given coordinates.
	Each coordinate is written as a comma-separated list (e.g. 0,1,0,2).`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			checkArgs(cmd, args, 2)
		}
		//
		var (
			s      = getSettings(cmd)
			coords = make([]array4d.Coord, len(args)-1)
		)
		//
		for i, arg := range args[1:] {
			coords[i] = parseCoord(arg)
		}
		//
		items, err := getHandler(s).Get(s, args[0], coords)
		if err != nil {
			fail(err, 4)
		}
		//
		printItems(items)
	},
}

// setCmd represents the set command for writing a single element.
var setCmd = &cobra.Command{
	Use:   "set [flags] dump_file coord value",
	Short: "Update one element of a dump file.",
	Long:  `Update the element of a dump file at the given coordinate.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 3)
		//
		s := getSettings(cmd)
		//
		if err := getHandler(s).Set(s, args[0], parseCoord(args[1]), args[2]); err != nil {
			fail(err, 4)
		}
	},
}

// fillCmd represents the fill command for overwriting every element.
var fillCmd = &cobra.Command{
	Use:   "fill [flags] dump_file value",
	Short: "Overwrite every element of a dump file.",
	Long: `Overwrite every element of a dump file with the given value.  The
	file is created if it does not already exist.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 2)
		//
		s := getSettings(cmd)
		//
		if err := getHandler(s).Fill(s, args[0], args[1]); err != nil {
			fail(err, 4)
		}
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(fillCmd)
}
