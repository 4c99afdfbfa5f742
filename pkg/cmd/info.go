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
	"os"

	"github.com/consensys/go-array4d/pkg/array4d"
	"github.com/spf13/cobra"
)

// infoCmd represents the info command for summarising dumps.
var infoCmd = &cobra.Command{
	Use:   "info [flags] dump_file",
	Short: "Summarise the layout of a dump file.",
	Long: `Summarise the layout of a dump file, such as its extents, address
	strides and expected size.  The size of the file on disk is compared
	against the expected size.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 1)
		//
		var (
			s        = getSettings(cmd)
			layout   = array4d.NewLayout(s.extents)
			size     = getHandler(s).ElementSize()
			expected = int64(layout.TotalElements() * size)
			strides  = layout.AddressStrides()
		)
		//
		fmt.Printf("extents:  %s\n", layout.Extents())
		fmt.Printf("strides:  (%d,%d,%d,%d)\n", strides[0], strides[1], strides[2], strides[3])
		fmt.Printf("elements: %d x %s (%d bytes each)\n", layout.TotalElements(), s.element, size)
		fmt.Printf("expected: %d bytes\n", expected)
		//
		info, err := os.Stat(args[0])
		if err != nil {
			fail(err, 4)
		}
		//
		switch {
		case info.Size() < expected:
			fmt.Printf("actual:   %d bytes (short by %d)\n", info.Size(), expected-info.Size())
			os.Exit(5)
		case info.Size() > expected:
			fmt.Printf("actual:   %d bytes (%d trailing)\n", info.Size(), info.Size()-expected)
		default:
			fmt.Printf("actual:   %d bytes\n", info.Size())
		}
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
