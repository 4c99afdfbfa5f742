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
	"runtime/debug"

	"github.com/consensys/go-array4d/pkg/element"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "array4d",
	Short: "A toolbox for raw 4-dimensional array dumps.",
	Long: `A toolbox for inspecting and manipulating headerless, row-major
	dumps of 4-dimensional arrays.  The shape and element type of a dump
	are given either by flags or by a YAML descriptor.`,
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("array4d ")
			if Version != "" {
				// Built via "make"
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Printf("%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
		} else {
			fmt.Println(cmd.UsageString())
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().StringP("config", "c", "", "YAML descriptor giving the shape of the dump")
	rootCmd.PersistentFlags().Var(&quadValue{}, "extents", "extents of the four axes (e.g. 2,3,4,5)")
	rootCmd.PersistentFlags().StringP("type", "t", element.F64,
		fmt.Sprintf("element type (one of %v)", element.Names()))
	rootCmd.PersistentFlags().Bool("mmap", false, "access the dump through a memory map")
	rootCmd.PersistentFlags().Bool("sync", false, "flush memory-mapped writes to disk before exiting")
}
