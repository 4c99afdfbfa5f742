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

	"github.com/consensys/go-array4d/pkg/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// createCmd represents the create command for constructing new dumps.
var createCmd = &cobra.Command{
	Use:   "create [flags] dump_file",
	Short: "Create a new dump file.",
	Long: `Create a new dump file with the given shape and element type.
	Elements are zero unless a fill value is given, or --iota is set in
	which case each element holds its own flat offset.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 1)
		//
		var (
			s          = getSettings(cmd)
			fill       = GetString(cmd, "fill")
			sequential = GetFlag(cmd, "iota")
			descriptor = GetString(cmd, "descriptor")
		)
		//
		if err := getHandler(s).Create(s, args[0], fill, sequential); err != nil {
			fail(err, 4)
		}
		//
		log.Debugf("created %s with extents %s", args[0], s.extents)
		// Write descriptor (if requested)
		if descriptor != "" {
			desc := config.NewDescriptor(s.extents, s.element)
			desc.Mmap = s.mmap
			//
			if err := desc.Save(descriptor); err != nil {
				fail(err, 4)
			}
		}
		//
		fmt.Printf("created %s %s (%s)\n", args[0], s.extents, s.element)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().String("fill", "", "initial value for every element")
	createCmd.Flags().Bool("iota", false, "initialise each element with its flat offset")
	createCmd.Flags().String("descriptor", "", "also write a YAML descriptor to the given file")
}
