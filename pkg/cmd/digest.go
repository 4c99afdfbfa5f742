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
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// digestCmd represents the digest command for hashing dumps.
var digestCmd = &cobra.Command{
	Use:   "digest [flags] dump_file1 dump_file2 ...",
	Short: "Print the BLAKE3 digest of one or more dump files.",
	Long: `Print the BLAKE3 digest of the contents of one or more dump files.
	Only the bytes covered by the given shape are hashed.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		s := getSettings(cmd)
		//
		for _, filename := range args {
			digest, err := getHandler(s).Digest(s, filename)
			if err != nil {
				fail(err, 4)
			}
			//
			fmt.Printf("%s  %s\n", hex.EncodeToString(digest[:]), filename)
		}
	},
}

func init() {
	rootCmd.AddCommand(digestCmd)
}
