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
	"github.com/consensys/go-array4d/pkg/config"
	"github.com/consensys/go-array4d/pkg/element"
	"github.com/consensys/go-array4d/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetUint gets an expected unsigned integer flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetQuad gets an expected quad flag (e.g. a coordinate), reporting whether it
// was explicitly given.
func GetQuad(cmd *cobra.Command, flag string) ([array4d.RANK]uint, bool) {
	return lookupQuad(cmd.Flags(), flag)
}

// settings captures how a dump file should be interpreted.
type settings struct {
	// Extents of the dump.
	extents array4d.Extents
	// Element type name.
	element string
	// Access the dump through a memory map.
	mmap bool
	// Flush memory-mapped writes to the storage device.
	sync bool
}

// Determine the settings for a command from its YAML descriptor (if given),
// overridden by any explicitly given flags.
func getSettings(cmd *cobra.Command) settings {
	var (
		s        settings
		filename = GetString(cmd, "config")
	)
	// Configure log level
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	s.element = GetString(cmd, "type")
	//
	if filename != "" {
		desc, err := config.Load(filename)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		log.Debugf("using descriptor %s: extents %v, element %s", filename, desc.Extents, desc.Element)
		//
		s.extents = desc.Shape()
		s.mmap = desc.Mmap
		//
		if !cmd.Flags().Changed("type") {
			s.element = desc.Element
		}
	}
	//
	if extents, changed := GetQuad(cmd, "extents"); changed {
		s.extents = extents
	} else if filename == "" {
		fmt.Println("no extents given (use --extents or --config)")
		os.Exit(2)
	}
	//
	if cmd.Flags().Changed("mmap") {
		s.mmap = GetFlag(cmd, "mmap")
	}
	//
	s.sync = GetFlag(cmd, "sync")
	//
	if !element.IsKnown(s.element) {
		fmt.Printf("unknown element type \"%s\"\n", s.element)
		os.Exit(3)
	}
	//
	return s
}

// Parse a coordinate given as a command-line argument, or exit.
func parseCoord(arg string) array4d.Coord {
	quad, err := ParseQuad(arg)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return quad
}

// Report an error and exit with the given code.
func fail(err error, code int) {
	fmt.Println(err)
	os.Exit(code)
}

// Print items to stdout, wrapped to the width of the terminal.
func printItems(items []string) {
	if err := util.PrintItems(os.Stdout, items, util.TerminalWidth()); err != nil {
		fail(err, 4)
	}
}

// Require exactly n positional arguments, or print usage and exit.
func checkArgs(cmd *cobra.Command, args []string, n int) {
	if len(args) != n {
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}
}
