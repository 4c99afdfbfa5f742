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
package util

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// TerminalWidth returns the width of the terminal attached to stdout, or 0 if
// stdout is not a terminal.
func TerminalWidth() int {
	fd := int(os.Stdout.Fd())
	//
	if !term.IsTerminal(fd) {
		return 0
	}
	//
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	//
	return width
}

// WrapItems joins the given items with single spaces, breaking onto a new
// line whenever the next item would exceed the given width.  A width of 0
// disables wrapping.  Items longer than the width occupy a line of their own.
func WrapItems(items []string, width int) []string {
	var (
		lines []string
		sb    strings.Builder
	)
	//
	for _, item := range items {
		if sb.Len() > 0 && width > 0 && sb.Len()+1+len(item) > width {
			lines = append(lines, sb.String())
			sb.Reset()
		}
		//
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		//
		sb.WriteString(item)
	}
	//
	if sb.Len() > 0 || len(lines) == 0 {
		lines = append(lines, sb.String())
	}
	//
	return lines
}

// PrintItems writes the given items to w, wrapped to the given width.
func PrintItems(w io.Writer, items []string, width int) error {
	for _, line := range WrapItems(items, width) {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	//
	return nil
}
