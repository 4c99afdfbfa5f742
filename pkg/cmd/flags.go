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
	"strconv"
	"strings"

	"github.com/consensys/go-array4d/pkg/array4d"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// quadValue is a flag value holding one unsigned integer per axis, written
// as a comma-separated list (e.g. "0,1,0,2").
type quadValue [array4d.RANK]uint

func (p *quadValue) String() string {
	var parts = make([]string, array4d.RANK)
	//
	for i, v := range p {
		parts[i] = strconv.FormatUint(uint64(v), 10)
	}
	//
	return strings.Join(parts, ",")
}

func (p *quadValue) Set(text string) error {
	quad, err := ParseQuad(text)
	if err != nil {
		return err
	}
	//
	*p = quad
	//
	return nil
}

func (p *quadValue) Type() string {
	return "quad"
}

// ParseQuad parses a comma-separated list of exactly four unsigned integers.
func ParseQuad(text string) ([array4d.RANK]uint, error) {
	var (
		quad  [array4d.RANK]uint
		parts = strings.Split(text, ",")
	)
	//
	if len(parts) != array4d.RANK {
		return quad, errors.Errorf("expected %d comma-separated values (found \"%s\")", array4d.RANK, text)
	}
	//
	for i, part := range parts {
		val, err := strconv.ParseUint(strings.TrimSpace(part), 10, 0)
		if err != nil {
			return quad, errors.Errorf("invalid value \"%s\" in \"%s\"", part, text)
		}
		//
		quad[i] = uint(val)
	}
	//
	return quad, nil
}

// lookupQuad returns the value of a quad flag, and whether it was explicitly
// given.
func lookupQuad(flags *pflag.FlagSet, name string) ([array4d.RANK]uint, bool) {
	flag := flags.Lookup(name)
	if flag == nil {
		panic(fmt.Sprintf("unknown flag \"%s\"", name))
	}
	//
	quad, ok := flag.Value.(*quadValue)
	if !ok {
		panic(fmt.Sprintf("flag \"%s\" is not a quad", name))
	}
	//
	return *quad, flag.Changed
}
