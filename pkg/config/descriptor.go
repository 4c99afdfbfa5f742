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
package config

import (
	"os"

	"github.com/consensys/go-array4d/pkg/array4d"
	"github.com/consensys/go-array4d/pkg/element"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Descriptor records the shape of a raw dump file.  Since dumps are
// headerless, the descriptor must travel alongside them.
type Descriptor struct {
	// Extents of the four axes, outermost first.
	Extents []uint `yaml:"extents"`
	// Element type name (see element.Names).
	Element string `yaml:"element"`
	// Access the dump through a memory map.
	Mmap bool `yaml:"mmap,omitempty"`
}

// Load reads and validates a descriptor from the given YAML file.
func Load(filename string) (*Descriptor, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read descriptor %#v", filename)
	}
	//
	return Parse(bytes)
}

// Parse parses and validates a descriptor from YAML.
func Parse(bytes []byte) (*Descriptor, error) {
	var desc Descriptor
	//
	if err := yaml.Unmarshal(bytes, &desc); err != nil {
		return nil, errors.Wrap(err, "invalid descriptor")
	}
	//
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	//
	return &desc, nil
}

// Save writes this descriptor as YAML into the given file.
func (p *Descriptor) Save(filename string) error {
	bytes, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	//
	return errors.Wrapf(os.WriteFile(filename, bytes, 0644), "failed to write descriptor %#v", filename)
}

// Validate checks that this descriptor names exactly four extents and a known
// element type.
func (p *Descriptor) Validate() error {
	if len(p.Extents) != array4d.RANK {
		return errors.Errorf("expected %d extents (found %d)", array4d.RANK, len(p.Extents))
	} else if !element.IsKnown(p.Element) {
		return errors.Errorf("unknown element type \"%s\"", p.Element)
	}
	//
	return nil
}

// Shape returns the extents of this descriptor.  The descriptor is assumed to
// be valid.
func (p *Descriptor) Shape() array4d.Extents {
	var extents array4d.Extents
	//
	copy(extents[:], p.Extents)
	//
	return extents
}

// NewDescriptor constructs a descriptor for the given shape and element type.
func NewDescriptor(extents array4d.Extents, elementType string) *Descriptor {
	return &Descriptor{extents[:], elementType, false}
}
