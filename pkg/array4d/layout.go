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
package array4d

import "fmt"

// RANK is the (fixed) number of axes of every array.
const RANK = 4

// Extents holds the number of valid coordinate values along each axis.  Axis 0
// is the slowest-varying (outermost) axis, whilst axis 3 is the fastest-varying
// (innermost) axis.
type Extents [RANK]uint

// Coord identifies a single element of an array by its position along each
// axis.
type Coord [RANK]uint

// Product returns the number of elements described by these extents.
func (p Extents) Product() uint {
	return p[0] * p[1] * p[2] * p[3]
}

func (p Extents) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", p[0], p[1], p[2], p[3])
}

func (p Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", p[0], p[1], p[2], p[3])
}

// Layout captures the row-major mapping between coordinates and flat offsets
// for a given set of extents.  The address strides are derived once, when the
// layout is constructed.
type Layout struct {
	// Number of valid coordinate values along each axis.
	extents Extents
	// Flat offset increment for a unit step along each axis.
	strides [RANK]uint
}

// NewLayout constructs a row-major layout for the given extents.
func NewLayout(extents Extents) Layout {
	var strides = [RANK]uint{
		extents[1] * extents[2] * extents[3],
		extents[2] * extents[3],
		extents[3],
		1,
	}
	//
	return Layout{extents, strides}
}

// Extents returns the number of valid coordinate values along each axis.
func (p Layout) Extents() Extents {
	return p.extents
}

// AddressStrides returns the amount by which a flat offset changes when one
// coordinate increases by one, holding the others fixed.
func (p Layout) AddressStrides() [RANK]uint {
	return p.strides
}

// TotalElements returns the number of elements covered by this layout.
func (p Layout) TotalElements() uint {
	return p.extents.Product()
}

// FlatOffset maps a coordinate onto its flat offset.  No bounds checking is
// performed: coordinates outside the extents produce an offset which may alias
// another element, or lie beyond the end of the buffer.
func (p Layout) FlatOffset(pos Coord) uint {
	return pos[0]*p.strides[0] + pos[1]*p.strides[1] + pos[2]*p.strides[2] + pos[3]
}

// Coord maps a flat offset back onto its coordinate.  This is the inverse of
// FlatOffset for offsets in [0, TotalElements()).
func (p Layout) Coord(offset uint) Coord {
	var pos Coord
	//
	for axis := range RANK {
		if p.strides[axis] == 0 {
			// degenerate layout
			continue
		}
		//
		pos[axis] = offset / p.strides[axis]
		offset = offset % p.strides[axis]
	}
	//
	return pos
}

// Contains determines whether every component of the given coordinate lies
// within the corresponding extent.
func (p Layout) Contains(pos Coord) bool {
	for axis := range RANK {
		if pos[axis] >= p.extents[axis] {
			return false
		}
	}
	//
	return true
}

// ContainsRegion determines whether the hyper-rectangle starting at the given
// coordinate, with the given sizes, lies entirely within this layout.  Empty
// regions are contained when their start lies within the extents (or on the
// boundary).
func (p Layout) ContainsRegion(start Coord, sizes Extents) bool {
	for axis := range RANK {
		if start[axis] > p.extents[axis] || sizes[axis] > p.extents[axis]-start[axis] {
			return false
		}
	}
	//
	return true
}
