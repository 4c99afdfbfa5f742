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

// Region describes a hyper-rectangular block of an array as a generalised
// slice: a starting flat offset together with a size and address stride for
// each axis.  A region is only a descriptor; it can be bound to an array to
// obtain an aliasing view (see Array.View).
type Region struct {
	// Flat offset of the first element.
	Start uint
	// Number of elements along each axis.
	Sizes Extents
	// Flat offset increment for a unit step along each axis.
	Strides [RANK]uint
}

// GetRegion constructs the descriptor of the region starting at the given
// coordinate and spanning the given number of elements along each axis.  The
// strides of the region are the address strides of the array, hence the
// region is consistent with full-array addressing.  Sizes are not checked.
func (p *Array[T]) GetRegion(start Coord, sizes Extents) Region {
	return Region{p.layout.FlatOffset(start), sizes, p.layout.strides}
}

// Len returns the number of elements covered by this region.
func (p Region) Len() uint {
	return p.Sizes.Product()
}

// Offset returns the flat offset of the element at the given position,
// relative to the start of this region.
func (p Region) Offset(pos Coord) uint {
	return p.Start + pos[0]*p.Strides[0] + pos[1]*p.Strides[1] + pos[2]*p.Strides[2] + pos[3]*p.Strides[3]
}

// Indices enumerates the flat offsets covered by this region, with axis 0
// outermost and axis 3 innermost.
func (p Region) Indices() []uint {
	var (
		indices = make([]uint, 0, p.Len())
		s       = p.Sizes
	)
	//
	for i := range s[0] {
		for j := range s[1] {
			for k := range s[2] {
				for l := range s[3] {
					indices = append(indices, p.Offset(Coord{i, j, k, l}))
				}
			}
		}
	}
	//
	return indices
}

func (p Region) String() string {
	return fmt.Sprintf("{start=%d, sizes=%s, strides=(%d,%d,%d,%d)}", p.Start, p.Sizes,
		p.Strides[0], p.Strides[1], p.Strides[2], p.Strides[3])
}

// RegionView binds a region descriptor to the buffer of an array.  Reads and
// writes through the view go directly to the array.
type RegionView[T any] struct {
	data   []T
	region Region
}

// View binds a region descriptor to this array.  The view aliases this array
// and must not outlive it.
func (p *Array[T]) View(region Region) RegionView[T] {
	return RegionView[T]{p.data, region}
}

// Region returns the descriptor of this view.
func (p RegionView[T]) Region() Region {
	return p.region
}

// Get returns the element at the given position, relative to the start of
// the region.
func (p RegionView[T]) Get(pos Coord) T {
	return p.data[p.region.Offset(pos)]
}

// Set the element at the given position, relative to the start of the
// region.
func (p RegionView[T]) Set(pos Coord, val T) {
	p.data[p.region.Offset(pos)] = val
}

// Fill overwrites every element of the region with the given value.
func (p RegionView[T]) Fill(val T) {
	for _, offset := range p.region.Indices() {
		p.data[offset] = val
	}
}

// Values copies out the elements of the region in row-major order.
func (p RegionView[T]) Values() []T {
	var (
		indices = p.region.Indices()
		values  = make([]T, len(indices))
	)
	//
	for i, offset := range indices {
		values[i] = p.data[offset]
	}
	//
	return values
}

func (p RegionView[T]) String() string {
	return FormatElements(p.Values())
}
