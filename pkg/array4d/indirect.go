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

// IndirectView is a materialised list of flat offsets into an array, usable
// for gather/scatter access without per-access stride arithmetic.  The list
// holds addresses rather than values, hence it still aliases the live buffer.
type IndirectView[T any] struct {
	data    []T
	indices []uint
}

// GetRegionIndirect materialises the flat offsets of the region starting at
// the given coordinate and spanning the given number of elements along each
// axis.  The element at region position (i,j,k,l) is stored in slot
// flat(l,k,j,i) of a row-major layout over the reversed sizes
// (sizes[3],sizes[2],sizes[1],sizes[0]).  Thus, axis 0 varies fastest
// through the list.  Sizes are not checked.
func (p *Array[T]) GetRegionIndirect(start Coord, sizes Extents) IndirectView[T] {
	var (
		base    = p.layout.FlatOffset(start)
		gstride = p.layout.strides
		local   = NewLayout(Extents{sizes[3], sizes[2], sizes[1], sizes[0]})
		indices = make([]uint, sizes.Product())
	)
	//
	for i := range sizes[0] {
		for j := range sizes[1] {
			for k := range sizes[2] {
				for l := range sizes[3] {
					slot := local.FlatOffset(Coord{l, k, j, i})
					indices[slot] = base + i*gstride[0] + j*gstride[1] + k*gstride[2] + l*gstride[3]
				}
			}
		}
	}
	//
	return IndirectView[T]{p.data, indices}
}

// Indices returns the gather list of this view.
func (p IndirectView[T]) Indices() []uint {
	return p.indices
}

// Len returns the number of elements in this view.
func (p IndirectView[T]) Len() uint {
	return uint(len(p.indices))
}

// Get returns the ith element named by this view.
func (p IndirectView[T]) Get(i uint) T {
	return p.data[p.indices[i]]
}

// Set the ith element named by this view, which writes through to the
// underlying array.
func (p IndirectView[T]) Set(i uint, val T) {
	p.data[p.indices[i]] = val
}

// Gather copies out the named elements in list order.
func (p IndirectView[T]) Gather() []T {
	var values = make([]T, len(p.indices))
	//
	for i, offset := range p.indices {
		values[i] = p.data[offset]
	}
	//
	return values
}

// Scatter writes the given values to the named positions in list order.  Any
// values beyond the length of this view are ignored.
func (p IndirectView[T]) Scatter(values []T) {
	for i, offset := range p.indices {
		if i >= len(values) {
			return
		}
		//
		p.data[offset] = values[i]
	}
}

func (p IndirectView[T]) String() string {
	return FormatElements(p.Gather())
}
