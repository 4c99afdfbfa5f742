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

// Array is a dense, row-major 4-dimensional array backed by a single
// contiguous buffer.  The buffer is allocated once, at construction, and is
// never resized.  Elements must be of a fixed-size type which holds no
// pointers (e.g. integers, floats or fixed-width field elements) since the
// buffer is persisted as raw bytes.
//
// No operation is safe for concurrent use.  Lines and regions obtained from an
// array alias its buffer and must not outlive it.
type Array[T any] struct {
	layout Layout
	// The elements of this array in flat (row-major) order.
	data []T
}

// New constructs an array with the given extents, whose elements are all
// initialised to the zero value of T.
func New[T any](extents Extents) *Array[T] {
	var layout = NewLayout(extents)
	//
	return &Array[T]{layout, make([]T, layout.TotalElements())}
}

// Layout returns the layout used to address this array.
func (p *Array[T]) Layout() Layout {
	return p.layout
}

// Extents returns the number of valid coordinate values along each axis.
func (p *Array[T]) Extents() Extents {
	return p.layout.extents
}

// AddressStrides returns the per-axis flat offset increment of this array.
func (p *Array[T]) AddressStrides() [RANK]uint {
	return p.layout.strides
}

// TotalSize returns the number of elements in this array.
func (p *Array[T]) TotalSize() uint {
	return uint(len(p.data))
}

// Data returns the underlying buffer.  This aliases the array, hence writes
// into the returned slice are visible through the array.
func (p *Array[T]) Data() []T {
	return p.data
}

// Get returns the element at the given coordinate.
func (p *Array[T]) Get(pos Coord) T {
	return p.data[p.layout.FlatOffset(pos)]
}

// GetFlat returns the element at the given flat offset.
func (p *Array[T]) GetFlat(offset uint) T {
	return p.data[offset]
}

// Set the element at the given coordinate, overwriting the original value.
func (p *Array[T]) Set(pos Coord, val T) {
	p.data[p.layout.FlatOffset(pos)] = val
}

// SetFlat sets the element at the given flat offset, overwriting the original
// value.
func (p *Array[T]) SetFlat(offset uint, val T) {
	p.data[offset] = val
}

// Fill overwrites every element of this array with the given value.
func (p *Array[T]) Fill(val T) {
	for i := range p.data {
		p.data[i] = val
	}
}

// Clone makes a deep copy of this array.
func (p *Array[T]) Clone() *Array[T] {
	ndata := make([]T, len(p.data))
	// Copy over the data
	copy(ndata, p.data)
	//
	return &Array[T]{p.layout, ndata}
}
