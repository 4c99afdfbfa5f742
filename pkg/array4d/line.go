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

import "github.com/pkg/errors"

// Line is a one-dimensional view over an array, obtained by varying exactly
// one axis whilst holding the other three fixed.  The ith element of a line
// lives at flat offset Start + i*Stride of the underlying buffer.  A line
// aliases the array it was taken from.
type Line[T any] struct {
	data []T
	// Flat offset of the first element.
	start uint
	// Number of elements in the line.
	length uint
	// Flat offset increment between consecutive elements.
	stride uint
}

// GetLine extracts the line along the given axis which passes through the
// given start coordinate.  The start coordinate must be zero along that axis.
//
// The stride of the line is the product of the extents of axes 1 through axis
// inclusive (or 1 for axis 0).  In general, this differs from the row-major
// address stride of the axis and they coincide only for particular shapes
// (e.g. a line along axis 0 of an array whose inner extents are 1).  The
// formula is retained exactly so that lines remain compatible with existing
// consumers; see GetAxisLine for a line which follows the address stride.
// For most shapes the offsets of the line run past the end of the buffer, in
// which case Line.Get and Line.Values panic.  Callers which cannot rule this
// out should go through Checked.GetLine, or use GetAxisLine.
func (p *Array[T]) GetLine(start Coord, axis uint) (Line[T], error) {
	if err := checkLine(start, axis); err != nil {
		return Line[T]{}, err
	}
	//
	var (
		extents = p.layout.extents
		stride  = uint(1)
	)
	//
	for k := axis; k > 0; k-- {
		stride *= extents[k]
	}
	//
	return Line[T]{p.data, p.layout.FlatOffset(start), extents[axis], stride}, nil
}

// GetAxisLine extracts the line along the given axis which passes through the
// given start coordinate, stepping by the address stride of that axis.  Thus,
// the ith element of the line is the element at the start coordinate with i
// added along the axis.  The preconditions are those of GetLine.
func (p *Array[T]) GetAxisLine(start Coord, axis uint) (Line[T], error) {
	if err := checkLine(start, axis); err != nil {
		return Line[T]{}, err
	}
	//
	return Line[T]{p.data, p.layout.FlatOffset(start), p.layout.extents[axis], p.layout.strides[axis]}, nil
}

func checkLine(start Coord, axis uint) error {
	if axis >= RANK {
		return errors.Wrapf(ErrAxisOutOfRange, "axis %d", axis)
	} else if start[axis] != 0 {
		return errors.Wrapf(ErrInvalidLineOrigin, "coordinate %s along axis %d", start, axis)
	}
	//
	return nil
}

// Start returns the flat offset of the first element of this line.
func (p Line[T]) Start() uint {
	return p.start
}

// Len returns the number of elements in this line.
func (p Line[T]) Len() uint {
	return p.length
}

// Stride returns the flat offset increment between consecutive elements.
func (p Line[T]) Stride() uint {
	return p.stride
}

// Offset returns the flat offset of the ith element of this line.
func (p Line[T]) Offset(i uint) uint {
	return p.start + i*p.stride
}

// Get returns the ith element of this line.
func (p Line[T]) Get(i uint) T {
	return p.data[p.Offset(i)]
}

// Set the ith element of this line, which writes through to the underlying
// array.
func (p Line[T]) Set(i uint, val T) {
	p.data[p.Offset(i)] = val
}

// Values copies out the elements of this line in order.
func (p Line[T]) Values() []T {
	var values = make([]T, p.length)
	//
	for i := range p.length {
		values[i] = p.Get(i)
	}
	//
	return values
}

func (p Line[T]) String() string {
	return FormatElements(p.Values())
}
