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

// Checked wraps an array so that every coordinate and region is validated
// against its extents before use.  This is intended for callers which cannot
// otherwise guarantee their inputs, and keeps validation off the unchecked
// paths of Array.
type Checked[T any] struct {
	array *Array[T]
}

// NewChecked wraps the given array with bounds checking.
func NewChecked[T any](array *Array[T]) Checked[T] {
	return Checked[T]{array}
}

// Unchecked returns the underlying array.
func (p Checked[T]) Unchecked() *Array[T] {
	return p.array
}

// Get returns the element at the given coordinate, or an error if the
// coordinate is out of range.
func (p Checked[T]) Get(pos Coord) (T, error) {
	var zero T
	//
	if err := p.checkCoord(pos); err != nil {
		return zero, err
	}
	//
	return p.array.Get(pos), nil
}

// Set the element at the given coordinate, or return an error if the
// coordinate is out of range.
func (p Checked[T]) Set(pos Coord, val T) error {
	if err := p.checkCoord(pos); err != nil {
		return err
	}
	//
	p.array.Set(pos, val)
	//
	return nil
}

// GetFlat returns the element at the given flat offset, or an error if the
// offset is out of range.
func (p Checked[T]) GetFlat(offset uint) (T, error) {
	var zero T
	//
	if offset >= p.array.TotalSize() {
		return zero, errors.Wrapf(ErrCoordOutOfRange, "flat offset %d (size %d)", offset, p.array.TotalSize())
	}
	//
	return p.array.GetFlat(offset), nil
}

// GetLine extracts a line as for Array.GetLine, additionally requiring that
// the fixed coordinates lie within the extents and that every offset of the
// line lies within the buffer.
func (p Checked[T]) GetLine(start Coord, axis uint) (Line[T], error) {
	if err := p.checkLineStart(start, axis); err != nil {
		return Line[T]{}, err
	}
	//
	line, err := p.array.GetLine(start, axis)
	if err != nil {
		return Line[T]{}, err
	} else if n := line.Len(); n > 0 && line.Offset(n-1) >= p.array.TotalSize() {
		return Line[T]{}, errors.Wrapf(ErrCoordOutOfRange, "line from %s along axis %d ends at offset %d (size %d)",
			start, axis, line.Offset(n-1), p.array.TotalSize())
	}
	//
	return line, nil
}

// GetAxisLine extracts a line as for Array.GetAxisLine, additionally requiring
// that the fixed coordinates lie within the extents.
func (p Checked[T]) GetAxisLine(start Coord, axis uint) (Line[T], error) {
	if err := p.checkLineStart(start, axis); err != nil {
		return Line[T]{}, err
	}
	//
	return p.array.GetAxisLine(start, axis)
}

// GetRegion constructs a region descriptor, or returns an error if the region
// extends beyond the extents.
func (p Checked[T]) GetRegion(start Coord, sizes Extents) (Region, error) {
	if err := p.checkRegion(start, sizes); err != nil {
		return Region{}, err
	}
	//
	return p.array.GetRegion(start, sizes), nil
}

// GetRegionIndirect constructs a gather list, or returns an error if the
// region extends beyond the extents.
func (p Checked[T]) GetRegionIndirect(start Coord, sizes Extents) (IndirectView[T], error) {
	if err := p.checkRegion(start, sizes); err != nil {
		return IndirectView[T]{}, err
	}
	//
	return p.array.GetRegionIndirect(start, sizes), nil
}

func (p Checked[T]) checkCoord(pos Coord) error {
	if !p.array.layout.Contains(pos) {
		return errors.Wrapf(ErrCoordOutOfRange, "coordinate %s (extents %s)", pos, p.array.layout.extents)
	}
	//
	return nil
}

// The varying axis is checked by the line extractors themselves.
func (p Checked[T]) checkLineStart(start Coord, axis uint) error {
	var extents = p.array.layout.extents
	//
	for k := range uint(RANK) {
		if k != axis && start[k] >= extents[k] {
			return errors.Wrapf(ErrCoordOutOfRange, "coordinate %s (extents %s)", start, extents)
		}
	}
	//
	return nil
}

func (p Checked[T]) checkRegion(start Coord, sizes Extents) error {
	if !p.array.layout.ContainsRegion(start, sizes) {
		extents := p.array.layout.extents
		//
		return errors.Wrapf(ErrRegionOutOfRange, "region %s+%s (extents %s)", start, sizes, extents)
	}
	//
	return nil
}
