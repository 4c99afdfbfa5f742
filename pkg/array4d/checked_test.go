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

import (
	"testing"

	"github.com/consensys/go-array4d/pkg/util/assert"
)

func Test_Checked_00(t *testing.T) {
	arr := NewChecked(newIota[int](Extents{2, 3, 4, 5}))
	//
	val, err := arr.Get(Coord{1, 2, 3, 4})
	assert.NoError(t, err)
	assert.Equal(t, 119, val)
	//
	_, err = arr.Get(Coord{2, 0, 0, 0})
	assert.ErrorIs(t, err, ErrCoordOutOfRange)
	//
	_, err = arr.GetFlat(120)
	assert.ErrorIs(t, err, ErrCoordOutOfRange)
}

func Test_Checked_01(t *testing.T) {
	arr := NewChecked(newIota[int](Extents{2, 3, 4, 5}))
	original := arr.Unchecked().Clone()
	//
	assert.ErrorIs(t, arr.Set(Coord{0, 3, 0, 0}, -1), ErrCoordOutOfRange)
	assert.Equal(t, original.Data(), arr.Unchecked().Data())
	//
	assert.NoError(t, arr.Set(Coord{0, 2, 0, 0}, -1))
	assert.Equal(t, -1, arr.Unchecked().Get(Coord{0, 2, 0, 0}))
}

func Test_Checked_02(t *testing.T) {
	arr := NewChecked(New[int](Extents{2, 3, 4, 5}))
	//
	_, err := arr.GetRegion(Coord{1, 1, 1, 1}, Extents{1, 2, 3, 4})
	assert.NoError(t, err)
	_, err = arr.GetRegion(Coord{1, 1, 1, 1}, Extents{2, 2, 3, 4})
	assert.ErrorIs(t, err, ErrRegionOutOfRange)
	_, err = arr.GetRegionIndirect(Coord{0, 0, 0, 5}, Extents{1, 1, 1, 1})
	assert.ErrorIs(t, err, ErrRegionOutOfRange)
	//
	view, err := arr.GetRegionIndirect(Coord{0, 0, 0, 0}, Extents{2, 3, 4, 5})
	assert.NoError(t, err)
	assert.Equal(t, 120, view.Len())
}

func Test_Checked_03(t *testing.T) {
	arr := NewChecked(New[int](Extents{2, 3, 4, 5}))
	//
	_, err := arr.GetLine(Coord{0, 3, 0, 0}, 3)
	assert.ErrorIs(t, err, ErrCoordOutOfRange)
	_, err = arr.GetLine(Coord{0, 1, 0, 0}, 1)
	assert.ErrorIs(t, err, ErrInvalidLineOrigin)
	_, err = arr.GetLine(Coord{0, 0, 0, 0}, 4)
	assert.ErrorIs(t, err, ErrAxisOutOfRange)
	//
	line, err := arr.GetLine(Coord{0, 2, 3, 4}, 0)
	assert.NoError(t, err)
	assert.Equal(t, 2, line.Len())
}

func Test_Checked_05(t *testing.T) {
	check_Checked_LineOverrun(t, Extents{2, 3, 4, 5}, Coord{0, 0, 0, 0}, 3)
	check_Checked_LineOverrun(t, Extents{2, 3, 4, 5}, Coord{1, 2, 3, 0}, 3)
	check_Checked_LineOverrun(t, Extents{2, 3, 4, 5}, Coord{1, 2, 0, 0}, 2)
	check_Checked_LineOverrun(t, Extents{1, 1, 1, 4}, Coord{0, 0, 0, 0}, 3)
}

func Test_Checked_06(t *testing.T) {
	arr := NewChecked(newIota[int](Extents{1, 1, 1, 4}))
	// Line stride of 1 for every axis
	line, err := arr.GetLine(Coord{0, 0, 0, 0}, 2)
	assert.NoError(t, err)
	assert.Equal(t, []int{0}, line.Values())
	//
	line, err = arr.GetAxisLine(Coord{0, 0, 0, 0}, 3)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, line.Values())
}

// Check that a line whose offsets run past the end of the buffer is rejected,
// rather than producing a line which panics when read.
func check_Checked_LineOverrun(t *testing.T, extents Extents, start Coord, axis uint) {
	var (
		arr    = newIota[int](extents)
		layout = NewLayout(extents)
	)
	// Sanity check the line does overrun
	line, err := arr.GetLine(start, axis)
	assert.NoError(t, err)
	assert.True(t, line.Offset(line.Len()-1) >= layout.TotalElements())
	//
	_, err = NewChecked(arr).GetLine(start, axis)
	assert.ErrorIs(t, err, ErrCoordOutOfRange)
}

func Test_Checked_04(t *testing.T) {
	arr := NewChecked(newIota[int](Extents{2, 3, 4, 5}))
	//
	_, err := arr.GetAxisLine(Coord{2, 0, 0, 0}, 3)
	assert.ErrorIs(t, err, ErrCoordOutOfRange)
	//
	line, err := arr.GetAxisLine(Coord{1, 0, 3, 4}, 1)
	assert.NoError(t, err)
	assert.Equal(t, []int{79, 99, 119}, line.Values())
}
