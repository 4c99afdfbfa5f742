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
	"slices"
	"testing"

	"github.com/consensys/go-array4d/pkg/util/assert"
)

func Test_Array_New_00(t *testing.T) {
	arr := New[float64](Extents{2, 3, 4, 5})
	//
	assert.Equal(t, 120, arr.TotalSize())
	assert.Equal(t, 120, len(arr.Data()))
	assert.Equal(t, Extents{2, 3, 4, 5}, arr.Extents())
	assert.Equal(t, [RANK]uint{60, 20, 5, 1}, arr.AddressStrides())
	//
	for _, v := range arr.Data() {
		assert.Equal(t, 0.0, v)
	}
}

func Test_Array_New_01(t *testing.T) {
	arr := New[uint32](Extents{0, 3, 4, 5})
	//
	assert.Equal(t, 0, arr.TotalSize())
	assert.Equal(t, 0, len(arr.Bytes()))
}

func Test_Array_GetSet_00(t *testing.T) {
	check_Array_GetSet(t, Extents{2, 3, 2, 2})
}

func Test_Array_GetSet_01(t *testing.T) {
	check_Array_GetSet(t, Extents{1, 1, 1, 4})
}

func Test_Array_GetSet_02(t *testing.T) {
	check_Array_GetSet(t, Extents{3, 4, 5, 6})
}

func Test_Array_Fill_00(t *testing.T) {
	once := newIota[int](Extents{2, 3, 2, 2})
	twice := newIota[int](Extents{2, 3, 2, 2})
	//
	once.Fill(7)
	twice.Fill(7)
	twice.Fill(7)
	//
	assert.Equal(t, once.Data(), twice.Data())
	//
	for i := range once.TotalSize() {
		assert.Equal(t, 7, once.GetFlat(i))
	}
}

func Test_Array_Clone_00(t *testing.T) {
	arr := newIota[uint16](Extents{2, 2, 2, 2})
	clone := arr.Clone()
	//
	assert.Equal(t, arr.Data(), clone.Data())
	clone.Set(Coord{1, 1, 1, 1}, 99)
	assert.Equal(t, uint16(15), arr.Get(Coord{1, 1, 1, 1}))
	assert.Equal(t, uint16(99), clone.Get(Coord{1, 1, 1, 1}))
}

func Test_Array_Data_00(t *testing.T) {
	arr := New[int32](Extents{2, 2, 2, 2})
	// Data aliases the buffer
	arr.Data()[5] = 42
	assert.Equal(t, int32(42), arr.Get(Coord{0, 1, 0, 1}))
}

func Test_Array_Format_00(t *testing.T) {
	assert.Equal(t, "1 2 3", FormatElements([]int{1, 2, 3}))
	assert.Equal(t, "", FormatElements([]int{}))
	assert.Equal(t, "0.5", FormatElements([]float64{0.5}))
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Array_GetSet(t *testing.T, extents Extents) {
	arr := New[uint](extents)
	// Write a distinct value at every coordinate
	for _, pos := range allCoords(extents) {
		arr.Set(pos, 1000+arr.Layout().FlatOffset(pos))
	}
	//
	for i, pos := range allCoords(extents) {
		assert.Equal(t, 1000+uint(i), arr.Get(pos))
		assert.Equal(t, 1000+uint(i), arr.GetFlat(uint(i)))
	}
	// Coordinates enumerated in row-major order visit the buffer in order.
	assert.True(t, slices.IsSorted(arr.Data()))
}
