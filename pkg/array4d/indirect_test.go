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

func Test_Indirect_00(t *testing.T) {
	arr := New[int](Extents{2, 3, 2, 2})
	view := arr.GetRegionIndirect(Coord{1, 0, 1, 0}, Extents{1, 2, 1, 2})
	// gstride = (12,4,2,1) and start = 14
	var expected []uint
	//
	for _, j := range []uint{0, 1} {
		for _, l := range []uint{0, 1} {
			expected = append(expected, 14+j*4+l)
		}
	}
	//
	assert.Equal(t, 4, view.Len())
	assert.Equal(t, sorted(expected), sorted(view.Indices()))
}

func Test_Indirect_01(t *testing.T) {
	// Axis 0 of the region varies fastest through the list.
	arr := New[int](Extents{2, 3, 2, 2})
	view := arr.GetRegionIndirect(Coord{1, 0, 1, 0}, Extents{1, 2, 1, 2})
	//
	assert.Equal(t, []uint{14, 18, 15, 19}, view.Indices())
}

func Test_Indirect_02(t *testing.T) {
	arr := New[int](Extents{3, 3, 3, 3})
	view := arr.GetRegionIndirect(Coord{0, 0, 0, 0}, Extents{2, 1, 1, 2})
	// (i,l) = (0,0),(1,0),(0,1),(1,1)
	assert.Equal(t, []uint{0, 27, 1, 28}, view.Indices())
}

func Test_Indirect_03(t *testing.T) {
	check_Indirect(t, Extents{2, 3, 4, 5}, Coord{1, 1, 1, 1}, Extents{1, 2, 3, 4})
}

func Test_Indirect_04(t *testing.T) {
	check_Indirect(t, Extents{4, 4, 4, 4}, Coord{1, 0, 2, 0}, Extents{3, 4, 2, 4})
}

func Test_Indirect_05(t *testing.T) {
	check_Indirect(t, Extents{2, 3, 2, 2}, Coord{0, 0, 0, 0}, Extents{2, 3, 2, 2})
}

func Test_Indirect_06(t *testing.T) {
	check_Indirect(t, Extents{5, 1, 3, 2}, Coord{2, 0, 1, 1}, Extents{3, 1, 2, 1})
}

func Test_Indirect_07(t *testing.T) {
	check_Indirect(t, Extents{2, 2, 2, 2}, Coord{1, 1, 1, 1}, Extents{0, 1, 1, 1})
}

func Test_Indirect_Gather_00(t *testing.T) {
	arr := newIota[int](Extents{2, 3, 2, 2})
	view := arr.GetRegionIndirect(Coord{1, 0, 1, 0}, Extents{1, 2, 1, 2})
	//
	assert.Equal(t, []int{14, 18, 15, 19}, view.Gather())
	assert.Equal(t, 18, view.Get(1))
	assert.Equal(t, "14 18 15 19", view.String())
}

func Test_Indirect_Scatter_00(t *testing.T) {
	arr := newIota[int](Extents{2, 3, 2, 2})
	view := arr.GetRegionIndirect(Coord{1, 0, 1, 0}, Extents{1, 2, 1, 2})
	//
	view.Scatter([]int{-1, -2, -3, -4})
	assert.Equal(t, -1, arr.GetFlat(14))
	assert.Equal(t, -2, arr.GetFlat(18))
	assert.Equal(t, -3, arr.GetFlat(15))
	assert.Equal(t, -4, arr.GetFlat(19))
	// Views alias the live buffer
	arr.SetFlat(18, 100)
	assert.Equal(t, 100, view.Get(1))
	view.Set(3, 200)
	assert.Equal(t, 200, arr.Get(Coord{1, 1, 1, 1}))
}

func Test_Indirect_Scatter_01(t *testing.T) {
	arr := newIota[int](Extents{2, 3, 2, 2})
	view := arr.GetRegionIndirect(Coord{1, 0, 1, 0}, Extents{1, 2, 1, 2})
	// Short input only writes a prefix
	view.Scatter([]int{-1})
	assert.Equal(t, -1, arr.GetFlat(14))
	assert.Equal(t, 18, arr.GetFlat(18))
}

// ===================================================================
// Test Helpers
// ===================================================================

// Check the gather list of a region covers the same offsets as its aliasing
// descriptor, with the element at region position (i,j,k,l) stored in slot
// ((l*s2 + k)*s1 + j)*s0 + i.
func check_Indirect(t *testing.T, extents Extents, start Coord, sizes Extents) {
	var (
		arr     = New[int](extents)
		region  = arr.GetRegion(start, sizes)
		view    = arr.GetRegionIndirect(start, sizes)
		indices = view.Indices()
	)
	//
	assert.Equal(t, sizes.Product(), view.Len())
	assert.Equal(t, sorted(region.Indices()), sorted(indices))
	//
	for _, pos := range allCoords(sizes) {
		var (
			i, j, k, l = pos[0], pos[1], pos[2], pos[3]
			slot       = ((l*sizes[2]+k)*sizes[1]+j)*sizes[0] + i
		)
		//
		assert.Equal(t, region.Offset(pos), indices[slot], "region position %s", pos)
	}
}

func sorted(items []uint) []uint {
	items = slices.Clone(items)
	slices.Sort(items)
	//
	if items == nil {
		return []uint{}
	}
	//
	return items
}
