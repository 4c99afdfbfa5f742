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
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_IO_RoundTrip_00(t *testing.T) {
	check_IO_RoundTrip[float64](t, Extents{2, 2, 2, 2})
}

func Test_IO_RoundTrip_01(t *testing.T) {
	check_IO_RoundTrip[uint8](t, Extents{3, 1, 4, 1})
}

func Test_IO_RoundTrip_02(t *testing.T) {
	check_IO_RoundTrip[int32](t, Extents{2, 3, 4, 5})
}

func Test_IO_RoundTrip_03(t *testing.T) {
	check_IO_RoundTrip[uint64](t, Extents{1, 1, 1, 1})
}

func Test_IO_Layout_00(t *testing.T) {
	arr := newIota[uint32](Extents{1, 1, 2, 2})
	//
	var buf bytes.Buffer
	n, err := arr.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(16), n)
	// Raw bytes in native order, flat order.
	for i := range uint32(4) {
		require.Equal(t, i, binary.NativeEndian.Uint32(buf.Bytes()[i*4:]))
	}
}

func Test_IO_ShortRead_00(t *testing.T) {
	arr := New[uint16](Extents{2, 2, 2, 2})
	n, err := arr.ReadFrom(bytes.NewReader(make([]byte, 31)))
	//
	require.ErrorIs(t, err, ErrShortRead)
	require.Equal(t, int64(31), n)
}

func Test_IO_ShortRead_01(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "short.bin")
	require.NoError(t, os.WriteFile(filename, []byte{1, 2, 3}, 0644))
	//
	arr := New[float32](Extents{1, 1, 1, 2})
	err := arr.ReadFromFile(filename)
	require.ErrorIs(t, err, ErrShortRead)
}

func Test_IO_ShortRead_02(t *testing.T) {
	arr := New[uint8](Extents{1, 1, 1, 2})
	_, err := arr.ReadFrom(bytes.NewReader(nil))
	//
	require.ErrorIs(t, err, ErrShortRead)
}

func Test_IO_LongRead_00(t *testing.T) {
	arr := New[uint8](Extents{1, 1, 1, 2})
	reader := bytes.NewReader([]byte{7, 8, 9})
	n, err := arr.ReadFrom(reader)
	// Trailing bytes are left unread
	require.NoError(t, err)
	require.Equal(t, int64(2), n)
	require.Equal(t, []uint8{7, 8}, arr.Data())
	require.Equal(t, 1, reader.Len())
}

func Test_IO_WriteFail_00(t *testing.T) {
	arr := New[uint8](Extents{1, 1, 1, 2})
	filename := filepath.Join(t.TempDir(), "missing", "out.bin")
	//
	require.Error(t, arr.WriteToFile(filename))
	_, err := os.Stat(filename)
	require.True(t, os.IsNotExist(err))
}

func Test_IO_ReadFail_00(t *testing.T) {
	arr := New[uint8](Extents{1, 1, 1, 2})
	//
	require.Error(t, arr.ReadFromFile(filepath.Join(t.TempDir(), "missing.bin")))
}

func Test_Digest_00(t *testing.T) {
	lhs := newIota[uint32](Extents{2, 2, 2, 2})
	rhs := newIota[uint32](Extents{2, 2, 2, 2})
	//
	require.Equal(t, lhs.Digest(), rhs.Digest())
	rhs.Set(Coord{1, 0, 1, 0}, 1000)
	require.NotEqual(t, lhs.Digest(), rhs.Digest())
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_IO_RoundTrip[T uint8 | int32 | uint32 | uint64 | float64](t *testing.T, extents Extents) {
	var (
		filename = filepath.Join(t.TempDir(), "array.bin")
		arr      = New[T](extents)
	)
	//
	for i := range arr.TotalSize() {
		arr.SetFlat(i, T(i))
	}
	//
	require.NoError(t, arr.WriteToFile(filename))
	// Check size on disk
	info, err := os.Stat(filename)
	require.NoError(t, err)
	require.Equal(t, int64(arr.ByteSize()), info.Size())
	// Read into a fresh array
	fresh := New[T](extents)
	require.NoError(t, fresh.ReadFromFile(filename))
	//
	for i := range arr.TotalSize() {
		require.Equal(t, arr.GetFlat(i), fresh.GetFlat(i))
	}
}
