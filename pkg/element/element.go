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
package element

import (
	"strconv"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/pkg/errors"
)

// U8 identifies unsigned 8-bit elements.
const U8 = "u8"

// U16 identifies unsigned 16-bit elements.
const U16 = "u16"

// U32 identifies unsigned 32-bit elements.
const U32 = "u32"

// U64 identifies unsigned 64-bit elements.
const U64 = "u64"

// I32 identifies signed 32-bit elements.
const I32 = "i32"

// I64 identifies signed 64-bit elements.
const I64 = "i64"

// F32 identifies single precision floating point elements.
const F32 = "f32"

// F64 identifies double precision floating point elements.
const F64 = "f64"

// BLS12_377 identifies elements of the BLS12-377 scalar field, stored in
// Montgomery form.
const BLS12_377 = "bls12-377"

// Codec converts elements of a given type to and from their textual form.
type Codec[T any] interface {
	// Name of the element type, as used on the command line.
	Name() string
	// Parse an element from a string.
	Parse(string) (T, error)
	// Format an element as a string.
	Format(T) string
	// FromUint64 converts an unsigned integer into an element (truncating or
	// reducing as necessary).
	FromUint64(uint64) T
}

// Names returns the names of all supported element types.
func Names() []string {
	return []string{U8, U16, U32, U64, I32, I64, F32, F64, BLS12_377}
}

// IsKnown determines whether the given name identifies a supported element
// type.
func IsKnown(name string) bool {
	for _, n := range Names() {
		if n == name {
			return true
		}
	}
	//
	return false
}

// Uint8 is the codec for unsigned 8-bit elements.
var Uint8 Codec[uint8] = unsignedCodec[uint8]{U8, 8}

// Uint16 is the codec for unsigned 16-bit elements.
var Uint16 Codec[uint16] = unsignedCodec[uint16]{U16, 16}

// Uint32 is the codec for unsigned 32-bit elements.
var Uint32 Codec[uint32] = unsignedCodec[uint32]{U32, 32}

// Uint64 is the codec for unsigned 64-bit elements.
var Uint64 Codec[uint64] = unsignedCodec[uint64]{U64, 64}

// Int32 is the codec for signed 32-bit elements.
var Int32 Codec[int32] = signedCodec[int32]{I32, 32}

// Int64 is the codec for signed 64-bit elements.
var Int64 Codec[int64] = signedCodec[int64]{I64, 64}

// Float32 is the codec for single precision elements.
var Float32 Codec[float32] = floatCodec[float32]{F32, 32}

// Float64 is the codec for double precision elements.
var Float64 Codec[float64] = floatCodec[float64]{F64, 64}

// Field is the codec for BLS12-377 scalar field elements.
var Field Codec[fr.Element] = fieldCodec{}

// ============================================================================
// Codecs
// ============================================================================

type unsignedCodec[T uint8 | uint16 | uint32 | uint64] struct {
	name string
	bits int
}

func (p unsignedCodec[T]) Name() string {
	return p.name
}

func (p unsignedCodec[T]) Parse(s string) (T, error) {
	val, err := strconv.ParseUint(s, 0, p.bits)
	//
	return T(val), err
}

func (p unsignedCodec[T]) Format(val T) string {
	return strconv.FormatUint(uint64(val), 10)
}

func (p unsignedCodec[T]) FromUint64(val uint64) T {
	return T(val)
}

type signedCodec[T int32 | int64] struct {
	name string
	bits int
}

func (p signedCodec[T]) Name() string {
	return p.name
}

func (p signedCodec[T]) Parse(s string) (T, error) {
	val, err := strconv.ParseInt(s, 0, p.bits)
	//
	return T(val), err
}

func (p signedCodec[T]) Format(val T) string {
	return strconv.FormatInt(int64(val), 10)
}

func (p signedCodec[T]) FromUint64(val uint64) T {
	return T(val)
}

type floatCodec[T float32 | float64] struct {
	name string
	bits int
}

func (p floatCodec[T]) Name() string {
	return p.name
}

func (p floatCodec[T]) Parse(s string) (T, error) {
	val, err := strconv.ParseFloat(s, p.bits)
	//
	return T(val), err
}

func (p floatCodec[T]) Format(val T) string {
	return strconv.FormatFloat(float64(val), 'g', -1, p.bits)
}

func (p floatCodec[T]) FromUint64(val uint64) T {
	return T(val)
}

type fieldCodec struct{}

func (p fieldCodec) Name() string {
	return BLS12_377
}

func (p fieldCodec) Parse(s string) (fr.Element, error) {
	var val fr.Element
	//
	if _, err := val.SetString(s); err != nil {
		return val, errors.Wrapf(err, "invalid %s element %q", BLS12_377, s)
	}
	//
	return val, nil
}

func (p fieldCodec) Format(val fr.Element) string {
	return val.String()
}

func (p fieldCodec) FromUint64(val uint64) fr.Element {
	return fr.NewElement(val)
}
