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
	"io"
	"os"
	"unsafe"

	"github.com/pkg/errors"
)

// ElementSize returns the number of bytes occupied by a single element.
func (p *Array[T]) ElementSize() uint {
	var zero T
	//
	return uint(unsafe.Sizeof(zero))
}

// ByteSize returns the number of bytes in the raw encoding of this array.
func (p *Array[T]) ByteSize() uint {
	return p.TotalSize() * p.ElementSize()
}

// Bytes returns the buffer of this array viewed as raw bytes in native memory
// layout.  The returned slice aliases the array.
func (p *Array[T]) Bytes() []byte {
	if len(p.data) == 0 {
		return nil
	}
	//
	ptr := (*byte)(unsafe.Pointer(unsafe.SliceData(p.data)))
	//
	return unsafe.Slice(ptr, p.ByteSize())
}

// WriteTo writes the buffer of this array as raw bytes, in native memory
// layout and flat order.  There is no header.
func (p *Array[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(p.Bytes())
	//
	return int64(n), err
}

// ReadFrom fills the buffer of this array by reading exactly ByteSize() raw
// bytes from the given reader.  If fewer bytes are available then ErrShortRead
// is returned, and the buffer is left partially overwritten.  Any bytes
// beyond those required are not consumed.
func (p *Array[T]) ReadFrom(r io.Reader) (int64, error) {
	var expected = p.ByteSize()
	//
	n, err := io.ReadFull(r, p.Bytes())
	//
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return int64(n), errors.Wrapf(ErrShortRead, "read %d of %d bytes", n, expected)
	}
	//
	return int64(n), err
}

// WriteToFile writes the raw encoding of this array into the given file,
// creating or truncating it as necessary.
func (p *Array[T]) WriteToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to open file %#v", filename)
	}
	//
	if _, err = p.WriteTo(file); err != nil {
		file.Close()
		return errors.Wrapf(err, "failed to write file %#v", filename)
	}
	//
	return errors.Wrapf(file.Close(), "failed to close file %#v", filename)
}

// ReadFromFile fills the buffer of this array from the raw encoding held in
// the given file.
func (p *Array[T]) ReadFromFile(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to open file %#v", filename)
	}
	//
	defer file.Close()
	//
	if _, err = p.ReadFrom(file); err != nil {
		return errors.Wrapf(err, "failed to read file %#v", filename)
	}
	//
	return nil
}
