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
package mmap

import (
	"errors"
	"io"
	"runtime/debug"
	"syscall"

	pkgErrors "github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// BlockDevice represents a memory-mapped region of a file, holding a
// reference to its file descriptor.  Reads go through the memory map, whilst
// writes go through the file descriptor.
type BlockDevice struct {
	fd   int
	data []byte
}

// NewBlockDevice maps the first sizeBytes bytes of the file referred to by the
// given descriptor.  The mapping is writable only when the descriptor was
// opened for writing and writable is set.  An empty region is never mapped.
func NewBlockDevice(fd int, sizeBytes int, writable bool) (*BlockDevice, error) {
	var prot = syscall.PROT_READ
	//
	if writable {
		prot |= syscall.PROT_WRITE
	}
	//
	if sizeBytes == 0 {
		return &BlockDevice{fd, nil}, nil
	}
	//
	data, err := unix.Mmap(fd, 0, sizeBytes, prot, syscall.MAP_SHARED)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "failed to memory map block device")
	}
	//
	return &BlockDevice{fd, data}, nil
}

// Len returns the number of mapped bytes.
func (bd *BlockDevice) Len() int {
	return len(bd.data)
}

// ReadAt reads through the memory map at a given offset.
func (bd *BlockDevice) ReadAt(p []byte, off int64) (n int, err error) {
	if off < 0 {
		return 0, syscall.EINVAL
	}
	//
	if off > int64(len(bd.data)) {
		return 0, io.EOF
	}
	// Install a page fault handler, so that I/O errors against the memory map
	// (e.g. due to the file being truncated underneath us) surface as errors
	// rather than crashes.
	old := debug.SetPanicOnFault(true)
	defer func() {
		debug.SetPanicOnFault(old)
		//
		if recover() != nil {
			err = errors.New("page fault occurred while reading from memory map")
		}
	}()
	//
	n = copy(p, bd.data[off:])
	if n < len(p) {
		err = io.EOF
	}
	//
	return
}

// WriteAt writes at a given offset through the file descriptor.  The pwrite()
// system call may perform a short write without reporting an error, hence it
// is invoked repeatedly until everything is written.
func (bd *BlockDevice) WriteAt(p []byte, off int64) (int, error) {
	nTotal := 0
	//
	for len(p) > 0 {
		n, err := unix.Pwrite(bd.fd, p, off)
		nTotal += n
		//
		if err != nil {
			return nTotal, err
		}
		//
		p = p[n:]
		off += int64(n)
	}
	//
	return nTotal, nil
}

// Sync synchronizes the file's in-core state with the storage device.
func (bd *BlockDevice) Sync() error {
	return unix.Fsync(bd.fd)
}

// Close unmaps the region and closes the file descriptor.
func (bd *BlockDevice) Close() error {
	var err error
	//
	if bd.data != nil {
		err = unix.Munmap(bd.data)
		bd.data = nil
	}
	//
	if cerr := unix.Close(bd.fd); err == nil {
		err = cerr
	}
	//
	return err
}
