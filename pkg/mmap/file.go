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
	pkgErrors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// File represents a memory-mapped raw dump file.
type File struct {
	BlockDevice *BlockDevice
	// Path of the file
	Path string
}

// Open maps an existing file, in its entirety, for reading.
func Open(path string) (*File, error) {
	fd, err := unix.Open(path, unix.O_RDONLY, 0)
	if err != nil {
		return nil, pkgErrors.Wrapf(err, "failed to open file %#v", path)
	}
	//
	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		unix.Close(fd)
		return nil, pkgErrors.Wrapf(err, "failed to obtain size of file %#v", path)
	}
	//
	bd, err := NewBlockDevice(fd, int(stat.Size), false)
	if err != nil {
		unix.Close(fd)
		return nil, pkgErrors.Wrapf(err, "failed to map file %#v", path)
	}
	//
	log.Debugf("mapped %d bytes of %s for reading", stat.Size, path)
	//
	return &File{bd, path}, nil
}

// Create creates (or truncates) a file and resizes it to exactly sizeBytes
// bytes, ready to be written.
func Create(path string, sizeBytes int) (*File, error) {
	fd, err := unix.Open(path, unix.O_CREAT|unix.O_RDWR|unix.O_TRUNC, 0666)
	if err != nil {
		return nil, pkgErrors.Wrapf(err, "failed to open file %#v", path)
	}
	//
	if err := unix.Ftruncate(fd, int64(sizeBytes)); err != nil {
		unix.Close(fd)
		return nil, pkgErrors.Wrapf(err, "failed to truncate file %#v to %d bytes", path, sizeBytes)
	}
	//
	bd, err := NewBlockDevice(fd, sizeBytes, true)
	if err != nil {
		unix.Close(fd)
		return nil, pkgErrors.Wrapf(err, "failed to map file %#v", path)
	}
	//
	log.Debugf("mapped %d bytes of %s for writing", sizeBytes, path)
	//
	return &File{bd, path}, nil
}

// Size returns the number of bytes in this file.
func (f *File) Size() int {
	return f.BlockDevice.Len()
}

// Close releases the mapping and the underlying file descriptor.
func (f *File) Close() error {
	return pkgErrors.Wrapf(f.BlockDevice.Close(), "failed to close file %#v", f.Path)
}
