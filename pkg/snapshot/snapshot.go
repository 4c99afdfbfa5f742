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
package snapshot

import (
	"github.com/consensys/go-array4d/pkg/array4d"
	"github.com/consensys/go-array4d/pkg/mmap"
	"github.com/consensys/go-array4d/pkg/util"
	"github.com/pkg/errors"
)

// Option configures how a snapshot is saved or loaded.
type Option func(*options)

type options struct {
	// Go through a memory map, rather than a plain file stream.
	mmap bool
	// Flush written data to the storage device before returning.
	sync bool
}

// WithMmap selects memory-mapped access to the snapshot file.
func WithMmap() Option {
	return func(o *options) {
		o.mmap = true
	}
}

// WithSync requests that saved data is flushed to the storage device before
// Save returns (memory-mapped saves only).
func WithSync() Option {
	return func(o *options) {
		o.sync = true
	}
}

// Save writes the raw encoding of an array into the given file, creating or
// truncating it as necessary.  The file holds exactly ByteSize() bytes.
func Save[T any](arr *array4d.Array[T], filename string, opts ...Option) error {
	var (
		cfg   = configure(opts)
		stats = util.NewPerfStats()
		err   error
	)
	//
	if cfg.mmap {
		err = saveMapped(arr, filename, cfg.sync)
	} else {
		err = arr.WriteToFile(filename)
	}
	//
	stats.LogBytes("saving "+filename, arr.ByteSize())
	//
	return err
}

// Load fills an array from the raw encoding held in the given file.  The
// array determines how many bytes are expected: if the file is shorter then
// array4d.ErrShortRead is returned.
func Load[T any](arr *array4d.Array[T], filename string, opts ...Option) error {
	var (
		cfg   = configure(opts)
		stats = util.NewPerfStats()
		err   error
	)
	//
	if cfg.mmap {
		err = loadMapped(arr, filename)
	} else {
		err = arr.ReadFromFile(filename)
	}
	//
	stats.LogBytes("loading "+filename, arr.ByteSize())
	//
	return err
}

func saveMapped[T any](arr *array4d.Array[T], filename string, sync bool) error {
	file, err := mmap.Create(filename, int(arr.ByteSize()))
	if err != nil {
		return err
	}
	//
	if _, err = file.BlockDevice.WriteAt(arr.Bytes(), 0); err != nil {
		file.Close()
		return errors.Wrapf(err, "failed to write file %#v", filename)
	} else if sync {
		if err = file.BlockDevice.Sync(); err != nil {
			file.Close()
			return errors.Wrapf(err, "failed to sync file %#v", filename)
		}
	}
	//
	return file.Close()
}

func loadMapped[T any](arr *array4d.Array[T], filename string) error {
	file, err := mmap.Open(filename)
	if err != nil {
		return err
	}
	//
	defer file.Close()
	//
	if uint(file.Size()) < arr.ByteSize() {
		return errors.Wrapf(array4d.ErrShortRead, "file %#v holds %d of %d bytes", filename, file.Size(),
			arr.ByteSize())
	}
	//
	if _, err = file.BlockDevice.ReadAt(arr.Bytes(), 0); err != nil {
		return errors.Wrapf(err, "failed to read file %#v", filename)
	}
	//
	return nil
}

func configure(opts []Option) options {
	var cfg options
	//
	for _, opt := range opts {
		opt(&cfg)
	}
	//
	return cfg
}
