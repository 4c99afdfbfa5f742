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
package cmd

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-array4d/pkg/array4d"
	"github.com/consensys/go-array4d/pkg/element"
	"github.com/consensys/go-array4d/pkg/snapshot"
	"github.com/consensys/go-array4d/pkg/util"
)

// arrayHandler performs the element-type-specific work of each command.  The
// textual forms of elements are used throughout, so that commands themselves
// need not know the element type.
type arrayHandler interface {
	// Size of a single element (in bytes).
	ElementSize() uint
	// Create a dump, filled either with a given value or its flat offsets.
	Create(s settings, filename string, fill string, sequential bool) error
	// Get the elements at the given coordinates.
	Get(s settings, filename string, coords []array4d.Coord) ([]string, error)
	// Set the element at the given coordinate.
	Set(s settings, filename string, pos array4d.Coord, value string) error
	// Fill every element of a dump with a given value.
	Fill(s settings, filename string, value string) error
	// Extract a line from a dump.
	Line(s settings, filename string, start array4d.Coord, axis uint, addressStride bool) ([]string, error)
	// Extract a region from a dump.
	Region(s settings, filename string, start array4d.Coord, sizes array4d.Extents, indirect bool) ([]string, error)
	// Copy a region of one dump into a new dump whose extents are the region's sizes.
	Copy(s settings, src string, dst string, start array4d.Coord, sizes array4d.Extents) error
	// Compute the digest of a dump.
	Digest(s settings, filename string) ([array4d.DIGEST_SIZE]byte, error)
}

// Available instances
var arrayHandlers = map[string]arrayHandler{
	element.U8:        &handler[uint8]{element.Uint8},
	element.U16:       &handler[uint16]{element.Uint16},
	element.U32:       &handler[uint32]{element.Uint32},
	element.U64:       &handler[uint64]{element.Uint64},
	element.I32:       &handler[int32]{element.Int32},
	element.I64:       &handler[int64]{element.Int64},
	element.F32:       &handler[float32]{element.Float32},
	element.F64:       &handler[float64]{element.Float64},
	element.BLS12_377: &handler[fr.Element]{element.Field},
}

// getHandler returns the handler for the element type of the given settings.
func getHandler(s settings) arrayHandler {
	// Element types are validated when settings are constructed.
	return arrayHandlers[s.element]
}

type handler[T any] struct {
	codec element.Codec[T]
}

func (p *handler[T]) ElementSize() uint {
	return array4d.New[T](array4d.Extents{}).ElementSize()
}

func (p *handler[T]) Create(s settings, filename string, fill string, sequential bool) error {
	arr := array4d.New[T](s.extents)
	//
	if sequential {
		for i := range arr.TotalSize() {
			arr.SetFlat(i, p.codec.FromUint64(uint64(i)))
		}
	} else if fill != "" {
		val, err := p.codec.Parse(fill)
		if err != nil {
			return err
		}
		//
		arr.Fill(val)
	}
	//
	return p.save(s, arr, filename)
}

func (p *handler[T]) Get(s settings, filename string, coords []array4d.Coord) ([]string, error) {
	arr, err := p.load(s, filename)
	if err != nil {
		return nil, err
	}
	//
	var (
		checked = array4d.NewChecked(arr)
		items   = make([]string, len(coords))
	)
	//
	for i, pos := range coords {
		val, err := checked.Get(pos)
		if err != nil {
			return nil, err
		}
		//
		items[i] = p.codec.Format(val)
	}
	//
	return items, nil
}

func (p *handler[T]) Set(s settings, filename string, pos array4d.Coord, value string) error {
	arr, err := p.load(s, filename)
	if err != nil {
		return err
	}
	//
	val, err := p.codec.Parse(value)
	if err != nil {
		return err
	} else if err = array4d.NewChecked(arr).Set(pos, val); err != nil {
		return err
	}
	//
	return p.save(s, arr, filename)
}

func (p *handler[T]) Fill(s settings, filename string, value string) error {
	val, err := p.codec.Parse(value)
	if err != nil {
		return err
	}
	// Contents are overwritten, so there is no need to load them.
	arr := array4d.New[T](s.extents)
	arr.Fill(val)
	//
	return p.save(s, arr, filename)
}

func (p *handler[T]) Line(s settings, filename string, start array4d.Coord, axis uint,
	addressStride bool) ([]string, error) {
	arr, err := p.load(s, filename)
	if err != nil {
		return nil, err
	}
	//
	var (
		checked = array4d.NewChecked(arr)
		line    array4d.Line[T]
	)
	//
	if addressStride {
		line, err = checked.GetAxisLine(start, axis)
	} else {
		line, err = checked.GetLine(start, axis)
	}
	//
	if err != nil {
		return nil, err
	}
	//
	return p.format(line.Values()), nil
}

func (p *handler[T]) Region(s settings, filename string, start array4d.Coord, sizes array4d.Extents,
	indirect bool) ([]string, error) {
	arr, err := p.load(s, filename)
	if err != nil {
		return nil, err
	}
	//
	checked := array4d.NewChecked(arr)
	//
	if indirect {
		view, err := checked.GetRegionIndirect(start, sizes)
		if err != nil {
			return nil, err
		}
		//
		return p.format(view.Gather()), nil
	}
	//
	region, err := checked.GetRegion(start, sizes)
	if err != nil {
		return nil, err
	}
	//
	return p.format(arr.View(region).Values()), nil
}

func (p *handler[T]) Copy(s settings, src string, dst string, start array4d.Coord, sizes array4d.Extents) error {
	var stats = util.NewPerfStats()
	//
	arr, err := p.load(s, src)
	if err != nil {
		return err
	}
	//
	region, err := array4d.NewChecked(arr).GetRegion(start, sizes)
	if err != nil {
		return err
	}
	//
	out := array4d.New[T](sizes)
	copy(out.Data(), arr.View(region).Values())
	//
	if err = p.save(s, out, dst); err != nil {
		return err
	}
	//
	stats.Log("copying " + src)
	//
	return nil
}

func (p *handler[T]) Digest(s settings, filename string) ([array4d.DIGEST_SIZE]byte, error) {
	arr, err := p.load(s, filename)
	if err != nil {
		return [array4d.DIGEST_SIZE]byte{}, err
	}
	//
	return arr.Digest(), nil
}

func (p *handler[T]) format(values []T) []string {
	var items = make([]string, len(values))
	//
	for i, v := range values {
		items[i] = p.codec.Format(v)
	}
	//
	return items
}

func (p *handler[T]) load(s settings, filename string) (*array4d.Array[T], error) {
	arr := array4d.New[T](s.extents)
	//
	return arr, snapshot.Load(arr, filename, s.options()...)
}

func (p *handler[T]) save(s settings, arr *array4d.Array[T], filename string) error {
	return snapshot.Save(arr, filename, s.options()...)
}

func (s settings) options() []snapshot.Option {
	var opts []snapshot.Option
	//
	if s.mmap {
		opts = append(opts, snapshot.WithMmap())
	}
	//
	if s.sync {
		opts = append(opts, snapshot.WithSync())
	}
	//
	return opts
}
