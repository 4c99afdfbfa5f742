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

import "errors"

// ErrAxisOutOfRange signals that an axis outside [0,3] was given when
// extracting a line.
var ErrAxisOutOfRange = errors.New("axis out of range")

// ErrInvalidLineOrigin signals that a line was requested whose start
// coordinate is not zero along the axis being varied.
var ErrInvalidLineOrigin = errors.New("invalid line origin")

// ErrShortRead signals that a source held fewer bytes than required to fill
// an array.
var ErrShortRead = errors.New("short read")

// ErrCoordOutOfRange signals that a coordinate lies outside the extents of an
// array (checked access only).
var ErrCoordOutOfRange = errors.New("coordinate out of range")

// ErrRegionOutOfRange signals that a region extends beyond the extents of an
// array (checked access only).
var ErrRegionOutOfRange = errors.New("region out of range")
