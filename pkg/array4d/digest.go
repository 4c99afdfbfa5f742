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

import "github.com/zeebo/blake3"

// DIGEST_SIZE is the number of bytes in a content digest.
const DIGEST_SIZE = 32

// Digest returns the BLAKE3 hash of the raw encoding of this array.  Two
// arrays with the same element type and contents have the same digest,
// regardless of their extents.
func (p *Array[T]) Digest() [DIGEST_SIZE]byte {
	return blake3.Sum256(p.Bytes())
}
