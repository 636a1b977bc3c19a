// Copyright 2022 Sogang University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package data

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Fingerprint returns an order-independent digest of the given multiset of
// integers: the wrapping sum of the hashes of its elements.  Digests of
// disjoint shards add up to the digest of their union.
func Fingerprint(shard []int64) (sum uint64) {
	var buf [8]byte
	for _, value := range shard {
		binary.LittleEndian.PutUint64(buf[:], uint64(value))
		sum += xxh3.Hash(buf[:])
	}
	return
}
