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

package sorter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartition(t *testing.T) {
	// elements equal to a splitter go to the higher bucket
	buckets := Partition([]int64{1, 2, 2, 3, 4, 4, 5}, []int64{2, 4})
	assert.Equal(t, []Bucket{{Offset: 0, Count: 1}, {Offset: 1, Count: 3}, {Offset: 4, Count: 3}}, buckets)
	assert.Equal(t, []int{1, 3, 3}, Counts(buckets))
	assert.Equal(t, []int{0, 1, 4}, Displs(buckets))

	// leading, middle and trailing buckets may be empty
	buckets = Partition([]int64{5, 6, 7}, []int64{1, 5, 5, 9})
	assert.Equal(t, []int{0, 0, 0, 3, 0}, Counts(buckets))
	assert.Equal(t, []int{0, 0, 0, 0, 3}, Displs(buckets))

	// the last bucket absorbs the remainder
	buckets = Partition([]int64{10, 20, 30}, []int64{0})
	assert.Equal(t, []Bucket{{Offset: 0, Count: 0}, {Offset: 0, Count: 3}}, buckets)

	assert.Equal(t, []Bucket{{}, {}, {}}, Partition(nil, []int64{1, 2}))
	assert.Equal(t, []Bucket{{Offset: 0, Count: 2}}, Partition([]int64{1, 2}, nil))
}

func TestPartitionAllEqual(t *testing.T) {
	buckets := Partition([]int64{3, 3, 3, 3}, []int64{3, 3})
	assert.Equal(t, []int{0, 0, 4}, Counts(buckets))
}

func TestPartitionConservation(t *testing.T) {
	shard := []int64{-9, -3, -3, 0, 1, 1, 1, 7, 12, 40}
	splitters := []int64{-3, 1, 1, 8}
	buckets := Partition(shard, splitters)

	sum := 0
	for k, bucket := range buckets {
		assert.Equal(t, sum, bucket.Offset)
		sum += bucket.Count
		for _, value := range shard[bucket.Offset : bucket.Offset+bucket.Count] {
			if 0 < k {
				assert.LessOrEqual(t, splitters[k-1], value)
			}
			if k < len(splitters) {
				assert.Less(t, value, splitters[k])
			}
		}
	}
	assert.Equal(t, len(shard), sum)
}

func TestOffsets(t *testing.T) {
	offsets, total := Offsets([]int{3, 0, 2, 5})
	assert.Equal(t, []int{0, 3, 3, 5}, offsets)
	assert.Equal(t, 10, total)

	offsets, total = Offsets(nil)
	assert.Empty(t, offsets)
	assert.Zero(t, total)
}
