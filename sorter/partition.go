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

// Bucket is a contiguous run of a sorted shard destined for a single rank.
type Bucket struct {
	Offset int
	Count  int
}

// Partition splits the given sorted shard into len(splitters)+1 buckets, where
// bucket k holds the elements v with splitters[k-1] <= v < splitters[k].  An
// element equal to a splitter therefore goes to the higher bucket, and the
// last bucket absorbs everything that remains.  Since the shard is sorted,
// a single forward scan suffices.
func Partition(shard []int64, splitters []int64) []Bucket {
	buckets := make([]Bucket, len(splitters)+1)

	index := 0
	for k, splitter := range splitters {
		buckets[k].Offset = index
		for index < len(shard) && shard[index] < splitter {
			index++
		}
		buckets[k].Count = index - buckets[k].Offset
	}
	buckets[len(splitters)] = Bucket{Offset: index, Count: len(shard) - index}

	return buckets
}

// Counts returns the number of elements in each bucket.
func Counts(buckets []Bucket) []int {
	counts := make([]int, len(buckets))
	for k, bucket := range buckets {
		counts[k] = bucket.Count
	}
	return counts
}

// Displs returns the offset of each bucket.
func Displs(buckets []Bucket) []int {
	displs := make([]int, len(buckets))
	for k, bucket := range buckets {
		displs[k] = bucket.Offset
	}
	return displs
}

// Offsets returns the exclusive prefix sum of the given counts along with
// their total, i.e. where each run starts in the concatenation of all runs.
func Offsets(counts []int) (offsets []int, total int) {
	offsets = make([]int, len(counts))
	for index, count := range counts {
		offsets[index] = total
		total += count
	}
	return
}
