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
	"github.com/9rum/samplesort/internal/fault"
)

// envelope prefixes the given sample with the number of valid elements and
// pads it to size, so that every rank contributes exactly size+1 elements to
// the gather even if its shard is empty.
func envelope(sample []int64, size int) []int64 {
	buf := make([]int64, size+1)
	buf[0] = int64(len(sample))
	copy(buf[1:], sample)
	return buf
}

// unwrap extracts the combined sample set from the envelopes gathered from
// every rank.  Each envelope must declare either a full sample or none.
func unwrap(gathered []int64, size, worldSize int) ([]int64, error) {
	stride := size + 1
	if len(gathered) != stride*worldSize {
		return nil, fault.New(fault.Protocol, fault.NoRank, "gathered %d elements, expected %d samples from each of %d ranks", len(gathered), size, worldSize)
	}

	combined := make([]int64, 0, size*worldSize)
	for rank := 0; rank < worldSize; rank++ {
		envelope := gathered[rank*stride : (rank+1)*stride]
		switch n := envelope[0]; n {
		case 0:
		case int64(size):
			combined = append(combined, envelope[1:]...)
		default:
			return nil, fault.New(fault.Protocol, rank, "declared %d samples, expected %d", n, size)
		}
	}
	return combined, nil
}

// SelectSplitters sorts the given combined sample set in place and selects
// worldSize-1 splitters at evenly spaced positions: the k-th splitter is the
// element at position (k+1)·len/worldSize, i.e. (k+1)·s when every rank
// contributed s samples.  An empty sample set yields zero splitters, which
// is harmless since there is nothing to partition.
func SelectSplitters(combined []int64, worldSize int) []int64 {
	splitters := make([]int64, worldSize-1)
	if len(combined) == 0 {
		return splitters
	}

	Sort(combined)
	for k := range splitters {
		splitters[k] = combined[(k+1)*len(combined)/worldSize]
	}
	return splitters
}
