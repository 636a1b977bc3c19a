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
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Sort sorts the given slice in ascending order in place.  The sort is not
// stable, which is of no concern for integers.  It serves both the local
// sort of the input shard and the final sort of the exchanged shard.
func Sort[T constraints.Integer](slice []T) {
	slices.Sort(slice)
}

// IsSorted reports whether the given slice is sorted in ascending order.
func IsSorted[T constraints.Integer](slice []T) bool {
	return slices.IsSorted(slice)
}
