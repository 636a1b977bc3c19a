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

package local

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/9rum/samplesort/internal/data"
	"github.com/9rum/samplesort/sorter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	source := data.NewSliceSource([][]int64{{5, 1, 3}, {9, 2, 8}, {4, 7, 6}})
	sink := data.NewMemorySink()
	conf := sorter.Config{WorldSize: 3, SampleSize: 1, Verify: true}

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out, conf, source, sink))

	assert.Equal(t, [][]int64{{1}, {2, 3}, {4, 5, 6, 7, 8, 9}}, sink.Shards(3))
	assert.Contains(t, out.String(), "sorted 9 elements on 3 ranks")
	assert.Contains(t, out.String(), "rank 2: 3 in, 6 out (66.7%)")
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	conf := sorter.Config{WorldSize: 4, SampleSize: 8}

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out, conf, data.NewRandomSource(100, data.DefaultSeed), data.NewFileSink(dir)))

	var sorted []int64
	for rank := 0; rank < conf.WorldSize; rank++ {
		shard, err := data.ReadFile(filepath.Join(dir, data.OutputName(rank)))
		require.NoError(t, err)
		sorted = append(sorted, shard...)
	}
	assert.Len(t, sorted, 400)
	assert.True(t, sorter.IsSorted(sorted))
}

func TestRunInvalid(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), &out, sorter.Config{WorldSize: 2, SampleSize: 1}, data.NewFileSource(t.TempDir()), nil)
	assert.Error(t, err)
	assert.Empty(t, out.String())
}
