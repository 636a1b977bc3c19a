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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomSource(t *testing.T) {
	source := NewRandomSource(1<<10, DefaultSeed)

	shard, err := source.Load(0, 4)
	require.NoError(t, err)
	assert.Len(t, shard, 1<<10)
	for _, value := range shard {
		assert.GreaterOrEqual(t, value, int64(0))
		assert.Less(t, value, int64(1)<<31)
	}

	again, err := source.Load(0, 4)
	require.NoError(t, err)
	assert.Equal(t, shard, again)

	other, err := source.Load(1, 4)
	require.NoError(t, err)
	assert.NotEqual(t, shard, other)

	_, err = NewRandomSource(-1, 0).Load(0, 1)
	assert.Error(t, err)
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, InputName(2)), []byte("5\n-1\n\n  3 \n"), 0o644))

	shard, err := NewFileSource(dir).Load(2, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, -1, 3}, shard)

	_, err = NewFileSource(dir).Load(0, 3)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, InputName(1)), []byte("1\nx\n"), 0o644))
	_, err = NewFileSource(dir).Load(1, 3)
	assert.ErrorContains(t, err, "input01.txt:2")
}

func TestSliceSource(t *testing.T) {
	shards := [][]int64{{5, 1, 3}, {9, 2, 8}}
	source := NewSliceSource(shards)

	shard, err := source.Load(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{9, 2, 8}, shard)

	// the loaded shard is a copy
	shard[0] = 0
	assert.Equal(t, int64(9), shards[1][0])

	shard, err = source.Load(2, 3)
	require.NoError(t, err)
	assert.Empty(t, shard)

	_, err = source.Load(3, 3)
	assert.Error(t, err)
}

func TestFileSink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	sink := NewFileSink(dir)
	require.NoError(t, sink.Store(1, []int64{-2, 0, 7}))
	require.NoError(t, sink.Store(0, nil))

	b, err := os.ReadFile(filepath.Join(dir, OutputName(1)))
	require.NoError(t, err)
	assert.Equal(t, "-2\n0\n7\n", string(b))

	b, err = os.ReadFile(filepath.Join(dir, OutputName(0)))
	require.NoError(t, err)
	assert.Empty(t, b)

	// the written shard reads back through the file source layout
	require.NoError(t, os.Rename(filepath.Join(dir, OutputName(1)), filepath.Join(dir, InputName(1))))
	shard, err := NewFileSource(dir).Load(1, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{-2, 0, 7}, shard)
}

func TestMemorySink(t *testing.T) {
	sink := NewMemorySink()
	shard := []int64{1, 2}
	require.NoError(t, sink.Store(1, shard))
	assert.Error(t, sink.Store(1, shard))

	shard[0] = 0
	assert.Equal(t, [][]int64{nil, {1, 2}, nil}, sink.Shards(3))
}

func TestFingerprint(t *testing.T) {
	assert.Zero(t, Fingerprint(nil))
	assert.Equal(t, Fingerprint([]int64{3, 1, 2}), Fingerprint([]int64{1, 2, 3}))
	assert.Equal(t, Fingerprint([]int64{1, 2, 3}), Fingerprint([]int64{1})+Fingerprint([]int64{2, 3}))
	assert.NotEqual(t, Fingerprint([]int64{1, 2, 3}), Fingerprint([]int64{1, 2, 2}))
	assert.NotEqual(t, Fingerprint([]int64{1, 1}), Fingerprint([]int64{1}))
}
