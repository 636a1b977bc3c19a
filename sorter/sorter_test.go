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
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/9rum/samplesort/communicator"
	"github.com/9rum/samplesort/internal/data"
	"github.com/9rum/samplesort/internal/fault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// check asserts that the given results hold the given input in global order.
func check(t *testing.T, input [][]int64, results []*Result) {
	var (
		n      int
		digest uint64
	)
	for _, shard := range input {
		n += len(shard)
		digest += data.Fingerprint(shard)
	}

	var (
		sent, received int
		output         []int64
	)
	for rank, result := range results {
		require.NotNil(t, result)
		assert.Equal(t, rank, result.Stats.Rank)
		assert.True(t, IsSorted(result.Shard), "shard of rank %d is not sorted", rank)
		output = append(output, result.Shard...)
		for _, count := range result.Stats.SendCounts {
			sent += count
		}
		_, total := Offsets(result.Stats.RecvCounts)
		assert.Len(t, result.Shard, total)
		received += total
	}

	assert.True(t, IsSorted(output), "shards are not in global order")
	assert.Len(t, output, n)
	assert.Equal(t, n, sent)
	assert.Equal(t, n, received)
	assert.Equal(t, digest, data.Fingerprint(output))
}

// clone returns a deep copy of the given shards, since every run sorts them
// in place.
func clone(shards [][]int64) [][]int64 {
	out := make([][]int64, len(shards))
	for rank, shard := range shards {
		out[rank] = append([]int64(nil), shard...)
	}
	return out
}

func TestRunLocal(t *testing.T) {
	input := [][]int64{{5, 1, 3}, {9, 2, 8}, {4, 7, 6}}
	conf := Config{WorldSize: 3, SampleSize: 1}

	results, err := RunLocal(context.Background(), clone(input), conf)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, []int64{1}, results[0].Shard)
	assert.Equal(t, []int64{2, 3}, results[1].Shard)
	assert.Equal(t, []int64{4, 5, 6, 7, 8, 9}, results[2].Shard)
	for _, result := range results {
		assert.Equal(t, []int64{2, 4}, result.Stats.Splitters)
	}
	assert.Equal(t, []int{1, 1, 1}, results[0].Stats.SendCounts)
	assert.Equal(t, []int{0, 1, 2}, results[1].Stats.SendCounts)
	assert.Equal(t, []int{1, 2, 3}, results[2].Stats.RecvCounts)
	check(t, input, results)
}

func TestRunLocalRandom(t *testing.T) {
	r := rand.New(rand.NewSource(data.DefaultSeed))

	for _, worldSize := range []int{1, 2, 3, 5, 8} {
		for _, strategy := range []Strategy{Regular, Random} {
			input := make([][]int64, worldSize)
			for rank := range input {
				input[rank] = make([]int64, r.Intn(200))
				for index := range input[rank] {
					input[rank][index] = r.Int63n(1000) - 500
				}
			}

			conf := Config{
				WorldSize:   worldSize,
				Coordinator: worldSize - 1,
				SampleSize:  16,
				Strategy:    strategy,
				Seed:        data.DefaultSeed,
				Verify:      true,
			}
			results, err := RunLocal(context.Background(), clone(input), conf)
			require.NoError(t, err, "world size %d, %s sampling", worldSize, strategy)
			check(t, input, results)
		}
	}
}

func TestRunLocalDegenerate(t *testing.T) {
	tests := map[string][][]int64{
		"single rank":   {{3, -1, 2, 2}},
		"empty rank":    {{4, 2, 9, 1}, {}, {7, 7, 0}},
		"empty world":   {{}, {}, {}, {}},
		"all equal":     {{5, 5, 5}, {5, 5}, {5, 5, 5, 5}},
		"skewed":        {{1, 1, 1, 1, 1, 1, 1, 1, 2}, {1}, {1, 1, 100}},
		"sparse sample": {{1}, {2}, {3}, {4}, {5}},
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			conf := Config{WorldSize: len(input), SampleSize: 4, Verify: true}
			results, err := RunLocal(context.Background(), clone(input), conf)
			require.NoError(t, err)
			check(t, input, results)
		})
	}
}

func TestRunLocalAllEqual(t *testing.T) {
	input := [][]int64{{5, 5, 5}, {5, 5}, {5, 5, 5, 5}}
	results, err := RunLocal(context.Background(), clone(input), Config{WorldSize: 3, SampleSize: 2})
	require.NoError(t, err)

	// every element equals every splitter, so the last rank takes them all
	assert.Empty(t, results[0].Shard)
	assert.Empty(t, results[1].Shard)
	assert.Len(t, results[2].Shard, 9)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, Config{WorldSize: 4, Coordinator: 3, SampleSize: 8, Strategy: Random}.Validate())

	invalid := map[string]Config{
		"world size":  {WorldSize: 0, SampleSize: 1},
		"coordinator": {WorldSize: 2, Coordinator: 2, SampleSize: 1},
		"negative":    {WorldSize: 2, Coordinator: -1, SampleSize: 1},
		"sample size": {WorldSize: 2},
		"too many":    {WorldSize: 1 << 10, SampleSize: 1 << 14},
		"overflow":    {WorldSize: 2, SampleSize: math.MaxInt},
		"strategy":    {WorldSize: 2, SampleSize: 1, Strategy: Strategy(2)},
	}
	for name, conf := range invalid {
		err := conf.Validate()
		assert.True(t, fault.Is(err, fault.Config), name)
		assert.Equal(t, fault.NoRank, fault.RankOf(err), name)
	}
}

func TestRunInvalid(t *testing.T) {
	_, err := RunLocal(context.Background(), [][]int64{{1}}, Config{WorldSize: 2, SampleSize: 1})
	assert.True(t, fault.Is(err, fault.Config))

	world, err := communicator.NewWorld(2)
	require.NoError(t, err)
	_, err = Run(context.Background(), world[1], []int64{1}, Config{WorldSize: 3, SampleSize: 1})
	assert.True(t, fault.Is(err, fault.Config))
	assert.Equal(t, 1, fault.RankOf(err))

	// the failed rank aborted the world with its own cause
	_, err = world[0].Gather(context.Background(), []int64{1}, 0)
	assert.True(t, fault.Is(err, fault.Config))
	assert.Equal(t, 1, fault.RankOf(err))
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunLocal(ctx, [][]int64{{2, 1}, {4, 3}}, Config{WorldSize: 2, SampleSize: 1})
	assert.True(t, fault.Is(err, fault.Aborted))
}

func TestCheckSummaries(t *testing.T) {
	summary := func(in, out int, inDigest, outDigest uint64, sorted bool, lo, hi int64) []int64 {
		s := make([]int64, summaryLen)
		s[summaryInputLen], s[summaryOutputLen] = int64(in), int64(out)
		s[summaryInputDigest], s[summaryOutputDigest] = int64(inDigest), int64(outDigest)
		if sorted {
			s[summarySorted] = 1
		}
		s[summaryMin], s[summaryMax] = lo, hi
		return s
	}
	a, b := data.Fingerprint([]int64{1, 2}), data.Fingerprint([]int64{3})

	ok := append(summary(2, 1, a, data.Fingerprint([]int64{1}), true, 1, 1), summary(1, 2, b, data.Fingerprint([]int64{2, 3}), true, 2, 3)...)
	assert.NoError(t, checkSummaries(ok, 2))

	err := checkSummaries(ok, 3)
	assert.True(t, fault.Is(err, fault.Protocol))

	overlap := append(summary(2, 2, a, a, true, 1, 2), summary(1, 1, b, b, true, 1, 1)...)
	err = checkSummaries(overlap, 2)
	assert.True(t, fault.Is(err, fault.Protocol))
	assert.Equal(t, 1, fault.RankOf(err))

	unsorted := append(summary(2, 2, a, a, false, 1, 2), summary(1, 1, b, b, true, 3, 3)...)
	assert.Equal(t, 0, fault.RankOf(checkSummaries(unsorted, 2)))

	lost := append(summary(2, 1, a, a, true, 1, 2), summary(1, 1, b, b, true, 3, 3)...)
	err = checkSummaries(lost, 2)
	assert.True(t, fault.Is(err, fault.Protocol))
	assert.Equal(t, fault.NoRank, fault.RankOf(err))

	altered := append(summary(2, 2, a, b, true, 1, 2), summary(1, 1, b, b, true, 3, 3)...)
	assert.Error(t, checkSummaries(altered, 2))
}
