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

package communicator

import (
	"context"
	"sync"
	"testing"

	"github.com/9rum/samplesort/internal/fault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spawn runs fn on every rank of the given world and returns the errors
// indexed by rank.
func spawn(world []Communicator, fn func(c Communicator) error) []error {
	errs := make([]error, len(world))

	var wg sync.WaitGroup
	for rank, c := range world {
		wg.Add(1)
		go func(rank int, c Communicator) {
			defer wg.Done()
			errs[rank] = fn(c)
		}(rank, c)
	}
	wg.Wait()

	return errs
}

func TestNewWorld(t *testing.T) {
	_, err := NewWorld(0)
	assert.True(t, fault.Is(err, fault.Config))

	world, err := NewWorld(3)
	require.NoError(t, err)
	for rank, c := range world {
		assert.Equal(t, rank, c.Rank())
		assert.Equal(t, 3, c.Size())
	}
}

func TestLocalCollectives(t *testing.T) {
	const worldSize = 4
	world, err := NewWorld(worldSize)
	require.NoError(t, err)

	ctx := context.Background()
	var mu sync.Mutex
	gathered := make([][]int64, worldSize)
	exchanged := make([][]int64, worldSize)

	errs := spawn(world, func(c Communicator) error {
		rank := int64(c.Rank())
		if err := c.Barrier(ctx); err != nil {
			return err
		}

		all, err := c.Gather(ctx, []int64{rank, rank * 10}, 0)
		if err != nil {
			return err
		}

		buf, err := c.Bcast(ctx, all, 0)
		if err != nil {
			return err
		}
		if len(buf) != 2*worldSize {
			t.Errorf("rank %d got %d elements from Bcast", rank, len(buf))
		}

		// rank r sends r+1 copies of itself to every rank
		counts := make([]int, worldSize)
		for dest := range counts {
			counts[dest] = int(rank) + 1
		}
		recvCounts, err := c.Alltoall(ctx, cast[int, int64](counts))
		if err != nil {
			return err
		}

		send := make([]int64, 0, worldSize*(int(rank)+1))
		displs := make([]int, worldSize)
		for dest := range displs {
			displs[dest] = len(send)
			for i := 0; i < counts[dest]; i++ {
				send = append(send, rank)
			}
		}
		recv, err := c.Alltoallv(ctx, send, counts, displs, cast[int64, int](recvCounts), []int{0, 1, 3, 6})
		if err != nil {
			return err
		}

		mu.Lock()
		defer mu.Unlock()
		gathered[rank] = all
		exchanged[rank] = recv
		return c.Close()
	})
	for _, err := range errs {
		require.NoError(t, err)
	}

	assert.Equal(t, []int64{0, 0, 1, 10, 2, 20, 3, 30}, gathered[0])
	for rank := 1; rank < worldSize; rank++ {
		assert.Nil(t, gathered[rank])
	}
	for rank := 0; rank < worldSize; rank++ {
		assert.Equal(t, []int64{0, 1, 1, 2, 2, 2, 3, 3, 3, 3}, exchanged[rank])
	}
}

func TestLocalProtocolViolation(t *testing.T) {
	world, err := NewWorld(3)
	require.NoError(t, err)

	ctx := context.Background()
	errs := spawn(world, func(c Communicator) error {
		// rank 2 contributes a different number of elements
		send := []int64{1, 2}
		if c.Rank() == 2 {
			send = send[:1]
		}
		_, err := c.Gather(ctx, send, 0)
		return err
	})
	for _, err := range errs {
		assert.True(t, fault.Is(err, fault.Protocol))
		assert.Equal(t, 2, fault.RankOf(err))
	}
}

func TestLocalReceiveCountMismatch(t *testing.T) {
	world, err := NewWorld(2)
	require.NoError(t, err)

	ctx := context.Background()
	errs := spawn(world, func(c Communicator) error {
		recvCounts := []int{1, 1}
		if c.Rank() == 1 {
			recvCounts = []int{1, 2}
		}
		_, err := c.Alltoallv(ctx, []int64{7, 7}, []int{1, 1}, []int{0, 1}, recvCounts, []int{0, 1})
		return err
	})
	assert.True(t, fault.Is(errs[1], fault.Protocol))
	assert.Equal(t, 1, fault.RankOf(errs[1]))
}

func TestLocalCancel(t *testing.T) {
	world, err := NewWorld(3)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errs := spawn(world, func(c Communicator) error {
		if c.Rank() == 1 {
			// rank 1 never reaches the barrier
			cancel()
			return nil
		}
		return c.Barrier(ctx)
	})
	assert.True(t, fault.Is(errs[0], fault.Aborted))
	assert.True(t, fault.Is(errs[2], fault.Aborted))

	// the world stays aborted
	assert.True(t, fault.Is(world[0].Barrier(context.Background()), fault.Aborted))
}

func TestLocalAbort(t *testing.T) {
	world, err := NewWorld(2)
	require.NoError(t, err)

	cause := fault.New(fault.Resource, 1, "out of memory")
	errs := spawn(world, func(c Communicator) error {
		if c.Rank() == 1 {
			c.Abort(cause)
			return nil
		}
		_, err := c.Bcast(context.Background(), nil, 1)
		return err
	})
	assert.Equal(t, cause, errs[0])
}

func TestLocalClose(t *testing.T) {
	world, err := NewWorld(2)
	require.NoError(t, err)

	require.NoError(t, world[0].Close())
	require.NoError(t, world[0].Close())
	require.NoError(t, world[1].Close())

	err = world[1].Barrier(context.Background())
	assert.True(t, fault.Is(err, fault.Aborted))
}

func TestLocalReceiveDisplacements(t *testing.T) {
	world, err := NewWorld(2)
	require.NoError(t, err)

	ctx := context.Background()
	var mu sync.Mutex
	results := make([][]int64, 2)
	errs := spawn(world, func(c Communicator) error {
		rank := int64(c.Rank())
		// the run from rank 1 lands in front of the run from rank 0
		recv, err := c.Alltoallv(ctx, []int64{10 * rank, 10*rank + 1}, []int{1, 1}, []int{0, 1}, []int{1, 1}, []int{2, 0})
		if err != nil {
			return err
		}
		mu.Lock()
		defer mu.Unlock()
		results[rank] = recv
		return nil
	})
	for _, err := range errs {
		require.NoError(t, err)
	}

	assert.Equal(t, []int64{10, 0, 0}, results[0])
	assert.Equal(t, []int64{11, 0, 1}, results[1])
}
