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
	"sync/atomic"

	"github.com/9rum/samplesort/internal/fault"
)

// localCommunicator is a rank of an in-process world.
type localCommunicator struct {
	hub   *hub
	rank  int
	open  *atomic.Int32
	leave sync.Once
}

// NewWorld creates a world of the given size whose ranks communicate over
// channels within the current process.  The i-th communicator is rank i; each
// must be driven by its own goroutine.
func NewWorld(worldSize int) ([]Communicator, error) {
	if worldSize <= 0 {
		return nil, fault.New(fault.Config, fault.NoRank, "world size must be positive, got %d", worldSize)
	}

	h := newHub(worldSize)
	open := new(atomic.Int32)
	open.Store(int32(worldSize))

	world := make([]Communicator, 0, worldSize)
	for len(world) < cap(world) {
		world = append(world, &localCommunicator{hub: h, rank: len(world), open: open})
	}
	return world, nil
}

func (c *localCommunicator) Rank() int {
	return c.rank
}

func (c *localCommunicator) Size() int {
	return c.hub.size()
}

func (c *localCommunicator) Gather(ctx context.Context, send []int64, root int) ([]int64, error) {
	d, err := c.hub.collect(ctx, contribution{op: opGather, rank: c.rank, root: root, data: send})
	return d.data, err
}

func (c *localCommunicator) Bcast(ctx context.Context, buf []int64, root int) ([]int64, error) {
	d, err := c.hub.collect(ctx, contribution{op: opBcast, rank: c.rank, root: root, data: buf})
	return d.data, err
}

func (c *localCommunicator) Alltoall(ctx context.Context, send []int64) ([]int64, error) {
	d, err := c.hub.collect(ctx, contribution{op: opAlltoall, rank: c.rank, data: send})
	return d.data, err
}

func (c *localCommunicator) Alltoallv(ctx context.Context, send []int64, sendCounts, sendDispls, recvCounts, recvDispls []int) ([]int64, error) {
	packed, err := pack(c.rank, send, sendCounts, sendDispls)
	if err != nil {
		c.hub.abort(err)
		return nil, err
	}

	d, err := c.hub.collect(ctx, contribution{op: opAlltoallv, rank: c.rank, data: packed, counts: sendCounts})
	if err != nil {
		return nil, err
	}
	if err = checkRuns(c.rank, recvCounts, d.counts); err != nil {
		c.hub.abort(err)
		return nil, err
	}
	recv, err := unpack(c.rank, d.data, recvCounts, recvDispls)
	if err != nil {
		c.hub.abort(err)
		return nil, err
	}
	return recv, nil
}

func (c *localCommunicator) Barrier(ctx context.Context) error {
	_, err := c.hub.collect(ctx, contribution{op: opBarrier, rank: c.rank})
	return err
}

func (c *localCommunicator) Abort(cause error) {
	c.hub.abort(cause)
}

// Close leaves the world; the last rank to leave stops the hub.
func (c *localCommunicator) Close() error {
	c.leave.Do(func() {
		if c.open.Add(-1) == 0 {
			c.hub.close()
		}
	})
	return nil
}
