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

package serve

import (
	"context"
	"net"
	"testing"

	"github.com/9rum/samplesort/communicator"
	"github.com/9rum/samplesort/sorter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestServer(t *testing.T) {
	const worldSize = 2

	lis, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)

	served := make(chan error, 1)
	go func() {
		served <- newServer(worldSize).Serve(lis)
	}()

	shards := [][]int64{{3, 1, 4, 1, 5}, {9, 2, 6, 5, 3}}
	results := make([]*sorter.Result, worldSize)
	var g errgroup.Group
	for rank := range shards {
		g.Go(func() error {
			comm, err := communicator.Dial(context.Background(), lis.Addr().String(), rank, worldSize)
			if err != nil {
				return err
			}
			if results[rank], err = sorter.Run(context.Background(), comm, shards[rank], sorter.Config{WorldSize: worldSize, SampleSize: 2}); err != nil {
				return err
			}
			return comm.Close()
		})
	}
	require.NoError(t, g.Wait())

	sorted := append(results[0].Shard, results[1].Shard...)
	assert.Equal(t, []int64{1, 1, 2, 3, 3, 4, 5, 5, 6, 9}, sorted)

	// the server stops once every rank has finalized
	assert.NoError(t, <-served)
}

func TestServeInvalid(t *testing.T) {
	assert.Error(t, serve("localhost:0", 0))
	assert.Error(t, serve("localhost:-1", 1))
}
