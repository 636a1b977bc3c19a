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

	"github.com/9rum/samplesort/communicator"
	"github.com/9rum/samplesort/internal/fault"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// RunLocal sorts the given shards on an in-process world with one goroutine
// per rank and returns the results indexed by rank.
func RunLocal(ctx context.Context, shards [][]int64, conf Config) ([]*Result, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if len(shards) != conf.WorldSize {
		return nil, fault.New(fault.Config, fault.NoRank, "got %d shards for a world of %d ranks", len(shards), conf.WorldSize)
	}

	world, err := communicator.NewWorld(conf.WorldSize)
	if err != nil {
		return nil, err
	}

	results := make([]*Result, conf.WorldSize)
	g, ctx := errgroup.WithContext(ctx)
	for rank, comm := range world {
		g.Go(func() (err error) {
			defer func() {
				err = multierr.Append(err, comm.Close())
			}()
			results[rank], err = Run(ctx, comm, shards[rank], conf)
			return
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
