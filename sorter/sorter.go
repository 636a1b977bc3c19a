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

// Package sorter implements a parallel sample sort over the ranks of a
// communicator.  Every rank sorts its shard locally, contributes a sample to
// the coordinator, partitions its shard by the splitters the coordinator
// broadcasts, exchanges the buckets with its peers and sorts what it
// received.  On return, concatenating the shards of rank 0 through P-1 yields
// the whole dataset in ascending order.
package sorter

import (
	"context"
	"math"
	"time"

	"github.com/9rum/samplesort/communicator"
	"github.com/9rum/samplesort/internal/data"
	"github.com/9rum/samplesort/internal/fault"
	"github.com/9rum/samplesort/internal/metrics"
	"github.com/golang/glog"
)

const (
	// MaxCombinedSamples bounds the size of the combined sample set the
	// coordinator has to hold.
	MaxCombinedSamples = 1 << 24

	// MaxShardLen bounds the number of elements a rank accepts from the
	// exchange.
	MaxShardLen = math.MaxInt32
)

// Config describes a run of the sample sort.  Every rank must run with the
// same configuration.
type Config struct {
	// WorldSize is the number of ranks, which must match the communicator.
	WorldSize int
	// Coordinator is the rank that selects the splitters.
	Coordinator int
	// SampleSize is the number of samples each rank contributes.
	SampleSize int
	// Strategy selects how the samples are drawn.
	Strategy Strategy
	// Seed is the base seed of random sampling; each rank adds its rank.
	Seed int64
	// Verify enables a global check of the result after the merge.
	Verify bool
}

// Validate checks the configuration without regard to any particular rank.
func (c Config) Validate() error {
	return c.validate(fault.NoRank)
}

func (c Config) validate(rank int) error {
	switch {
	case c.WorldSize <= 0:
		return fault.New(fault.Config, rank, "world size must be positive, got %d", c.WorldSize)
	case c.Coordinator < 0 || c.WorldSize <= c.Coordinator:
		return fault.New(fault.Config, rank, "coordinator %d is out of range [0, %d)", c.Coordinator, c.WorldSize)
	case c.SampleSize <= 0:
		return fault.New(fault.Config, rank, "sample size must be positive, got %d", c.SampleSize)
	case MaxCombinedSamples/c.WorldSize <= c.SampleSize:
		return fault.New(fault.Config, rank, "%d samples from each of %d ranks exceed the limit of %d", c.SampleSize, c.WorldSize, MaxCombinedSamples)
	case c.Strategy != Regular && c.Strategy != Random:
		return fault.New(fault.Config, rank, "invalid sampling strategy %d", c.Strategy)
	}
	return nil
}

// Phase is the time a rank spent in a single phase of the sort.
type Phase struct {
	Name     string
	Duration time.Duration
}

// Stats summarizes a run on a single rank.
type Stats struct {
	Rank       int
	Input      int
	Splitters  []int64
	SendCounts []int
	RecvCounts []int
	Phases     []Phase
}

// Result is the outcome of a run on a single rank.
type Result struct {
	Shard []int64
	Stats Stats
}

// pipeline carries the state of a run on a single rank.
type pipeline struct {
	comm    communicator.Communicator
	conf    Config
	rank    int
	sampler Sampler
	stats   *Stats
}

// Run sorts the given shard together with the shards of every other rank of
// comm.  The given shard is sorted in place and the shard this rank ends up
// with is returned as part of the result.  If any rank fails, the world is
// aborted so that no rank is left waiting in a collective.
func Run(ctx context.Context, comm communicator.Communicator, shard []int64, conf Config) (result *Result, err error) {
	defer func() {
		if err != nil {
			comm.Abort(err)
		}
	}()

	rank := comm.Rank()
	if err = conf.validate(rank); err != nil {
		return nil, err
	}
	if conf.WorldSize != comm.Size() {
		return nil, fault.New(fault.Config, rank, "world size %d does not match the communicator size %d", conf.WorldSize, comm.Size())
	}

	result = &Result{Stats: Stats{Rank: rank, Input: len(shard)}}
	p := &pipeline{
		comm:    comm,
		conf:    conf,
		rank:    rank,
		sampler: NewSampler(conf.Strategy, conf.Seed+int64(rank)),
		stats:   &result.Stats,
	}
	if result.Shard, err = p.run(ctx, shard); err != nil {
		return nil, err
	}
	return result, nil
}

func (p *pipeline) run(ctx context.Context, shard []int64) ([]int64, error) {
	var digest uint64
	if p.conf.Verify {
		digest = data.Fingerprint(shard)
	}

	start := time.Now()
	Sort(shard)
	p.observe("sort", start)

	if p.conf.WorldSize == 1 {
		p.stats.SendCounts = []int{len(shard)}
		p.stats.RecvCounts = []int{len(shard)}
		glog.Infof("rank %d sorted %d elements without communication", p.rank, len(shard))
		return shard, nil
	}

	start = time.Now()
	splitters, err := p.splitters(ctx, shard)
	if err != nil {
		return nil, err
	}
	p.stats.Splitters = splitters
	p.observe("splitters", start)

	start = time.Now()
	buckets := Partition(shard, splitters)
	p.observe("partition", start)

	start = time.Now()
	recv, err := p.exchange(ctx, shard, buckets)
	if err != nil {
		return nil, err
	}
	p.observe("exchange", start)

	start = time.Now()
	Sort(recv)
	p.observe("merge", start)
	glog.Infof("rank %d holds %d elements after the exchange, %d before", p.rank, len(recv), len(shard))

	if p.conf.Verify {
		start = time.Now()
		if err = p.verify(ctx, len(shard), digest, recv); err != nil {
			return nil, err
		}
		p.observe("verify", start)
	}

	return recv, nil
}

func (p *pipeline) observe(phase string, start time.Time) {
	elapsed := metrics.ObservePhase(phase, start)
	p.stats.Phases = append(p.stats.Phases, Phase{Name: phase, Duration: elapsed})
	if glog.V(1) {
		glog.Infof("rank %d finished %s in %v", p.rank, phase, elapsed)
	}
}

// splitters samples the local shard and obtains the splitters from the
// coordinator.  The combined sample set only ever exists on the coordinator.
func (p *pipeline) splitters(ctx context.Context, shard []int64) ([]int64, error) {
	size := p.conf.SampleSize
	gathered, err := p.comm.Gather(ctx, envelope(p.sampler.Sample(shard, size), size), p.conf.Coordinator)
	if err != nil {
		return nil, err
	}

	splitters := make([]int64, p.conf.WorldSize-1)
	if p.rank == p.conf.Coordinator {
		combined, err := unwrap(gathered, size, p.conf.WorldSize)
		if err != nil {
			return nil, err
		}
		splitters = SelectSplitters(combined, p.conf.WorldSize)
		glog.Infof("coordinator selected %d splitters from %d samples", len(splitters), len(combined))
	}

	if splitters, err = p.comm.Bcast(ctx, splitters, p.conf.Coordinator); err != nil {
		return nil, err
	}
	if len(splitters) != p.conf.WorldSize-1 {
		return nil, fault.New(fault.Protocol, p.conf.Coordinator, "broadcast %d splitters, expected %d", len(splitters), p.conf.WorldSize-1)
	}
	if glog.V(1) {
		glog.Infof("rank %d received splitters %v", p.rank, splitters)
	}
	return splitters, nil
}

// exchange sends every bucket to its rank in two phases: a fixed-size
// all-to-all of the bucket sizes, which tells every rank how much to expect
// from each peer, followed by the variable-size all-to-all of the buckets.
func (p *pipeline) exchange(ctx context.Context, shard []int64, buckets []Bucket) ([]int64, error) {
	sendCounts := Counts(buckets)
	sizes := make([]int64, len(sendCounts))
	for dst, count := range sendCounts {
		sizes[dst] = int64(count)
	}

	sizes, err := p.comm.Alltoall(ctx, sizes)
	if err != nil {
		return nil, err
	}
	if len(sizes) != p.conf.WorldSize {
		return nil, fault.New(fault.Protocol, p.rank, "received %d bucket sizes, expected %d", len(sizes), p.conf.WorldSize)
	}

	recvCounts := make([]int, len(sizes))
	var sum int64
	for src, size := range sizes {
		if size < 0 {
			return nil, fault.New(fault.Protocol, src, "announced a bucket of %d elements", size)
		}
		if sum += size; MaxShardLen < sum {
			return nil, fault.New(fault.Resource, p.rank, "cannot receive more than %d elements", MaxShardLen)
		}
		recvCounts[src] = int(size)
	}
	recvDispls, total := Offsets(recvCounts)

	recv, err := p.comm.Alltoallv(ctx, shard, sendCounts, Displs(buckets), recvCounts, recvDispls)
	if err != nil {
		return nil, err
	}
	if len(recv) != total {
		return nil, fault.New(fault.Protocol, p.rank, "received %d elements, expected %d", len(recv), total)
	}

	p.stats.SendCounts = sendCounts
	p.stats.RecvCounts = recvCounts
	metrics.AddExchanged(p.rank, len(shard), len(recv))

	return recv, nil
}
