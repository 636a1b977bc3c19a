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
	"github.com/9rum/samplesort/internal/fault"
)

// op identifies a collective.
type op int

const (
	opBarrier op = iota
	opGather
	opBcast
	opAlltoall
	opAlltoallv
)

func (o op) String() string {
	switch o {
	case opBarrier:
		return "Barrier"
	case opGather:
		return "Gather"
	case opBcast:
		return "Bcast"
	case opAlltoall:
		return "Alltoall"
	case opAlltoallv:
		return "Alltoallv"
	default:
		return "unknown"
	}
}

// contribution is what a single rank hands over to a collective.
type contribution struct {
	op     op
	rank   int
	root   int
	data   []int64
	counts []int
}

// delivery is what a single rank takes away from a collective.  counts holds
// the number of elements received from each rank and is set by Alltoallv only.
type delivery struct {
	data   []int64
	counts []int
}

// reduce computes the deliveries for one round of contributions indexed by
// rank.  Every delivered buffer is freshly allocated, so no memory is shared
// between the contributing and the receiving ranks.
func reduce(contribs []contribution) ([]delivery, error) {
	first := contribs[0]
	for rank, c := range contribs {
		if c.op != first.op {
			return nil, fault.New(fault.Protocol, rank, "issued %s while rank 0 issued %s", c.op, first.op)
		}
		if (c.op == opGather || c.op == opBcast) && c.root != first.root {
			return nil, fault.New(fault.Protocol, rank, "%s with root %d while rank 0 used root %d", c.op, c.root, first.root)
		}
	}
	if (first.op == opGather || first.op == opBcast) && (first.root < 0 || len(contribs) <= first.root) {
		return nil, fault.New(fault.Protocol, fault.NoRank, "%s root %d is out of range [0, %d)", first.op, first.root, len(contribs))
	}

	switch first.op {
	case opBarrier:
		return make([]delivery, len(contribs)), nil
	case opGather:
		return gather(contribs, first.root)
	case opBcast:
		return bcast(contribs, first.root), nil
	case opAlltoall:
		return alltoall(contribs)
	case opAlltoallv:
		return alltoallv(contribs)
	default:
		return nil, fault.New(fault.Protocol, fault.NoRank, "unknown collective %d", first.op)
	}
}

// gather concatenates the fixed-size contributions on root.
func gather(contribs []contribution, root int) ([]delivery, error) {
	size := len(contribs[root].data)
	for rank, c := range contribs {
		if len(c.data) != size {
			return nil, fault.New(fault.Protocol, rank, "contributed %d elements to Gather, root %d contributed %d", len(c.data), root, size)
		}
	}

	data := make([]int64, 0, size*len(contribs))
	for _, c := range contribs {
		data = append(data, c.data...)
	}

	deliveries := make([]delivery, len(contribs))
	deliveries[root].data = data
	return deliveries, nil
}

// bcast hands a copy of the buffer of root to every rank.
func bcast(contribs []contribution, root int) []delivery {
	deliveries := make([]delivery, len(contribs))
	for rank := range deliveries {
		deliveries[rank].data = append(make([]int64, 0, len(contribs[root].data)), contribs[root].data...)
	}
	return deliveries
}

// alltoall transposes fixed-size blocks between ranks.
func alltoall(contribs []contribution) ([]delivery, error) {
	worldSize := len(contribs)
	size := len(contribs[0].data)
	for rank, c := range contribs {
		if len(c.data) != size {
			return nil, fault.New(fault.Protocol, rank, "contributed %d elements to Alltoall, rank 0 contributed %d", len(c.data), size)
		}
	}
	if size%worldSize != 0 {
		return nil, fault.New(fault.Protocol, fault.NoRank, "Alltoall contribution of %d elements is not divisible by world size %d", size, worldSize)
	}
	block := size / worldSize

	deliveries := make([]delivery, worldSize)
	for dest := range deliveries {
		data := make([]int64, size)
		for src, c := range contribs {
			copy(data[src*block:], c.data[dest*block:(dest+1)*block])
		}
		deliveries[dest].data = data
	}
	return deliveries, nil
}

// alltoallv moves variable-length runs between ranks.  The data of every
// contribution holds its runs back to back in destination order.
func alltoallv(contribs []contribution) ([]delivery, error) {
	worldSize := len(contribs)
	offsets := make([][]int, worldSize)
	for rank, c := range contribs {
		if len(c.counts) != worldSize {
			return nil, fault.New(fault.Protocol, rank, "contributed %d counts to Alltoallv in a world of %d", len(c.counts), worldSize)
		}
		offsets[rank] = make([]int, worldSize)
		total := 0
		for dest, count := range c.counts {
			if count < 0 {
				return nil, fault.New(fault.Protocol, rank, "negative count %d for rank %d", count, dest)
			}
			offsets[rank][dest] = total
			total += count
		}
		if total != len(c.data) {
			return nil, fault.New(fault.Protocol, rank, "announced %d elements for Alltoallv but sent %d", total, len(c.data))
		}
	}

	deliveries := make([]delivery, worldSize)
	for dest := range deliveries {
		total := 0
		for _, c := range contribs {
			total += c.counts[dest]
		}
		data := make([]int64, 0, total)
		counts := make([]int, worldSize)
		for src, c := range contribs {
			base := offsets[src][dest]
			data = append(data, c.data[base:base+c.counts[dest]]...)
			counts[src] = c.counts[dest]
		}
		deliveries[dest] = delivery{data: data, counts: counts}
	}
	return deliveries, nil
}
