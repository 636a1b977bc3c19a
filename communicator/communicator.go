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

// The communicator package implements the collective communication substrate
// used by the sample sort.  The primitives are based on the syntax of the
// Message Passing Interface (MPI): every rank of a world of fixed size issues
// the same sequence of collectives, and each collective blocks until all ranks
// have reached it.  A communicator runtime always starts with Init (implicit
// for the in-process world) and ends with Close.
//
// Two transports are provided: an in-process world of channel-connected ranks
// (NewWorld) and a gRPC service hosting the same rendezvous for ranks running
// in separate processes (NewCommunicatorServer, Dial).
package communicator

import (
	"context"

	"github.com/9rum/samplesort/internal/fault"
)

// Communicator represents the view of a single rank on its world.
type Communicator interface {
	// Rank returns the identifier of this rank in [0, Size).
	Rank() int

	// Size returns the number of ranks in the world.
	Size() int

	// Gather collects a fixed-size contribution from every rank on root.  Every
	// rank must contribute the same number of elements.  Root receives the
	// contributions concatenated in rank order; the other ranks receive nil.
	Gather(ctx context.Context, send []int64, root int) ([]int64, error)

	// Bcast distributes the buffer of root to every rank.  The buffers of the
	// other ranks are ignored.
	Bcast(ctx context.Context, buf []int64, root int) ([]int64, error)

	// Alltoall sends the j-th block of send to rank j, where every block has
	// len(send) / Size elements, and returns the blocks received from every
	// rank in rank order.
	Alltoall(ctx context.Context, send []int64) ([]int64, error)

	// Alltoallv sends send[sendDispls[j]:sendDispls[j]+sendCounts[j]] to rank j
	// and returns a buffer holding the run received from rank i at
	// recvDispls[i]. recvCounts declares the number of elements expected from
	// each rank; any disagreement with the delivered runs is a protocol
	// violation. Receive runs must not overlap.
	Alltoallv(ctx context.Context, send []int64, sendCounts, sendDispls, recvCounts, recvDispls []int) ([]int64, error)

	// Barrier blocks until every rank has reached it.
	Barrier(ctx context.Context) error

	// Abort fails the pending and future collectives of every rank with the
	// given cause.
	Abort(cause error)

	// Close releases the resources held by this rank.
	Close() error
}

// pack validates the runs described by counts and displs and returns them
// concatenated in destination order.
func pack(rank int, send []int64, counts, displs []int) ([]int64, error) {
	if len(counts) != len(displs) {
		return nil, fault.New(fault.Protocol, rank, "got %d send counts and %d displacements", len(counts), len(displs))
	}

	total := 0
	contiguous := true
	for dest, count := range counts {
		if count < 0 || displs[dest] < 0 || len(send) < displs[dest]+count {
			return nil, fault.New(fault.Protocol, rank, "run [%d:+%d] for rank %d is out of range of %d elements", displs[dest], count, dest, len(send))
		}
		if displs[dest] != total {
			contiguous = false
		}
		total += count
	}

	// runs laid out back to back need no copy
	if contiguous {
		return send[:total], nil
	}

	packed := make([]int64, 0, total)
	for dest, count := range counts {
		packed = append(packed, send[displs[dest]:displs[dest]+count]...)
	}
	return packed, nil
}

// checkRuns compares the number of elements delivered by each rank with the
// expected one.
func checkRuns(rank int, expected []int, delivered []int) error {
	if len(expected) != len(delivered) {
		return fault.New(fault.Protocol, rank, "expected runs from %d ranks, got %d", len(expected), len(delivered))
	}
	for src, count := range delivered {
		if count != expected[src] {
			return fault.New(fault.Protocol, src, "rank %d announced %d elements for rank %d but delivered %d", src, expected[src], rank, count)
		}
	}
	return nil
}

// unpack places the runs of data, concatenated in source order with the given
// counts, at displs and returns the resulting buffer.
func unpack(rank int, data []int64, counts, displs []int) ([]int64, error) {
	if len(counts) != len(displs) {
		return nil, fault.New(fault.Protocol, rank, "got %d receive counts and %d displacements", len(counts), len(displs))
	}

	total, size := 0, 0
	contiguous := true
	for src, count := range counts {
		if displs[src] < 0 {
			return nil, fault.New(fault.Protocol, rank, "negative displacement %d for rank %d", displs[src], src)
		}
		if displs[src] != total {
			contiguous = false
		}
		total += count
		if size < displs[src]+count {
			size = displs[src] + count
		}
	}
	if len(data) != total {
		return nil, fault.New(fault.Protocol, rank, "expected %d elements, got %d", total, len(data))
	}

	if contiguous {
		return data, nil
	}

	buf := make([]int64, size)
	offset := 0
	for src, count := range counts {
		copy(buf[displs[src]:displs[src]+count], data[offset:offset+count])
		offset += count
	}
	return buf, nil
}

// cast casts the given slice.
func cast[T, U ~int | ~int64](slice []T) []U {
	out := make([]U, len(slice))
	for index, value := range slice {
		out[index] = U(value)
	}
	return out
}
