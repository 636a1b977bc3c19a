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

	"github.com/9rum/samplesort/internal/data"
	"github.com/9rum/samplesort/internal/fault"
	"github.com/golang/glog"
)

// Layout of the summary each rank contributes to the verification.
const (
	summaryInputLen = iota
	summaryOutputLen
	summaryInputDigest
	summaryOutputDigest
	summarySorted
	summaryMin
	summaryMax
	summaryLen
)

// verify checks on the coordinator that no element was lost, duplicated or
// altered by the exchange and that the shards are in global order, then
// broadcasts the verdict so that every rank fails alike.
func (p *pipeline) verify(ctx context.Context, inputLen int, inputDigest uint64, shard []int64) error {
	summary := make([]int64, summaryLen)
	summary[summaryInputLen] = int64(inputLen)
	summary[summaryOutputLen] = int64(len(shard))
	summary[summaryInputDigest] = int64(inputDigest)
	summary[summaryOutputDigest] = int64(data.Fingerprint(shard))
	if IsSorted(shard) {
		summary[summarySorted] = 1
	}
	if 0 < len(shard) {
		summary[summaryMin] = shard[0]
		summary[summaryMax] = shard[len(shard)-1]
	}

	gathered, err := p.comm.Gather(ctx, summary, p.conf.Coordinator)
	if err != nil {
		return err
	}

	verdict := []int64{0, fault.NoRank}
	if p.rank == p.conf.Coordinator {
		if err = checkSummaries(gathered, p.conf.WorldSize); err != nil {
			glog.Errorf("verification failed: %v", err)
			verdict = []int64{1, int64(fault.RankOf(err))}
		} else {
			glog.Infof("verified the order of %d elements", summed(gathered, summaryOutputLen))
		}
	}

	if verdict, err = p.comm.Bcast(ctx, verdict, p.conf.Coordinator); err != nil {
		return err
	}
	if len(verdict) != 2 {
		return fault.New(fault.Protocol, p.conf.Coordinator, "broadcast a verdict of %d elements", len(verdict))
	}
	if verdict[0] != 0 {
		return fault.New(fault.Protocol, int(verdict[1]), "verification of the sorted shards failed")
	}
	return nil
}

// checkSummaries checks the summaries of every rank, given in rank order.
func checkSummaries(gathered []int64, worldSize int) error {
	if len(gathered) != summaryLen*worldSize {
		return fault.New(fault.Protocol, fault.NoRank, "gathered %d summary elements, expected %d", len(gathered), summaryLen*worldSize)
	}

	var (
		inputDigest  uint64
		outputDigest uint64
		prev         = fault.NoRank
		prevMax      int64
	)
	for rank := 0; rank < worldSize; rank++ {
		summary := gathered[rank*summaryLen : (rank+1)*summaryLen]
		inputDigest += uint64(summary[summaryInputDigest])
		outputDigest += uint64(summary[summaryOutputDigest])

		if summary[summaryOutputLen] == 0 {
			continue
		}
		if summary[summarySorted] == 0 {
			return fault.New(fault.Protocol, rank, "shard is not sorted")
		}
		if prev != fault.NoRank && summary[summaryMin] < prevMax {
			return fault.New(fault.Protocol, rank, "minimum %d is less than the maximum %d of rank %d", summary[summaryMin], prevMax, prev)
		}
		prev, prevMax = rank, summary[summaryMax]
	}

	if in, out := summed(gathered, summaryInputLen), summed(gathered, summaryOutputLen); in != out {
		return fault.New(fault.Protocol, fault.NoRank, "%d elements went in but %d came out", in, out)
	}
	if inputDigest != outputDigest {
		return fault.New(fault.Protocol, fault.NoRank, "the multiset of elements changed")
	}
	return nil
}

// summed returns the sum of the given summary field over every rank.
func summed(gathered []int64, field int) (sum int64) {
	for index := field; index < len(gathered); index += summaryLen {
		sum += gathered[index]
	}
	return
}
