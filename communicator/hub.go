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

	"github.com/9rum/samplesort/internal/fault"
	"github.com/9rum/samplesort/internal/metrics"
	"github.com/golang/glog"
)

var errClosed = fault.New(fault.Aborted, fault.NoRank, "communicator closed")

// hub is the rendezvous point of a world.  Every rank hands its contribution
// over the fan-in channel; once all ranks of the world have arrived, the
// deliveries are computed and handed back over the per-rank fan-out channels.
type hub struct {
	fanin  chan contribution
	fanout []chan delivery
	done   chan struct{}
	once   sync.Once
	cause  error
}

// newHub creates a new hub for a world of the given size.
func newHub(worldSize int) *hub {
	fanout := make([]chan delivery, 0, worldSize)
	for len(fanout) < cap(fanout) {
		// a rank has at most one outstanding delivery
		fanout = append(fanout, make(chan delivery, 1))
	}
	h := &hub{
		fanin:  make(chan contribution),
		fanout: fanout,
		done:   make(chan struct{}),
	}
	go h.run()
	return h
}

// size returns the world size.
func (h *hub) size() int {
	return len(h.fanout)
}

// run serves the collectives one round at a time until the hub is stopped.
func (h *hub) run() {
	for {
		contribs := make([]contribution, h.size())
		arrived := make([]bool, h.size())
		for range contribs {
			select {
			case c := <-h.fanin:
				if arrived[c.rank] {
					h.abort(fault.New(fault.Protocol, c.rank, "issued %s before the previous collective completed", c.op))
					return
				}
				arrived[c.rank] = true
				contribs[c.rank] = c
			case <-h.done:
				return
			}
		}

		deliveries, err := reduce(contribs)
		if err != nil {
			h.abort(err)
			return
		}
		metrics.Collectives.WithLabelValues(contribs[0].op.String()).Inc()

		for rank, d := range deliveries {
			h.fanout[rank] <- d
		}
	}
}

// collect hands the given contribution over to the current round and blocks
// until the round completes.  Canceling ctx aborts the whole world, since the
// remaining ranks could otherwise never complete the round.
func (h *hub) collect(ctx context.Context, c contribution) (delivery, error) {
	if c.rank < 0 || h.size() <= c.rank {
		return delivery{}, fault.New(fault.Protocol, c.rank, "rank is out of range [0, %d)", h.size())
	}
	glog.V(2).Infof("rank %d entered %s", c.rank, c.op)
	if err := ctx.Err(); err != nil {
		h.abort(fault.Wrap(fault.Aborted, c.rank, err, c.op.String()+" canceled"))
		return delivery{}, h.cause
	}

	select {
	case h.fanin <- c:
	case <-h.done:
		return delivery{}, h.cause
	case <-ctx.Done():
		h.abort(fault.Wrap(fault.Aborted, c.rank, ctx.Err(), c.op.String()+" canceled"))
		return delivery{}, h.cause
	}

	select {
	case d := <-h.fanout[c.rank]:
		return d, nil
	case <-h.done:
		return delivery{}, h.cause
	case <-ctx.Done():
		h.abort(fault.Wrap(fault.Aborted, c.rank, ctx.Err(), c.op.String()+" canceled"))
		return delivery{}, h.cause
	}
}

// abort fails every pending and future collective with the given cause.
// Only the first cause is kept.
func (h *hub) abort(cause error) {
	h.once.Do(func() {
		glog.Errorf("aborting world of %d ranks: %v", h.size(), cause)
		h.cause = cause
		close(h.done)
	})
}

// close stops the hub once every rank is done with it.
func (h *hub) close() {
	h.once.Do(func() {
		h.cause = errClosed
		close(h.done)
	})
}
