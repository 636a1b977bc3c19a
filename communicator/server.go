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
	"os"
	"sync/atomic"
	"syscall"

	"github.com/9rum/samplesort/internal/fault"
	"github.com/golang/glog"
	"github.com/golang/protobuf/ptypes/empty"
	"github.com/pkg/errors"
)

// communicatorServer implements the server API for Communicator service.
type communicatorServer struct {
	UnimplementedCommunicatorServer
	hub       *hub
	done      chan<- os.Signal
	finalized atomic.Int32
}

// NewCommunicatorServer creates a new communicator server hosting a world of
// the given size.  Once every rank has called Finalize, SIGTERM is delivered
// to done without blocking.
func NewCommunicatorServer(done chan<- os.Signal, worldSize int) CommunicatorServer {
	return &communicatorServer{
		hub:  newHub(worldSize),
		done: done,
	}
}

// Init joins the calling rank to the world and returns once every rank has
// joined.
func (c *communicatorServer) Init(ctx context.Context, in *InitRequest) (*empty.Empty, error) {
	glog.Infof("Init called from rank %d with world size: %d", in.GetRank(), in.GetWorldSize())

	if in.GetWorldSize() != int64(c.hub.size()) {
		err := fault.New(fault.Config, int(in.GetRank()), "world size %d does not match the served world size %d", in.GetWorldSize(), c.hub.size())
		c.hub.abort(err)
		return nil, toStatus(err)
	}

	if _, err := c.hub.collect(ctx, contribution{op: opBarrier, rank: int(in.GetRank())}); err != nil {
		return nil, toStatus(err)
	}
	return new(empty.Empty), nil
}

// Gather collects the contributions of all ranks on root.
func (c *communicatorServer) Gather(ctx context.Context, in *CollectiveRequest) (*CollectiveResponse, error) {
	glog.V(1).Infof("Gather called from rank %d with %d elements", in.GetRank(), len(in.GetData()))
	return c.collect(ctx, opGather, in)
}

// Bcast broadcasts the buffer of root to all ranks.
func (c *communicatorServer) Bcast(ctx context.Context, in *CollectiveRequest) (*CollectiveResponse, error) {
	glog.V(1).Infof("Bcast called from rank %d", in.GetRank())
	return c.collect(ctx, opBcast, in)
}

// Alltoall exchanges fixed-size blocks between all ranks.
func (c *communicatorServer) Alltoall(ctx context.Context, in *CollectiveRequest) (*CollectiveResponse, error) {
	glog.V(1).Infof("Alltoall called from rank %d with %d elements", in.GetRank(), len(in.GetData()))
	return c.collect(ctx, opAlltoall, in)
}

// Alltoallv exchanges variable-length runs between all ranks.
func (c *communicatorServer) Alltoallv(ctx context.Context, in *CollectiveRequest) (*CollectiveResponse, error) {
	glog.V(1).Infof("Alltoallv called from rank %d with %d elements", in.GetRank(), len(in.GetData()))
	return c.collect(ctx, opAlltoallv, in)
}

// collect hands the request over to the hub and converts the delivery.
func (c *communicatorServer) collect(ctx context.Context, o op, in *CollectiveRequest) (*CollectiveResponse, error) {
	d, err := c.hub.collect(ctx, contribution{
		op:     o,
		rank:   int(in.GetRank()),
		root:   int(in.GetRoot()),
		data:   in.GetData(),
		counts: cast[int64, int](in.GetCounts()),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &CollectiveResponse{Data: d.data, Counts: cast[int, int64](d.counts)}, nil
}

// Barrier blocks until all ranks have called it.
func (c *communicatorServer) Barrier(ctx context.Context, in *CollectiveRequest) (*empty.Empty, error) {
	glog.V(1).Infof("Barrier called from rank %d", in.GetRank())
	if _, err := c.hub.collect(ctx, contribution{op: opBarrier, rank: int(in.GetRank())}); err != nil {
		return nil, toStatus(err)
	}
	return new(empty.Empty), nil
}

// Abort fails the world on behalf of the calling rank.
func (c *communicatorServer) Abort(ctx context.Context, in *AbortRequest) (*empty.Empty, error) {
	glog.Warningf("Abort called from rank %d: %s", in.GetRank(), in.GetReason())
	c.hub.abort(&fault.Error{
		Kind: fault.Kind(in.GetKind()),
		Rank: int(in.GetRank()),
		Err:  errors.New(in.GetReason()),
	})
	return new(empty.Empty), nil
}

// Finalize terminates the communicator runtime.  The last rank to finalize
// stops the hub and notifies the main goroutine.
func (c *communicatorServer) Finalize(ctx context.Context, in *CollectiveRequest) (*empty.Empty, error) {
	glog.Infof("Finalize called from rank %d", in.GetRank())
	defer glog.Flush()

	if _, err := c.hub.collect(ctx, contribution{op: opBarrier, rank: int(in.GetRank())}); err != nil {
		c.close()
		return nil, toStatus(err)
	}
	if int(c.finalized.Add(1)) == c.hub.size() {
		c.close()
	}
	return new(empty.Empty), nil
}

// close stops the hub and notifies the main goroutine that the communicator
// runtime has ended.
func (c *communicatorServer) close() {
	c.hub.close()
	select {
	case c.done <- syscall.SIGTERM:
	default:
	}
}
