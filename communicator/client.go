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
	"math"
	"time"

	"github.com/9rum/samplesort/internal/fault"
	"github.com/cenkalti/backoff/v4"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// MaxMessageSize bounds the size of a single collective payload on the wire.
const MaxMessageSize = math.MaxInt32

// client is a rank whose world is hosted by a communicator server.
type client struct {
	conn *grpc.ClientConn
	stub CommunicatorClient
	rank int
	size int
}

// Dial connects to the communicator server at target and joins its world as
// the given rank.  It blocks until every rank has joined, retrying while the
// server is not reachable yet.
func Dial(ctx context.Context, target string, rank, worldSize int) (Communicator, error) {
	if worldSize <= 0 {
		return nil, fault.New(fault.Config, rank, "world size must be positive, got %d", worldSize)
	}
	if rank < 0 || worldSize <= rank {
		return nil, fault.New(fault.Config, rank, "rank is out of range [0, %d)", worldSize)
	}

	conn, err := grpc.NewClient(target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(MaxMessageSize),
			grpc.MaxCallSendMsgSize(MaxMessageSize),
		),
	)
	if err != nil {
		return nil, fault.Wrap(fault.Config, rank, err, "could not create client")
	}

	c := &client{
		conn: conn,
		stub: NewCommunicatorClient(conn),
		rank: rank,
		size: worldSize,
	}
	if err = c.init(ctx); err != nil {
		return nil, multierr.Append(err, conn.Close())
	}
	return c, nil
}

// init joins the world.  Only an unavailable server is retried; the
// collectives themselves are never retried.
func (c *client) init(ctx context.Context) error {
	in := &InitRequest{Rank: int64(c.rank), WorldSize: int64(c.size)}
	err := backoff.RetryNotify(func() error {
		_, err := c.stub.Init(ctx, in)
		if status.Code(err) == codes.Unavailable {
			return err
		}
		if err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}, backoff.WithContext(backoff.NewExponentialBackOff(), ctx), func(err error, wait time.Duration) {
		glog.Warningf("rank %d could not reach the communicator, retrying in %v: %v", c.rank, wait, err)
	})
	return fromStatus(c.rank, err)
}

func (c *client) Rank() int {
	return c.rank
}

func (c *client) Size() int {
	return c.size
}

func (c *client) Gather(ctx context.Context, send []int64, root int) ([]int64, error) {
	resp, err := c.stub.Gather(ctx, &CollectiveRequest{Rank: int64(c.rank), Root: int64(root), Data: send})
	if err != nil {
		return nil, fromStatus(c.rank, err)
	}
	return resp.GetData(), nil
}

func (c *client) Bcast(ctx context.Context, buf []int64, root int) ([]int64, error) {
	in := &CollectiveRequest{Rank: int64(c.rank), Root: int64(root)}
	if c.rank == root {
		in.Data = buf
	}
	resp, err := c.stub.Bcast(ctx, in)
	if err != nil {
		return nil, fromStatus(c.rank, err)
	}
	return resp.GetData(), nil
}

func (c *client) Alltoall(ctx context.Context, send []int64) ([]int64, error) {
	resp, err := c.stub.Alltoall(ctx, &CollectiveRequest{Rank: int64(c.rank), Data: send})
	if err != nil {
		return nil, fromStatus(c.rank, err)
	}
	return resp.GetData(), nil
}

func (c *client) Alltoallv(ctx context.Context, send []int64, sendCounts, sendDispls, recvCounts, recvDispls []int) ([]int64, error) {
	packed, err := pack(c.rank, send, sendCounts, sendDispls)
	if err != nil {
		c.Abort(err)
		return nil, err
	}

	resp, err := c.stub.Alltoallv(ctx, &CollectiveRequest{Rank: int64(c.rank), Data: packed, Counts: cast[int, int64](sendCounts)})
	if err != nil {
		return nil, fromStatus(c.rank, err)
	}
	if err = checkRuns(c.rank, recvCounts, cast[int64, int](resp.GetCounts())); err != nil {
		c.Abort(err)
		return nil, err
	}
	recv, err := unpack(c.rank, resp.GetData(), recvCounts, recvDispls)
	if err != nil {
		c.Abort(err)
		return nil, err
	}
	return recv, nil
}

func (c *client) Barrier(ctx context.Context) error {
	_, err := c.stub.Barrier(ctx, &CollectiveRequest{Rank: int64(c.rank)})
	return fromStatus(c.rank, err)
}

// Abort notifies the server on a fresh context, since the context of the
// failed run may already be canceled.
func (c *client) Abort(cause error) {
	in := &AbortRequest{
		Rank:   int64(c.rank),
		Kind:   int64(fault.KindOf(cause)),
		Reason: cause.Error(),
	}
	if f := (*fault.Error)(nil); errors.As(cause, &f) {
		in.Rank = int64(f.Rank)
		in.Reason = f.Err.Error()
	}
	if _, err := c.stub.Abort(context.Background(), in); err != nil {
		glog.Errorf("rank %d could not abort the world: %v", c.rank, err)
	}
}

// Close finalizes the communicator runtime and closes the connection.
func (c *client) Close() error {
	_, err := c.stub.Finalize(context.Background(), &CollectiveRequest{Rank: int64(c.rank)})
	return multierr.Append(fromStatus(c.rank, err), c.conn.Close())
}
