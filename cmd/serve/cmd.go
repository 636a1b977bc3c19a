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

// Package serve implements the command that hosts the communicator runtime
// of a world.  The server stops by itself once every rank has finalized.
package serve

import (
	"net"
	"os"
	"os/signal"

	"github.com/9rum/samplesort/cmd/flag"
	"github.com/9rum/samplesort/communicator"
	"github.com/9rum/samplesort/internal/metrics"
	"github.com/golang/glog"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
)

var (
	configFile string

	Cmd = &cobra.Command{
		Use:   "serve",
		Short: "Host the communicator runtime of a world",
		Long: `Host the communicator runtime of a world of ranks.  Every rank joins by
running the worker command against the address of this server.`,
		Args: cobra.NoArgs,
		RunE: exec,
	}
)

func init() {
	Cmd.Flags().SortFlags = false

	flag.ConfigFile(Cmd, &configFile)
	flag.Addr(Cmd, "Address to listen on")
	Cmd.Flags().IntP("world-size", "n", 1, "Number of ranks")
	flag.MetricsAddr(Cmd)
}

func exec(cmd *cobra.Command, _ []string) error {
	v, err := flag.Load(cmd, configFile)
	if err != nil {
		return err
	}

	if addr := v.GetString("metrics-addr"); addr != "" {
		m, err := metrics.Start(addr)
		if err != nil {
			return err
		}
		defer m.Close()
	}

	return serve(v.GetString("addr"), v.GetInt("world-size"))
}

func serve(addr string, worldSize int) error {
	if worldSize <= 0 {
		return errors.Errorf("world size must be positive, got %d", worldSize)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "failed to listen on %s", addr)
	}

	server := newServer(worldSize)
	glog.Infof("server listening at %v for %d ranks", lis.Addr(), worldSize)

	return server.Serve(lis)
}

func newServer(worldSize int) *grpc.Server {
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_recovery.UnaryServerInterceptor(),
			grpc_prometheus.UnaryServerInterceptor,
		),
		grpc.MaxRecvMsgSize(communicator.MaxMessageSize),
		grpc.MaxSendMsgSize(communicator.MaxMessageSize),
	)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt)

	go func(done chan os.Signal, server *grpc.Server) {
		sig := <-done
		signal.Stop(done)
		// ranks may still be waiting in a collective on interrupt
		if sig == os.Interrupt {
			server.Stop()
			return
		}
		server.GracefulStop()
	}(done, server)

	communicator.RegisterCommunicatorServer(server, communicator.NewCommunicatorServer(done, worldSize))
	grpc_prometheus.Register(server)

	return server
}
