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

// Package worker implements the command that runs a single rank against a
// communicator server.
package worker

import (
	"context"
	"os"
	"os/signal"

	"github.com/9rum/samplesort/cmd/flag"
	"github.com/9rum/samplesort/communicator"
	"github.com/9rum/samplesort/internal/data"
	"github.com/9rum/samplesort/internal/metrics"
	"github.com/9rum/samplesort/sorter"
	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

var (
	configFile string

	Cmd = &cobra.Command{
		Use:   "worker",
		Short: "Run a single rank of a world",
		Long: `Run a single rank of a world.  The rank loads its shard, joins the world
hosted by the serve command, takes part in the sort and stores the shard it
ends up with.`,
		Args: cobra.NoArgs,
		RunE: exec,
	}
)

func init() {
	Cmd.Flags().SortFlags = false

	flag.ConfigFile(Cmd, &configFile)
	flag.Addr(Cmd, "Address of the communicator server")
	Cmd.Flags().IntP("rank", "r", 0, "Rank of this worker")
	flag.Sort(Cmd)
	flag.Data(Cmd)
	flag.MetricsAddr(Cmd)
}

func exec(cmd *cobra.Command, _ []string) error {
	v, err := flag.Load(cmd, configFile)
	if err != nil {
		return err
	}
	conf, err := flag.SortConfig(v)
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

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	return run(ctx, v.GetString("addr"), v.GetInt("rank"), conf, flag.Source(v), flag.Sink(v))
}

// run sorts the shard of the given rank and stores the result to sink unless
// it is nil.
func run(ctx context.Context, addr string, rank int, conf sorter.Config, source data.Source, sink data.Sink) (err error) {
	shard, err := source.Load(rank, conf.WorldSize)
	if err != nil {
		return errors.Wrapf(err, "rank %d failed to load its shard", rank)
	}
	glog.Infof("rank %d loaded %s elements", rank, humanize.Comma(int64(len(shard))))

	comm, err := communicator.Dial(ctx, addr, rank, conf.WorldSize)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, comm.Close())
	}()

	result, err := sorter.Run(ctx, comm, shard, conf)
	if err != nil {
		return err
	}
	for _, phase := range result.Stats.Phases {
		glog.Infof("rank %d spent %v in %s", rank, phase.Duration, phase.Name)
	}
	glog.Infof("rank %d sent %s and received %s elements", rank,
		humanize.Comma(int64(len(shard))), humanize.Comma(int64(len(result.Shard))))

	if sink != nil {
		return sink.Store(rank, result.Shard)
	}
	return nil
}
