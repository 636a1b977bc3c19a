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

// Package local implements the command that runs a whole world within a
// single process.
package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/9rum/samplesort/cmd/flag"
	"github.com/9rum/samplesort/internal/data"
	"github.com/9rum/samplesort/internal/metrics"
	"github.com/9rum/samplesort/sorter"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	configFile string

	Cmd = &cobra.Command{
		Use:   "local",
		Short: "Run a whole world within a single process",
		Long: `Run a whole world within a single process, with one goroutine per rank
communicating over channels.`,
		Args: cobra.NoArgs,
		RunE: exec,
	}
)

func init() {
	Cmd.Flags().SortFlags = false

	flag.ConfigFile(Cmd, &configFile)
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

	return run(ctx, cmd.OutOrStdout(), conf, flag.Source(v), flag.Sink(v))
}

// run sorts the shards of every rank and writes a summary of the run to w.
func run(ctx context.Context, w io.Writer, conf sorter.Config, source data.Source, sink data.Sink) error {
	shards := make([][]int64, conf.WorldSize)
	for rank := range shards {
		shard, err := source.Load(rank, conf.WorldSize)
		if err != nil {
			return errors.Wrapf(err, "rank %d failed to load its shard", rank)
		}
		shards[rank] = shard
	}

	start := time.Now()
	results, err := sorter.RunLocal(ctx, shards, conf)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	var total int
	for _, result := range results {
		total += len(result.Shard)
		if sink != nil {
			if err = sink.Store(result.Stats.Rank, result.Shard); err != nil {
				return err
			}
		}
	}

	_, _ = fmt.Fprintf(w, "sorted %s elements on %d ranks in %v\n", humanize.Comma(int64(total)), conf.WorldSize, elapsed)
	for _, result := range results {
		share := 0.
		if 0 < total {
			share = 100 * float64(len(result.Shard)) / float64(total)
		}
		_, _ = fmt.Fprintf(w, "rank %d: %s in, %s out (%s%%)\n", result.Stats.Rank,
			humanize.Comma(int64(result.Stats.Input)), humanize.Comma(int64(len(result.Shard))), humanize.FtoaWithDigits(share, 1))
	}
	return nil
}
