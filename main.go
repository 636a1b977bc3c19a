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

//go:generate protoc --proto_path=proto/ --go_out=communicator/ --go_opt=paths=source_relative --go-grpc_out=communicator/ --go-grpc_opt=paths=source_relative communicator.proto

// Package main implements the samplesort command.  A world is either run
// within a single process by the local command, or hosted by the serve
// command and joined by one worker command per rank.
package main

import (
	goflag "flag"

	"github.com/9rum/samplesort/cmd/local"
	"github.com/9rum/samplesort/cmd/serve"
	"github.com/9rum/samplesort/cmd/worker"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
)

var rootCmd = &cobra.Command{
	Use:   "samplesort",
	Short: "Parallel sample sort",
	Long: `Sort integers distributed over a world of ranks with sample sort: every
rank sorts its shard, the coordinator selects splitters from a sample of
every shard, and the ranks exchange the resulting buckets so that rank i
ends up with the i-th range of the sorted dataset.`,
	SilenceUsage: true,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		_, err := maxprocs.Set(maxprocs.Logger(glog.Infof))
		return err
	},
}

func init() {
	// glog registers its flags on the standard flag set
	rootCmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)

	rootCmd.AddCommand(local.Cmd)
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(worker.Cmd)
}

func main() {
	defer glog.Flush()

	// mark the standard flag set as parsed; cobra parses the merged flags
	_ = goflag.CommandLine.Parse(nil)

	if err := rootCmd.Execute(); err != nil {
		glog.Fatalf("failed to run: %v", err)
	}
}
