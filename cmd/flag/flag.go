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

// Package flag registers the command-line flags shared by the commands and
// resolves them, together with the environment and an optional config file,
// into the configuration of a run.
package flag

import (
	"strings"

	"github.com/9rum/samplesort/internal/data"
	"github.com/9rum/samplesort/internal/fault"
	"github.com/9rum/samplesort/sorter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes the environment variables that override flags,
	// e.g. SAMPLESORT_WORLD_SIZE for --world-size.
	EnvPrefix = "SAMPLESORT"

	// DefaultElements is the number of random elements generated per rank.
	DefaultElements = 10000

	DefaultAddr = "localhost:50051"
)

// ConfigFile registers the flag of the optional YAML config file.
func ConfigFile(cmd *cobra.Command, conf *string) {
	cmd.PersistentFlags().StringVarP(conf, "config", "f", "", "YAML config file whose keys are flag names")
}

func Addr(cmd *cobra.Command, usage string) {
	cmd.Flags().StringP("addr", "a", DefaultAddr, usage)
}

func MetricsAddr(cmd *cobra.Command) {
	cmd.Flags().String("metrics-addr", "", "Bind address of the Prometheus metrics endpoint; disabled if empty")
}

// Sort registers the flags that configure the sort itself.
func Sort(cmd *cobra.Command) {
	cmd.Flags().IntP("world-size", "n", 1, "Number of ranks")
	cmd.Flags().Int("coordinator", 0, "Rank that selects the splitters")
	cmd.Flags().IntP("sample-size", "s", 0, "Number of samples per rank (default elements/world-size)")
	cmd.Flags().Var(new(sorter.Strategy), "sampling", "Sampling strategy: regular or random")
	cmd.Flags().Int64("seed", data.DefaultSeed, "Base seed of random input and random sampling")
	cmd.Flags().Bool("verify", false, "Verify the global order and the multiset of the result")
}

// Data registers the flags that select the input and the output.
func Data(cmd *cobra.Command) {
	cmd.Flags().IntP("elements", "e", DefaultElements, "Number of random elements per rank")
	cmd.Flags().StringP("input-dir", "i", "", "Directory of input%02d.txt files; random input if empty")
	cmd.Flags().StringP("output-dir", "o", "", "Directory to write output%02d.txt files to; discarded if empty")
}

// Load resolves the flags of cmd.  A flag set on the command line takes
// precedence over the environment, which takes precedence over the config
// file.
func Load(cmd *cobra.Command, configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, errors.Wrap(err, "failed to bind flags")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", configFile)
		}
	}
	return v, nil
}

// SortConfig builds and validates the configuration of the sort.  Unless set
// explicitly, the sample size is the number of elements per rank divided by
// the world size.
func SortConfig(v *viper.Viper) (sorter.Config, error) {
	strategy, err := sorter.ParseStrategy(v.GetString("sampling"))
	if err != nil {
		return sorter.Config{}, fault.Wrap(fault.Config, fault.NoRank, err, "invalid configuration")
	}

	conf := sorter.Config{
		WorldSize:   v.GetInt("world-size"),
		Coordinator: v.GetInt("coordinator"),
		SampleSize:  v.GetInt("sample-size"),
		Strategy:    strategy,
		Seed:        v.GetInt64("seed"),
		Verify:      v.GetBool("verify"),
	}
	if conf.SampleSize == 0 && 0 < conf.WorldSize {
		conf.SampleSize = max(v.GetInt("elements")/conf.WorldSize, 1)
	}
	return conf, conf.Validate()
}

// Source returns the configured input.
func Source(v *viper.Viper) data.Source {
	if dir := v.GetString("input-dir"); dir != "" {
		return data.NewFileSource(dir)
	}
	return data.NewRandomSource(v.GetInt("elements"), v.GetInt64("seed"))
}

// Sink returns the configured output, or nil if the result is discarded.
func Sink(v *viper.Viper) data.Sink {
	if dir := v.GetString("output-dir"); dir != "" {
		return data.NewFileSink(dir)
	}
	return nil
}
