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

// Package data provides the sources that populate the shard of each rank
// before the sort and the sinks that consume the sorted shards afterwards.
package data

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DefaultSeed is the base seed of RandomSource; rank r draws from seed
// DefaultSeed + r.
const DefaultSeed = 393919

// Source supplies the initial shard of each rank.
// All implementations must embed SourceBase for forward compatibility.
type Source interface {
	// Load returns the shard of the given rank in a world of the given size.
	// The returned slice is owned by the caller.
	Load(rank, worldSize int) ([]int64, error)
}

// SourceBase must be embedded to have forward compatible implementations.
type SourceBase struct {
}

func (SourceBase) Load(rank, worldSize int) ([]int64, error) {
	return nil, nil
}

// RandomSource generates Len pseudo-random integers in [0, 2^31) per rank.
// Every rank draws from its own seed, so the shards differ across ranks but
// are reproducible across runs.
type RandomSource struct {
	SourceBase
	Len  int
	Seed int64
}

// NewRandomSource creates a new random source with the given arguments.
func NewRandomSource(length int, seed int64) *RandomSource {
	return &RandomSource{Len: length, Seed: seed}
}

func (s *RandomSource) Load(rank, worldSize int) ([]int64, error) {
	if s.Len < 0 {
		return nil, errors.Errorf("invalid shard length %d", s.Len)
	}
	r := rand.New(rand.NewSource(s.Seed + int64(rank)))
	shard := make([]int64, s.Len)
	for index := range shard {
		shard[index] = int64(r.Int31())
	}
	return shard, nil
}

// FileSource reads the shard of rank r from Dir/input<r>.txt, which holds one
// integer per line.  Blank lines are skipped.
type FileSource struct {
	SourceBase
	Dir string
}

// NewFileSource creates a new file source reading from the given directory.
func NewFileSource(dir string) *FileSource {
	return &FileSource{Dir: dir}
}

func (s *FileSource) Load(rank, worldSize int) ([]int64, error) {
	shard, err := ReadFile(filepath.Join(s.Dir, InputName(rank)))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load the shard of rank %d", rank)
	}
	return shard, nil
}

// ReadFile reads a shard of one integer per line, as written by FileSink.
func ReadFile(name string) ([]int64, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	shard := make([]int64, 0)
	scanner := bufio.NewScanner(file)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		value, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", name, line)
		}
		shard = append(shard, value)
	}
	if err = scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", name)
	}
	return shard, nil
}

// SliceSource serves shards held in memory, indexed by rank.  Ranks beyond
// the held shards are empty.
type SliceSource struct {
	SourceBase
	shards [][]int64
}

// NewSliceSource creates a new slice source over the given shards.
func NewSliceSource(shards [][]int64) *SliceSource {
	return &SliceSource{shards: shards}
}

func (s *SliceSource) Load(rank, worldSize int) ([]int64, error) {
	if rank < 0 || worldSize <= rank {
		return nil, errors.Errorf("rank %d is out of range [0, %d)", rank, worldSize)
	}
	if len(s.shards) <= rank {
		return []int64{}, nil
	}
	return append(make([]int64, 0, len(s.shards[rank])), s.shards[rank]...), nil
}

// InputName returns the file name of the input shard of the given rank.
func InputName(rank int) string {
	return fmt.Sprintf("input%02d.txt", rank)
}

// OutputName returns the file name of the sorted shard of the given rank.
func OutputName(rank int) string {
	return fmt.Sprintf("output%02d.txt", rank)
}
