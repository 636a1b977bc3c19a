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

package data

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Sink consumes the sorted shard of each rank.
type Sink interface {
	// Store persists the shard of the given rank.
	Store(rank int, shard []int64) error
}

// FileSink writes the shard of rank r to Dir/output<r>.txt, one integer per
// line.
type FileSink struct {
	Dir string
}

// NewFileSink creates a new file sink writing to the given directory.
func NewFileSink(dir string) *FileSink {
	return &FileSink{Dir: dir}
}

func (s *FileSink) Store(rank int, shard []int64) (err error) {
	if err = os.MkdirAll(s.Dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create %s", s.Dir)
	}
	name := filepath.Join(s.Dir, OutputName(rank))
	file, err := os.Create(name)
	if err != nil {
		return errors.Wrapf(err, "failed to create the shard of rank %d", rank)
	}
	defer func() {
		err = multierr.Append(err, file.Close())
	}()

	writer := bufio.NewWriter(file)
	buf := make([]byte, 0, 24)
	for _, value := range shard {
		buf = strconv.AppendInt(buf[:0], value, 10)
		buf = append(buf, '\n')
		if _, err = writer.Write(buf); err != nil {
			return errors.Wrapf(err, "failed to write %s", name)
		}
	}
	return errors.Wrapf(writer.Flush(), "failed to flush %s", name)
}

// MemorySink keeps the stored shards in memory.
type MemorySink struct {
	mu     sync.Mutex
	shards map[int][]int64
}

// NewMemorySink creates a new empty memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{shards: make(map[int][]int64)}
}

func (s *MemorySink) Store(rank int, shard []int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.shards[rank]; found {
		return errors.Errorf("shard of rank %d already stored", rank)
	}
	s.shards[rank] = append(make([]int64, 0, len(shard)), shard...)
	return nil
}

// Shards returns the stored shards in rank order; missing ranks are nil.
func (s *MemorySink) Shards(worldSize int) [][]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	shards := make([][]int64, worldSize)
	for rank := range shards {
		shards[rank] = s.shards[rank]
	}
	return shards
}
