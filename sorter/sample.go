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

package sorter

import (
	"math/rand"
	"strings"

	"github.com/pkg/errors"
)

// Strategy selects how a sample is drawn from a sorted shard.
type Strategy int

const (
	// Regular takes every ⌊N/s⌋-th element of the shard.
	Regular Strategy = iota
	// Random draws s elements uniformly with replacement.
	Random
)

func (s Strategy) String() string {
	switch s {
	case Regular:
		return "regular"
	case Random:
		return "random"
	default:
		return "invalid"
	}
}

// ParseStrategy returns the strategy with the given name.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "regular":
		return Regular, nil
	case "random":
		return Random, nil
	}
	return Regular, errors.Errorf("invalid sampling strategy %q", name)
}

// Set implements pflag.Value.
func (s *Strategy) Set(name string) (err error) {
	*s, err = ParseStrategy(name)
	return
}

// Type implements pflag.Value.
func (s *Strategy) Type() string {
	return "strategy"
}

// Sampler draws a fixed-size sample from a sorted shard.
type Sampler interface {
	// Sample returns exactly size elements of the given non-empty shard.  If
	// the shard holds fewer elements than requested, elements are repeated.
	// An empty shard yields no sample.
	Sample(shard []int64, size int) []int64
}

// NewSampler creates a new sampler for the given strategy.  The seed only
// matters for random sampling.
func NewSampler(strategy Strategy, seed int64) Sampler {
	switch strategy {
	case Regular:
		return RegularSampler{}
	case Random:
		return NewRandomSampler(seed)
	default:
		panic("invalid strategy")
	}
}

// RegularSampler picks evenly spaced elements, which yields the same sample
// on every run and spreads it over the whole value range of the shard.
type RegularSampler struct{}

// Sample takes the elements at indices i·⌊N/s⌋ for i in [0, s).  When N < s
// the stride would be zero, so indices ⌊i·N/s⌋ are taken instead, repeating
// each element at most ⌈s/N⌉ times.
func (RegularSampler) Sample(shard []int64, size int) []int64 {
	if len(shard) == 0 || size <= 0 {
		return nil
	}

	sample := make([]int64, size)
	if stride := len(shard) / size; 0 < stride {
		for index := range sample {
			sample[index] = shard[index*stride]
		}
		return sample
	}

	for index := range sample {
		sample[index] = shard[index*len(shard)/size]
	}
	return sample
}

// RandomSampler draws indices uniformly at random with replacement.
type RandomSampler struct {
	rand *rand.Rand
}

// NewRandomSampler creates a new random sampler with the given seed.
func NewRandomSampler(seed int64) *RandomSampler {
	return &RandomSampler{rand: rand.New(rand.NewSource(seed))}
}

func (s *RandomSampler) Sample(shard []int64, size int) []int64 {
	if len(shard) == 0 || size <= 0 {
		return nil
	}

	sample := make([]int64, size)
	for index := range sample {
		sample[index] = shard[s.rand.Intn(len(shard))]
	}
	return sample
}
