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

package fault

import (
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	err := New(Protocol, 2, "expected %d elements, got %d", 3, 4)
	assert.Equal(t, "protocol fault on rank 2: expected 3 elements, got 4", err.Error())
	assert.Equal(t, Protocol, KindOf(err))
	assert.Equal(t, 2, RankOf(err))
	assert.True(t, Is(err, Protocol))
	assert.False(t, Is(err, Config))

	err = New(Config, NoRank, "world size must be positive")
	assert.Equal(t, "config fault: world size must be positive", err.Error())
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(Resource, 0, nil, "ignored"))

	err := Wrap(Resource, 1, io.ErrShortBuffer, "allocate receive buffer")
	assert.Equal(t, Resource, KindOf(err))
	assert.ErrorIs(t, err, io.ErrShortBuffer)

	// an already classified fault keeps its kind and rank
	inner := New(Aborted, 3, "peer left")
	outer := Wrap(Protocol, 0, errors.WithMessage(inner, "gather"), "exchange")
	assert.Equal(t, Aborted, KindOf(outer))
	assert.Equal(t, 3, RankOf(outer))
}

func TestUnknown(t *testing.T) {
	assert.Equal(t, Unknown, KindOf(io.EOF))
	assert.Equal(t, NoRank, RankOf(io.EOF))
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestParseKind(t *testing.T) {
	for kind := Config; kind <= Aborted; kind++ {
		assert.Equal(t, kind, ParseKind(kind.String()))
	}
	assert.Equal(t, Unknown, ParseKind("fatal"))
}
