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

// Package fault classifies the failures of a distributed sort.  Every failure
// is fatal to the whole run; the kind and the offending rank are kept so that
// the invoking process can report something more useful than a hang or a
// generic crash.
package fault

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind enumerates the failure classes.
type Kind int

const (
	Unknown Kind = iota
	// Config is raised before any communication begins.
	Config
	// Protocol is a violation of a collective's contract, such as mismatched
	// payload sizes or a rank issuing a different collective than its peers.
	Protocol
	// Resource is an allocation that cannot be satisfied.
	Resource
	// Aborted is reported by every rank once any rank has failed.
	Aborted
)

func (k Kind) String() string {
	switch k {
	case Config:
		return "config"
	case Protocol:
		return "protocol"
	case Resource:
		return "resource"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// ParseKind returns the kind with the given name, or Unknown.
func ParseKind(name string) Kind {
	for kind := Config; kind <= Aborted; kind++ {
		if kind.String() == name {
			return kind
		}
	}
	return Unknown
}

// NoRank marks a failure that cannot be attributed to a single rank.
const NoRank = -1

// Error is a classified failure.
type Error struct {
	Kind Kind
	Rank int
	Err  error
}

func (e *Error) Error() string {
	if e.Rank == NoRank {
		return fmt.Sprintf("%s fault: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s fault on rank %d: %v", e.Kind, e.Rank, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Cause() error {
	return e.Err
}

// New creates a new fault of the given kind.
func New(kind Kind, rank int, format string, args ...any) error {
	return &Error{Kind: kind, Rank: rank, Err: errors.Errorf(format, args...)}
}

// Wrap annotates err with the given kind and rank.  It returns nil if err is
// nil, and leaves err untouched if it is already classified.
func Wrap(kind Kind, rank int, err error, message string) error {
	if err == nil {
		return nil
	}
	var f *Error
	if errors.As(err, &f) {
		return err
	}
	return &Error{Kind: kind, Rank: rank, Err: errors.Wrap(err, message)}
}

// KindOf returns the kind of err, or Unknown if err is not a fault.
func KindOf(err error) Kind {
	var f *Error
	if errors.As(err, &f) {
		return f.Kind
	}
	return Unknown
}

// RankOf returns the rank that err is attributed to, or NoRank.
func RankOf(err error) int {
	var f *Error
	if errors.As(err, &f) {
		return f.Rank
	}
	return NoRank
}

// Is reports whether err is a fault of the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
