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

package communicator

import (
	"strconv"

	"github.com/9rum/samplesort/internal/fault"
	"github.com/pkg/errors"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// errorDomain identifies the error details attached by the communicator.
const errorDomain = "samplesort"

var faultCodes = map[fault.Kind]codes.Code{
	fault.Config:   codes.InvalidArgument,
	fault.Protocol: codes.FailedPrecondition,
	fault.Resource: codes.ResourceExhausted,
	fault.Aborted:  codes.Aborted,
}

// toStatus converts the given fault to a gRPC status error carrying its kind
// and rank.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	var f *fault.Error
	if !errors.As(err, &f) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(faultCodes[f.Kind], f.Err.Error())
	detailed, derr := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   f.Kind.String(),
		Domain:   errorDomain,
		Metadata: map[string]string{"rank": strconv.Itoa(f.Rank)},
	})
	if derr != nil {
		return st.Err()
	}
	return detailed.Err()
}

// fromStatus converts a gRPC status error back to a fault.  Errors raised by
// the transport itself are attributed to the calling rank.
func fromStatus(rank int, err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fault.Wrap(fault.Aborted, rank, err, "call failed")
	}

	for _, detail := range st.Details() {
		if info, ok := detail.(*errdetails.ErrorInfo); ok && info.GetDomain() == errorDomain {
			origin, perr := strconv.Atoi(info.GetMetadata()["rank"])
			if perr != nil {
				origin = fault.NoRank
			}
			return &fault.Error{
				Kind: fault.ParseKind(info.GetReason()),
				Rank: origin,
				Err:  errors.New(st.Message()),
			}
		}
	}

	switch st.Code() {
	case codes.ResourceExhausted:
		return fault.Wrap(fault.Resource, rank, err, "message exceeds transport limits")
	case codes.InvalidArgument:
		return fault.Wrap(fault.Config, rank, err, "call rejected")
	case codes.Internal, codes.Unimplemented, codes.FailedPrecondition:
		return fault.Wrap(fault.Protocol, rank, err, "call failed")
	default:
		return fault.Wrap(fault.Aborted, rank, err, "call interrupted")
	}
}
