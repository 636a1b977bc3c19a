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

package metrics

import (
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddExchanged(t *testing.T) {
	AddExchanged(7, 3, 5)
	AddExchanged(7, 1, 0)

	assert.Equal(t, float64(4), testutil.ToFloat64(ElementsSent.WithLabelValues("7")))
	assert.Equal(t, float64(5), testutil.ToFloat64(ElementsReceived.WithLabelValues("7")))
}

func TestObservePhase(t *testing.T) {
	start := time.Now().Add(-time.Millisecond)
	assert.GreaterOrEqual(t, ObservePhase("test", start), time.Millisecond)
}

func TestStart(t *testing.T) {
	p, err := Start("localhost:0")
	require.NoError(t, err)
	defer p.Close()

	Collectives.WithLabelValues("Barrier").Inc()

	resp, err := http.Get(fmt.Sprintf("http://localhost:%d/metrics", p.Port()))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "samplesort_collectives_total")
}
