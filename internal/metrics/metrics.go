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

// Package metrics exposes the Prometheus instruments of the sample sort and
// an HTTP endpoint to scrape them.
package metrics

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "samplesort"

var (
	// Collectives counts the completed collectives by operation.
	Collectives = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "collectives_total",
		Help:      "Number of completed collectives",
	}, []string{"op"})

	// ElementsSent counts the elements each rank hands to the exchange.
	ElementsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "elements_sent_total",
		Help:      "Number of elements sent during the exchange",
	}, []string{"rank"})

	// ElementsReceived counts the elements each rank obtains from the exchange.
	ElementsReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "elements_received_total",
		Help:      "Number of elements received during the exchange",
	}, []string{"rank"})

	// PhaseDuration observes the time spent in each phase of the pipeline.
	PhaseDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "phase_duration_seconds",
		Help:      "Time spent in each phase of the sort",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 12),
	}, []string{"phase"})
)

// ObservePhase records the time elapsed since start for the given phase.
func ObservePhase(phase string, start time.Time) time.Duration {
	elapsed := time.Since(start)
	PhaseDuration.WithLabelValues(phase).Observe(elapsed.Seconds())
	return elapsed
}

// AddExchanged records the number of elements a rank sent and received.
func AddExchanged(rank, sent, received int) {
	label := strconv.Itoa(rank)
	ElementsSent.WithLabelValues(label).Add(float64(sent))
	ElementsReceived.WithLabelValues(label).Add(float64(received))
}

// PrometheusMetrics serves the default registry over HTTP.
type PrometheusMetrics struct {
	server *http.Server
	port   int
}

// Start serves the metrics at http://<bindAddress>/metrics.
func Start(bindAddress string) (*PrometheusMetrics, error) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	listener, err := net.Listen("tcp", bindAddress)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to listen on %s", bindAddress)
	}

	p := &PrometheusMetrics{
		server: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: time.Second,
		},
		port: listener.Addr().(*net.TCPAddr).Port,
	}
	glog.Infof("serving Prometheus metrics at http://localhost:%d/metrics", p.port)

	go func() {
		if err := p.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			glog.Errorf("failed to serve metrics: %v", err)
		}
	}()

	return p, nil
}

// Port returns the port the metrics are served on.
func (p *PrometheusMetrics) Port() int {
	return p.port
}

func (p *PrometheusMetrics) Close() error {
	return p.server.Close()
}
