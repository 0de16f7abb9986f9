// Licensed to Elasticsearch B.V. under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. Elasticsearch B.V. licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package poolmetrics // import "go.elastic.co/apm/module/apmdburl/v2/poolmetrics"

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"go.elastic.co/apm/module/apmdburl/v2"
	"go.elastic.co/apm/module/apmdburl/v2/internal/apmlog"
	"go.elastic.co/apm/v2"
)

// Logger is the interface used by a Gatherer for logging.
type Logger interface {
	Debugf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type discardLogger struct{}

func (discardLogger) Debugf(string, ...interface{}) {}
func (discardLogger) Errorf(string, ...interface{}) {}

// Gatherer reports statistics for registered pools. It implements
// apm.MetricsGatherer and prometheus.Collector.
type Gatherer struct {
	enabled    bool
	metricName string
	gauges     []gauge
	logger     Logger
	registry   goMetricsRegistry
	parse      func(string) (apmdburl.ConnectionInfo, error)
	desc       *prometheus.Desc

	mu    sync.RWMutex
	pools []*registration
}

type registration struct {
	pool Pool
	info apmdburl.ConnectionInfo
	name string

	// gaugeNames holds the go-metrics gauges registered for the pool.
	gaugeNames []string
}

// New returns a new Gatherer with no registered pools, configured from
// the environment and the given options.
//
// New returns an error if the environment holds an invalid value, or if
// an unknown status is requested.
func New(opts ...Option) (*Gatherer, error) {
	cfg, err := configFromEnv()
	if err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Gatherer{
		enabled:    cfg.enabled,
		metricName: cfg.metricName,
		logger:     cfg.logger,
		registry:   goMetricsRegistry{cfg.registry},
		parse:      cfg.parse,
	}
	if len(cfg.statuses) == 0 {
		g.gauges = gauges
	} else {
		for _, status := range cfg.statuses {
			gauge, ok := lookupGauge(status)
			if !ok {
				return nil, errors.Errorf("unknown datasource status %q", status)
			}
			g.gauges = append(g.gauges, gauge)
		}
	}
	if g.logger == nil {
		if apmlog.DefaultLogger != nil {
			g.logger = apmlog.DefaultLogger
		} else {
			g.logger = discardLogger{}
		}
	}
	g.desc = prometheus.NewDesc(
		prometheusName(g.metricName),
		"Connection pool statistics.",
		[]string{nameLabel, statusLabel}, nil,
	)
	return g, nil
}

// Register parses p's URL and starts reporting statistics for p,
// returning the parsed connection info.
//
// The "name" label for p's gauges is the database name and peer joined
// with '_'. If p's URL is not supported, Register returns an error whose
// cause is apmdburl.ErrUnsupportedURL.
//
// If p has a DriverName method returning a non-empty name, its URL is
// parsed with apmdburl.ParseDSN instead.
func (g *Gatherer) Register(p Pool) (apmdburl.ConnectionInfo, error) {
	info, err := g.parsePool(p)
	if err != nil {
		return info, errors.Wrap(err, "failed to register pool")
	}
	r := &registration{
		pool: p,
		info: info,
		name: info.DatabaseName + "_" + info.Peer(),
	}

	if g.enabled {
		g.registry.register(g, r)
	}

	g.mu.Lock()
	g.pools = append(g.pools, r)
	g.mu.Unlock()
	g.logger.Debugf("registered %s pool %s", info.DBType, r.name)
	return info, nil
}

func (g *Gatherer) parsePool(p Pool) (apmdburl.ConnectionInfo, error) {
	if d, ok := p.(driverNamer); ok {
		if driverName := d.DriverName(); driverName != "" {
			return apmdburl.ParseDSN(driverName, p.URL())
		}
	}
	return g.parse(p.URL())
}

// Unregister stops reporting statistics for p. Unregister reports
// whether p was registered.
func (g *Gatherer) Unregister(p Pool) bool {
	var removed *registration
	g.mu.Lock()
	for i, r := range g.pools {
		if r.pool == p {
			removed = r
			g.pools = append(g.pools[:i:i], g.pools[i+1:]...)
			break
		}
	}
	g.mu.Unlock()

	if removed == nil {
		return false
	}
	g.registry.unregister(g, removed)
	g.logger.Debugf("unregistered pool %s", removed.name)
	return true
}

// GatherMetrics gathers statistics for each registered pool into m.
// Pools sharing a name with an earlier registration are skipped.
func (g *Gatherer) GatherMetrics(ctx context.Context, m *apm.Metrics) error {
	if !g.enabled {
		return nil
	}
	g.each(ctx, func(r *registration, gauge gauge, value float64) {
		m.Add(g.metricName, []apm.MetricLabel{
			{Name: nameLabel, Value: r.name},
			{Name: statusLabel, Value: gauge.status},
		}, value)
	})
	return nil
}

func (g *Gatherer) registrations() []*registration {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]*registration(nil), g.pools...)
}

// each samples every enabled gauge of every registered pool. Pools
// sharing a name with an earlier registration are skipped.
func (g *Gatherer) each(ctx context.Context, f func(*registration, gauge, float64)) {
	seen := make(map[string]bool)
	for _, r := range g.registrations() {
		if seen[r.name] {
			continue
		}
		seen[r.name] = true
		for _, gauge := range g.gauges {
			f(r, gauge, g.sample(ctx, r, gauge))
		}
	}
}

// sample reads a single statistic from a pool. Failures are logged,
// captured as errors if ctx holds a transaction or span, and reported
// as zero.
func (g *Gatherer) sample(ctx context.Context, r *registration, gauge gauge) float64 {
	value, err := gauge.value(r.pool)
	if err == nil {
		return value
	}
	g.logger.Errorf("failed to read %s of pool %s: %s", gauge.status, r.name, err)
	if apm.TransactionFromContext(ctx) != nil || apm.SpanFromContext(ctx) != nil {
		apm.CaptureError(ctx, err).Send()
	}
	return 0
}
