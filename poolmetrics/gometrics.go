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

	metrics "github.com/rcrowley/go-metrics"
)

// goMetricsRegistry registers functional gauges with an optional
// go-metrics Registry.
type goMetricsRegistry struct {
	r metrics.Registry
}

func (m goMetricsRegistry) name(g *Gatherer, r *registration, gauge gauge) string {
	return g.metricName + "." + r.name + "." + gauge.status
}

func (m goMetricsRegistry) register(g *Gatherer, r *registration) {
	if m.r == nil {
		return
	}
	for _, gauge := range g.gauges {
		gauge := gauge
		name := m.name(g, r, gauge)
		f := metrics.NewFunctionalGaugeFloat64(func() float64 {
			return g.sample(context.Background(), r, gauge)
		})
		if err := m.r.Register(name, f); err != nil {
			g.logger.Debugf("failed to register gauge %s: %s", name, err)
			continue
		}
		r.gaugeNames = append(r.gaugeNames, name)
	}
}

func (m goMetricsRegistry) unregister(g *Gatherer, r *registration) {
	if m.r == nil {
		return
	}
	for _, name := range r.gaugeNames {
		m.r.Unregister(name)
	}
}
