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
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// Describe sends the descriptor of the gauges reported by Collect.
func (g *Gatherer) Describe(ch chan<- *prometheus.Desc) {
	ch <- g.desc
}

// Collect sends a gauge per registered pool and status. Pools sharing
// a name with an earlier registration are skipped.
func (g *Gatherer) Collect(ch chan<- prometheus.Metric) {
	if !g.enabled {
		return
	}
	g.each(context.Background(), func(r *registration, gauge gauge, value float64) {
		ch <- prometheus.MustNewConstMetric(g.desc, prometheus.GaugeValue, value, r.name, gauge.status)
	})
}

// prometheusName replaces characters not permitted in Prometheus
// metric names with '_', and prefixes names starting with a digit
// with '_'.
func prometheusName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r == ':':
			return r
		case r >= '0' && r <= '9':
			return r
		}
		return '_'
	}, name)
	if name != "" && name[0] >= '0' && name[0] <= '9' {
		name = "_" + name
	}
	return name
}
