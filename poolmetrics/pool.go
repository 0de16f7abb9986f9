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

// Package poolmetrics reports connection pool statistics, labelled with
// the database name and peer parsed from the pool's connection URL.
//
// Statistics are reported as gauges named "datasource" (configurable),
// with a "name" label of the form <database>_<peer> and a "status" label
// naming the statistic, e.g. "numBusyConnections". A Gatherer can be
// registered with an apm.Tracer, with a prometheus.Registerer, or with a
// go-metrics Registry.
package poolmetrics // import "go.elastic.co/apm/module/apmdburl/v2/poolmetrics"

import "time"

// Pool is a read-only view of a connection pool.
//
// The live connection counts are queried every time metrics are gathered
// and may fail, for example if the pool has been closed. The remaining
// methods report configuration and must not block.
//
// Pool implementations must be comparable with ==, so they can be
// unregistered. A Pool whose URL is a database/sql data source name
// rather than a connection URL should also implement
// DriverName() string.
type Pool interface {
	// URL returns the connection URL the pool was configured with.
	URL() string

	NumConnections() (int, error)
	NumBusyConnections() (int, error)
	NumIdleConnections() (int, error)

	MaxIdleTime() time.Duration
	MinPoolSize() int
	MaxPoolSize() int
	InitialPoolSize() int
}

// Status label values.
const (
	NumTotalConnections = "numTotalConnections"
	NumBusyConnections  = "numBusyConnections"
	NumIdleConnections  = "numIdleConnections"
	MaxIdleTime         = "maxIdleTime"
	MinPoolSize         = "minPoolSize"
	MaxPoolSize         = "maxPoolSize"
	InitialPoolSize     = "initialPoolSize"
)

const (
	// DefaultMetricName is the default name of the reported gauges.
	DefaultMetricName = "datasource"

	nameLabel   = "name"
	statusLabel = "status"
)

type driverNamer interface {
	DriverName() string
}

type gauge struct {
	status string
	value  func(Pool) (float64, error)
}

func countGauge(status string, count func(Pool) (int, error)) gauge {
	return gauge{status: status, value: func(p Pool) (float64, error) {
		n, err := count(p)
		return float64(n), err
	}}
}

func sizeGauge(status string, size func(Pool) int) gauge {
	return gauge{status: status, value: func(p Pool) (float64, error) {
		return float64(size(p)), nil
	}}
}

var gauges = []gauge{
	countGauge(NumTotalConnections, Pool.NumConnections),
	countGauge(NumBusyConnections, Pool.NumBusyConnections),
	countGauge(NumIdleConnections, Pool.NumIdleConnections),
	{status: MaxIdleTime, value: func(p Pool) (float64, error) {
		return p.MaxIdleTime().Seconds(), nil
	}},
	sizeGauge(MinPoolSize, Pool.MinPoolSize),
	sizeGauge(MaxPoolSize, Pool.MaxPoolSize),
	sizeGauge(InitialPoolSize, Pool.InitialPoolSize),
}

func lookupGauge(status string) (gauge, bool) {
	for _, g := range gauges {
		if g.status == status {
			return g, true
		}
	}
	return gauge{}, false
}
