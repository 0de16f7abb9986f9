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

package poolmetrics_test

import (
	"testing"

	metrics "github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.elastic.co/apm/module/apmdburl/v2/poolmetrics"
)

func TestGoMetricsRegistry(t *testing.T) {
	r := metrics.NewRegistry()
	g, err := poolmetrics.New(poolmetrics.WithGoMetricsRegistry(r))
	require.NoError(t, err)

	pool := newSybasePool()
	_, err = g.Register(pool)
	require.NoError(t, err)

	busy, ok := r.Get("datasource.mydb_host1:5001.numBusyConnections").(metrics.GaugeFloat64)
	require.True(t, ok)
	assert.Equal(t, 2.0, busy.Value())

	pool.busy = 4
	assert.Equal(t, 4.0, busy.Value())

	names := make(map[string]bool)
	r.Each(func(name string, _ interface{}) {
		names[name] = true
	})
	assert.Len(t, names, 7)
	assert.Contains(t, names, "datasource.mydb_host1:5001.maxIdleTime")

	require.True(t, g.Unregister(pool))
	assert.Nil(t, r.Get("datasource.mydb_host1:5001.numBusyConnections"))
}

func TestGoMetricsRegistryDuplicate(t *testing.T) {
	r := metrics.NewRegistry()
	g, err := poolmetrics.New(
		poolmetrics.WithGoMetricsRegistry(r),
		poolmetrics.WithStatuses(poolmetrics.NumIdleConnections),
	)
	require.NoError(t, err)

	first, second := newSybasePool(), newSybasePool()
	second.idle = 9
	_, err = g.Register(first)
	require.NoError(t, err)
	_, err = g.Register(second)
	require.NoError(t, err)

	const name = "datasource.mydb_host1:5001.numIdleConnections"
	assert.Equal(t, 3.0, r.Get(name).(metrics.GaugeFloat64).Value())

	// Unregistering the pool whose gauge was rejected leaves the
	// first pool's gauge in place.
	require.True(t, g.Unregister(second))
	assert.Equal(t, 3.0, r.Get(name).(metrics.GaugeFloat64).Value())
}

func TestGoMetricsRegistryDisabled(t *testing.T) {
	t.Setenv("ELASTIC_APM_DATASOURCE_METRICS", "false")
	r := metrics.NewRegistry()
	g, err := poolmetrics.New(poolmetrics.WithGoMetricsRegistry(r))
	require.NoError(t, err)
	_, err = g.Register(newSybasePool())
	require.NoError(t, err)
	assert.Nil(t, r.Get("datasource.mydb_host1:5001.numBusyConnections"))
}
