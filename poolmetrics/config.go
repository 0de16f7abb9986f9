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
	metrics "github.com/rcrowley/go-metrics"

	"go.elastic.co/apm/module/apmdburl/v2"
	"go.elastic.co/apm/module/apmdburl/v2/internal/apmconfig"
)

const (
	envMetricsEnabled  = "ELASTIC_APM_DATASOURCE_METRICS"
	envMetricName      = "ELASTIC_APM_DATASOURCE_METRICS_NAME"
	envMetricsStatuses = "ELASTIC_APM_DATASOURCE_METRICS_STATUSES"
)

type config struct {
	enabled    bool
	metricName string
	statuses   []string
	logger     Logger
	registry   metrics.Registry
	parse      func(string) (apmdburl.ConnectionInfo, error)
}

func configFromEnv() (config, error) {
	enabled, err := apmconfig.ParseBoolEnv(envMetricsEnabled, true)
	if err != nil {
		return config{}, err
	}
	return config{
		enabled:    enabled,
		metricName: apmconfig.StringEnv(envMetricName, DefaultMetricName),
		statuses:   apmconfig.ParseListEnv(envMetricsStatuses, nil),
		parse:      apmdburl.Parse,
	}, nil
}

// Option sets options for a Gatherer. Options override the
// ELASTIC_APM_DATASOURCE_METRICS* environment variables.
type Option func(*config)

// WithLogger returns an Option which sets the logger used for reporting
// registrations and pool read failures.
//
// By default the logger configured by ELASTIC_APM_LOG_FILE is used,
// and nothing is logged if that is unset.
func WithLogger(logger Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithMetricName returns an Option which sets the name of the reported
// gauges. The default is DefaultMetricName.
func WithMetricName(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.metricName = name
		}
	}
}

// WithStatuses returns an Option which restricts reporting to the given
// statuses, e.g. NumBusyConnections. By default all statuses are reported.
func WithStatuses(statuses ...string) Option {
	return func(cfg *config) {
		cfg.statuses = statuses
	}
}

// WithGoMetricsRegistry returns an Option which additionally registers a
// functional gauge per pool and status with r, named
// <metric>.<name>.<status>.
func WithGoMetricsRegistry(r metrics.Registry) Option {
	return func(cfg *config) {
		cfg.registry = r
	}
}

// WithURLParser returns an Option which replaces apmdburl.Parse for
// extracting database names and peers from pool URLs. It is not used
// for pools that report a driver name.
func WithURLParser(parse func(url string) (apmdburl.ConnectionInfo, error)) Option {
	if parse == nil {
		panic("parse == nil")
	}
	return func(cfg *config) {
		cfg.parse = parse
	}
}
