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
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPgxPool returns a Pool reporting the statistics of p.
//
// If url is empty, the connection string p was created with is used, and
// is parsed as a pgx data source name, which may be in keyword/value form.
// pgxpool opens MinConns connections up front, so these are reported
// as both the minimum and the initial pool size.
func NewPgxPool(p *pgxpool.Pool, url string) Pool {
	cfg := p.Config()
	pool := &pgxPool{pool: p, url: url, cfg: cfg}
	if url == "" {
		pool.url = cfg.ConnString()
		pool.driverName = "pgx"
	}
	return pool
}

type pgxPool struct {
	pool       *pgxpool.Pool
	url        string
	driverName string
	cfg        *pgxpool.Config
}

func (p *pgxPool) URL() string {
	return p.url
}

func (p *pgxPool) DriverName() string {
	return p.driverName
}

func (p *pgxPool) NumConnections() (int, error) {
	return int(p.pool.Stat().TotalConns()), nil
}

func (p *pgxPool) NumBusyConnections() (int, error) {
	return int(p.pool.Stat().AcquiredConns()), nil
}

func (p *pgxPool) NumIdleConnections() (int, error) {
	return int(p.pool.Stat().IdleConns()), nil
}

func (p *pgxPool) MaxIdleTime() time.Duration {
	return p.cfg.MaxConnIdleTime
}

func (p *pgxPool) MinPoolSize() int {
	return int(p.cfg.MinConns)
}

func (p *pgxPool) MaxPoolSize() int {
	return int(p.cfg.MaxConns)
}

func (p *pgxPool) InitialPoolSize() int {
	return int(p.cfg.MinConns)
}
