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
	"database/sql"
	"time"
)

// PoolConfig holds pool settings which cannot be read back from a
// *sql.DB.
type PoolConfig struct {
	// DriverName, if set, is the driver name passed to sql.Open. The
	// pool's URL is then parsed as that driver's data source name,
	// with apmdburl.ParseDSN.
	DriverName string

	// MaxIdleTime is the value passed to sql.DB.SetConnMaxIdleTime.
	MaxIdleTime time.Duration

	// MinPoolSize is the value passed to sql.DB.SetMaxIdleConns.
	MinPoolSize int

	// InitialPoolSize is the number of connections opened when the
	// pool was created, if any.
	InitialPoolSize int
}

// NewSQLDBPool returns a Pool reporting the statistics of db, which was
// opened with the given connection URL.
func NewSQLDBPool(db *sql.DB, url string, cfg PoolConfig) Pool {
	return &sqlDBPool{db: db, url: url, cfg: cfg}
}

type sqlDBPool struct {
	db  *sql.DB
	url string
	cfg PoolConfig
}

func (p *sqlDBPool) URL() string {
	return p.url
}

func (p *sqlDBPool) NumConnections() (int, error) {
	return p.db.Stats().OpenConnections, nil
}

func (p *sqlDBPool) NumBusyConnections() (int, error) {
	return p.db.Stats().InUse, nil
}

func (p *sqlDBPool) NumIdleConnections() (int, error) {
	return p.db.Stats().Idle, nil
}

func (p *sqlDBPool) DriverName() string {
	return p.cfg.DriverName
}

func (p *sqlDBPool) MaxIdleTime() time.Duration {
	return p.cfg.MaxIdleTime
}

func (p *sqlDBPool) MinPoolSize() int {
	return p.cfg.MinPoolSize
}

// MaxPoolSize returns the limit set with sql.DB.SetMaxOpenConns,
// or zero if there is no limit.
func (p *sqlDBPool) MaxPoolSize() int {
	return p.db.Stats().MaxOpenConnections
}

func (p *sqlDBPool) InitialPoolSize() int {
	return p.cfg.InitialPoolSize
}
