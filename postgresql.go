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

package apmdburl // import "go.elastic.co/apm/module/apmdburl/v2"

import "strings"

const postgresqlPrefix = "jdbc:postgresql:"

var postgresql = hostListDialect{
	component:   PostgreSQLJDBC,
	dbType:      "PostgreSQL",
	defaultPort: 5432,
	defaultHost: "localhost",
	params:      "?",
	hostsStart:  afterSlashes(postgresqlPrefix),
}

// NewPostgreSQLParser returns a Parser for PgJDBC URLs. Both the
// jdbc:postgresql://host[:port][,...]/database form and the short
// jdbc:postgresql:database form, which connects to localhost, are handled.
func NewPostgreSQLParser(url string) Parser {
	if !strings.Contains(url, "//") {
		return &shortPostgreSQLParser{
			urlParser: newURLParser(url, len(postgresqlPrefix), postgresql.params),
		}
	}
	return postgresql.newParser(url)
}

type shortPostgreSQLParser struct {
	urlParser
}

func (p *shortPostgreSQLParser) Parse() ConnectionInfo {
	end := p.paramsStart(p.hostsStart)
	return ConnectionInfo{
		Component:    postgresql.component,
		DBType:       postgresql.dbType,
		Hosts:        []Host{{Name: postgresql.defaultHost, Port: postgresql.defaultPort}},
		DatabaseName: p.slice(Location{Start: p.hostsStart, End: end}),
	}
}

var pgx = hostListDialect{
	component:   Pgx,
	dbType:      "PostgreSQL",
	defaultPort: 5432,
	defaultHost: "localhost",
	params:      "?",
	hostsStart:  afterSlashes("postgres:"),
}

// NewPgxParser returns a Parser for libpq-style postgres:// and
// postgresql:// URLs, as accepted by pgx and lib/pq. User information
// is skipped, and hosts without a port get port 5432. Unlike the drivers,
// the parser does not consult PG* environment variables or service files.
func NewPgxParser(url string) Parser {
	p := pgx.newParser(url)
	authority := p.slice(p.HostsRange())
	if at := strings.LastIndexByte(authority, '@'); at >= 0 {
		p.hostsStart += at + 1
	}
	return p
}
