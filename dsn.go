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

import (
	"net"
	"strconv"
	"strings"
	"sync"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

// DSNParserFunc parses a database/sql data source name.
type DSNParserFunc func(dsn string) (ConnectionInfo, error)

var (
	dsnParsersMu sync.RWMutex
	dsnParsers   = make(map[string]DSNParserFunc)
)

func init() {
	RegisterDSNParser("mysql", ParseMySQLDSN)
	RegisterDSNParser("postgres", ParsePostgresDSN)
	RegisterDSNParser("pgx", ParsePostgresDSN)
}

// RegisterDSNParser registers f as the parser for data source names
// passed to sql.Open with driverName. Registering an existing driver
// name replaces its parser.
func RegisterDSNParser(driverName string, f DSNParserFunc) {
	if f == nil {
		panic("f == nil")
	}
	dsnParsersMu.Lock()
	defer dsnParsersMu.Unlock()
	dsnParsers[driverName] = f
}

// ParseDSN parses dsn with the parser registered for driverName.
// If there is none, the returned error's cause is ErrUnsupportedURL.
func ParseDSN(driverName, dsn string) (ConnectionInfo, error) {
	dsnParsersMu.RLock()
	f, ok := dsnParsers[driverName]
	dsnParsersMu.RUnlock()
	if !ok {
		return ConnectionInfo{}, errors.Wrapf(ErrUnsupportedURL, "no DSN parser for driver %q", driverName)
	}
	return f(dsn)
}

// ParseMySQLDSN parses a go-sql-driver/mysql data source name, e.g.
// "user:password@tcp(host:3306)/dbname". Unix socket connections are
// reported as localhost with no port.
func ParseMySQLDSN(dsn string) (ConnectionInfo, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return ConnectionInfo{}, errors.Wrap(err, "failed to parse mysql DSN")
	}
	host := Host{Name: "localhost"}
	if cfg.Net != "unix" {
		host.Port = mysqlJDBC.defaultPort
		if name, port, err := net.SplitHostPort(cfg.Addr); err == nil {
			if name != "" {
				host.Name = name
			}
			if n, err := strconv.Atoi(port); err == nil && n > 0 {
				host.Port = n
			}
		} else if cfg.Addr != "" {
			host.Name = cfg.Addr
		}
	}
	return ConnectionInfo{
		Component:    GoMySQL,
		DBType:       mysqlJDBC.dbType,
		Hosts:        []Host{host},
		DatabaseName: cfg.DBName,
	}, nil
}

// ParsePostgresDSN parses a lib/pq or pgx data source name, in either
// URL or keyword/value form, returning an error if pgx would reject it.
//
// URL-form names are reported as NewPgxParser reports them, each host
// paired with its own port or 5432. Keyword/value names are reported as
// pgx resolves them: hosts, ports and database name missing from the DSN
// are taken from the PG* environment variables, as the driver does, and
// a single port applies to every host.
func ParsePostgresDSN(dsn string) (ConnectionInfo, error) {
	cfg, err := pgconn.ParseConfig(dsn)
	if err != nil {
		return ConnectionInfo{}, errors.Wrap(err, "failed to parse postgres DSN")
	}
	if hasPrefixFold(dsn, "postgres://") || hasPrefixFold(dsn, "postgresql://") {
		return NewPgxParser(dsn).Parse(), nil
	}
	return ConnectionInfo{
		Component:    Pgx,
		DBType:       "PostgreSQL",
		Hosts:        pgconnHosts(cfg),
		DatabaseName: cfg.Database,
	}, nil
}

func pgconnHosts(cfg *pgconn.Config) []Host {
	hosts := []Host{pgconnHost(cfg.Host, cfg.Port)}
	for _, fc := range cfg.Fallbacks {
		// pgconn lists each host once per TLS mode it will try.
		h := pgconnHost(fc.Host, fc.Port)
		if h != hosts[len(hosts)-1] {
			hosts = append(hosts, h)
		}
	}
	return hosts
}

func pgconnHost(host string, port uint16) Host {
	if port == 0 {
		port = uint16(pgx.defaultPort)
	}
	return Host{Name: host, Port: int(port)}
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
