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
	"strconv"
	"strings"

	"go.elastic.co/fastjson"
)

// Component identifies the database driver that a connection URL belongs to.
type Component int

// Components recognised by the parsers in this package.
const (
	UnknownComponent Component = iota
	SybaseJDBC
	MySQLJDBC
	MariaDBJDBC
	PostgreSQLJDBC
	ClickHouseJDBC
	KylinJDBC
	ImpalaJDBC
	JTDSJDBC
	OracleJDBC
	H2JDBC
	Pgx
	GoMySQL
)

var componentNames = [...]string{
	UnknownComponent: "unknown",
	SybaseJDBC:       "sybase-jdbc-driver",
	MySQLJDBC:        "mysql-connector-java",
	MariaDBJDBC:      "mariadb-jdbc",
	PostgreSQLJDBC:   "postgresql-jdbc-driver",
	ClickHouseJDBC:   "clickhouse-jdbc-driver",
	KylinJDBC:        "kylin-jdbc-driver",
	ImpalaJDBC:       "impala-jdbc-driver",
	JTDSJDBC:         "jtds-jdbc-driver",
	OracleJDBC:       "ojdbc",
	H2JDBC:           "h2-jdbc-driver",
	Pgx:              "pgx",
	GoMySQL:          "go-sql-driver-mysql",
}

// String returns the canonical driver name for c.
func (c Component) String() string {
	if c < 0 || int(c) >= len(componentNames) {
		return componentNames[UnknownComponent]
	}
	return componentNames[c]
}

// Host is a single database server address.
type Host struct {
	Name string

	// Port is the server port. Zero means the connection does not
	// use a network port, e.g. an embedded in-memory database.
	Port int
}

// String returns "name:port", or just the name if h has no port.
func (h Host) String() string {
	if h.Port == 0 {
		return h.Name
	}
	return h.Name + ":" + strconv.Itoa(h.Port)
}

// ConnectionInfo is the normalized description of a database connection URL.
type ConnectionInfo struct {
	// Component identifies the driver.
	Component Component

	// DBType is a human readable database type, e.g. "Sybase".
	DBType string

	// Hosts holds the server addresses in the order they appear in the URL.
	// Parsers always return at least one host.
	Hosts []Host

	// DatabaseName is the database named by the URL, or empty if the URL
	// does not name one.
	DatabaseName string
}

// Peer returns the hosts formatted as a comma-separated list of
// host:port pairs.
func (info ConnectionInfo) Peer() string {
	switch len(info.Hosts) {
	case 0:
		return ""
	case 1:
		return info.Hosts[0].String()
	}
	var sb strings.Builder
	for i, h := range info.Hosts {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(h.String())
	}
	return sb.String()
}

// MarshalFastJSON writes the JSON representation of info to w.
func (info ConnectionInfo) MarshalFastJSON(w *fastjson.Writer) error {
	w.RawString(`{"component":`)
	w.String(info.Component.String())
	w.RawString(`,"db_type":`)
	w.String(info.DBType)
	w.RawString(`,"hosts":[`)
	for i, h := range info.Hosts {
		if i > 0 {
			w.RawByte(',')
		}
		w.RawString(`{"host":`)
		w.String(h.Name)
		w.RawString(`,"port":`)
		w.Int64(int64(h.Port))
		w.RawByte('}')
	}
	w.RawString(`],"peer":`)
	w.String(info.Peer())
	w.RawString(`,"database":`)
	w.String(info.DatabaseName)
	w.RawByte('}')
	return nil
}
