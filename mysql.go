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

const (
	mysqlPrefix   = "jdbc:mysql:"
	mariadbPrefix = "jdbc:mariadb:"
)

var (
	mysqlJDBC = hostListDialect{
		component:   MySQLJDBC,
		dbType:      "Mysql",
		defaultPort: 3306,
		defaultHost: "localhost",
		params:      "?",
		hostsStart:  afterSlashes(mysqlPrefix),
	}

	mariadbJDBC = hostListDialect{
		component:   MariaDBJDBC,
		dbType:      "Mariadb",
		defaultPort: 3306,
		defaultHost: "localhost",
		params:      "?",
		hostsStart:  afterSlashes(mariadbPrefix),
	}
)

// NewMySQLParser returns a Parser for MySQL Connector/J URLs, including
// the load-balancing and replication forms such as
// jdbc:mysql:loadbalance://host1,host2/database.
func NewMySQLParser(url string) Parser {
	return mysqlJDBC.newParser(url)
}

// NewMariaDBParser returns a Parser for MariaDB Connector/J URLs.
func NewMariaDBParser(url string) Parser {
	return mariadbJDBC.newParser(url)
}
