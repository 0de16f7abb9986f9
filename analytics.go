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

var (
	clickhouse = hostListDialect{
		component:   ClickHouseJDBC,
		dbType:      "ClickHouse",
		defaultPort: 8123,
		params:      "?",
		hostsStart:  afterSlashes("jdbc:clickhouse:"),
	}

	kylin = hostListDialect{
		component:   KylinJDBC,
		dbType:      "Kylin",
		defaultPort: 7070,
		params:      "?",
		hostsStart:  afterSlashes("jdbc:kylin:"),
	}

	impala = hostListDialect{
		component:   ImpalaJDBC,
		dbType:      "Impala",
		defaultPort: 21050,
		params:      ";",
		hostsStart:  afterSlashes("jdbc:impala:"),
	}
)

// NewClickHouseParser returns a Parser for ClickHouse JDBC URLs.
func NewClickHouseParser(url string) Parser {
	return clickhouse.newParser(url)
}

// NewKylinParser returns a Parser for Apache Kylin JDBC URLs, where the
// database name is the Kylin project.
func NewKylinParser(url string) Parser {
	return kylin.newParser(url)
}

// NewImpalaParser returns a Parser for Impala JDBC URLs, whose
// properties follow a ';'.
func NewImpalaParser(url string) Parser {
	return impala.newParser(url)
}
