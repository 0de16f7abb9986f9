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

var jtdsSQLServer = hostListDialect{
	component:   JTDSJDBC,
	dbType:      "SqlServer",
	defaultPort: 1433,
	params:      ";",
	hostsStart:  afterSlashes("jdbc:jtds:sqlserver:"),
}

// NewJTDSSQLServerParser returns a Parser for jTDS SQL Server URLs of the
// form jdbc:jtds:sqlserver://host[:port][/database][;params].
func NewJTDSSQLServerParser(url string) Parser {
	return jtdsSQLServer.newParser(url)
}
