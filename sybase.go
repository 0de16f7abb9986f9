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
	sybasePrefix     = "jdbc:sybase:Tds:"
	jtdsSybasePrefix = "jdbc:jtds:sybase:"
)

var (
	sybase = hostListDialect{
		component:   SybaseJDBC,
		dbType:      "Sybase",
		defaultPort: 5000,
		params:      "?",
		hostsStart:  afterPrefix(sybasePrefix),
	}

	jtdsSybase = hostListDialect{
		component:   JTDSJDBC,
		dbType:      "Sybase",
		defaultPort: 7100,
		params:      ";",
		hostsStart:  afterSlashes(jtdsSybasePrefix),
	}
)

// NewSybaseParser returns a Parser for jConnect URLs of the form
// jdbc:sybase:Tds:host[:port][,host[:port]...][/database][?params].
// The default port is 5000.
func NewSybaseParser(url string) Parser {
	return sybase.newParser(url)
}

// NewJTDSSybaseParser returns a Parser for jTDS Sybase URLs of the form
// jdbc:jtds:sybase://host[:port][/database][;params].
func NewJTDSSybaseParser(url string) Parser {
	return jtdsSybase.newParser(url)
}
