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

// Package apmdburl parses JDBC-style database connection URLs into a
// ConnectionInfo: the driver component, the database type, the server
// hosts and the database name.
//
// Each dialect is identified by a URL prefix such as "jdbc:mysql:" or
// "jdbc:sybase:Tds:". Parse selects the dialect registered for the longest
// matching prefix:
//
//	info, err := apmdburl.Parse("jdbc:sybase:Tds:h1,h2:6000/mydb")
//	// info.Peer() == "h1:5000,h2:6000", info.DatabaseName == "mydb"
//
// Parsing is best-effort and never fails once a dialect has been chosen.
// Missing ports are replaced by the dialect's default port, and URLs
// without a database segment produce an empty DatabaseName.
//
// Data source names passed to sql.Open, which have no common prefix, are
// parsed by driver name with ParseDSN.
package apmdburl // import "go.elastic.co/apm/module/apmdburl/v2"
