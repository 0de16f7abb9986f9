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

const h2Prefix = "jdbc:h2:"

var h2Server = hostListDialect{
	component:   H2JDBC,
	dbType:      "H2",
	defaultPort: 9092,
	params:      ";",
	hostsStart:  afterSlashes(h2Prefix),
}

// NewH2Parser returns a Parser for H2 URLs. Server mode URLs
// (jdbc:h2:tcp://host[:port]/path, jdbc:h2:ssl://...) report their hosts;
// embedded URLs (jdbc:h2:mem:name, jdbc:h2:file:path, jdbc:h2:path)
// report localhost with no port.
func NewH2Parser(url string) Parser {
	if strings.Contains(url, "//") {
		return h2Server.newParser(url)
	}
	return &h2EmbeddedParser{urlParser: newURLParser(url, len(h2Prefix), h2Server.params)}
}

type h2EmbeddedParser struct {
	urlParser
}

func (p *h2EmbeddedParser) Parse() ConnectionInfo {
	name := p.slice(Location{Start: p.hostsStart, End: p.paramsStart(p.hostsStart)})
	for _, mode := range [...]string{"mem:", "file:"} {
		if len(name) >= len(mode) && strings.EqualFold(name[:len(mode)], mode) {
			name = name[len(mode):]
			break
		}
	}
	return ConnectionInfo{
		Component:    H2JDBC,
		DBType:       "H2",
		Hosts:        []Host{{Name: "localhost"}},
		DatabaseName: name,
	}
}
