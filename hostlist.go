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

// hostListDialect describes URLs of the form
//
//	<prefix>host[:port][,host[:port]...][/database][<params>]
//
// shared by most JDBC drivers.
type hostListDialect struct {
	component   Component
	dbType      string
	defaultPort int

	// defaultHost replaces empty host names, if non-empty.
	defaultHost string

	// params holds the bytes that open the parameter section.
	params string

	// hostsStart returns the offset of the first host in url.
	hostsStart func(url string) int
}

func (d *hostListDialect) newParser(url string) *hostListParser {
	return &hostListParser{
		urlParser: newURLParser(url, d.hostsStart(url), d.params),
		dialect:   d,
	}
}

// afterPrefix returns a hostsStart function for URLs where the hosts
// follow a fixed prefix directly.
func afterPrefix(prefix string) func(string) int {
	return func(string) int {
		return len(prefix)
	}
}

// afterSlashes returns a hostsStart function for URLs where the hosts
// follow "//". URLs without "//" are treated as if the hosts followed
// the prefix.
func afterSlashes(prefix string) func(string) int {
	return func(url string) int {
		if i := strings.Index(url, "//"); i >= 0 {
			return i + 2
		}
		return len(prefix)
	}
}

type hostListParser struct {
	urlParser
	dialect *hostListDialect
}

// Parse parses the host list and database name.
//
// With multiple hosts the database name is the segment after the last '/'
// of the URL; with a single host it is searched for after the host range,
// so that nothing inside host:port is mistaken for it.
func (p *hostListParser) Parse() ConnectionInfo {
	loc := p.HostsRange()
	entries := splitHosts(p.slice(loc))
	hosts := make([]Host, len(entries))
	for i, entry := range entries {
		h := parseHost(entry, p.dialect.defaultPort)
		if h.Name == "" && p.dialect.defaultHost != "" {
			h.Name = p.dialect.defaultHost
		}
		hosts[i] = h
	}
	var name string
	if len(hosts) > 1 {
		name = p.DatabaseName()
	} else {
		name = p.DatabaseNameFrom(loc.End)
	}
	return ConnectionInfo{
		Component:    p.dialect.component,
		DBType:       p.dialect.dbType,
		Hosts:        hosts,
		DatabaseName: name,
	}
}
