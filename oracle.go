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

const oracleDefaultPort = 1521

// NewOracleParser returns a Parser for Oracle JDBC URLs. Supported forms:
//
//	jdbc:oracle:thin:@host[:port]:SID
//	jdbc:oracle:thin:@[//]host[:port]/service
//	jdbc:oracle:thin:@(DESCRIPTION=(ADDRESS=(HOST=host)(PORT=port))...(CONNECT_DATA=(SERVICE_NAME=service)))
//
// Credentials before the '@' are skipped.
func NewOracleParser(url string) Parser {
	start := len(url)
	if at := strings.IndexByte(url, '@'); at >= 0 {
		start = at + 1
	}
	return &oracleParser{urlParser: newURLParser(url, start, "?")}
}

type oracleParser struct {
	urlParser
}

func (p *oracleParser) Parse() ConnectionInfo {
	info := ConnectionInfo{Component: OracleJDBC, DBType: "Oracle"}
	rest := strings.TrimSpace(p.url[p.hostsStart:])
	if strings.HasPrefix(rest, "(") {
		info.Hosts, info.DatabaseName = parseTNSDescriptor(rest)
		if len(info.Hosts) == 0 {
			info.Hosts = []Host{{Name: "localhost", Port: oracleDefaultPort}}
		}
		return info
	}

	address := strings.TrimPrefix(p.slice(Location{Start: p.hostsStart, End: p.paramsStart(p.hostsStart)}), "//")
	hostPort := address
	if slash := strings.IndexByte(address, '/'); slash >= 0 {
		hostPort, info.DatabaseName = address[:slash], address[slash+1:]
	} else if name, port, ok := strings.Cut(address, ":"); ok {
		if port, sid, ok := strings.Cut(port, ":"); ok {
			hostPort, info.DatabaseName = name+":"+port, sid
		}
	}
	h := parseHost(hostPort, oracleDefaultPort)
	if h.Name == "" {
		h.Name = "localhost"
	}
	info.Hosts = []Host{h}
	return info
}

// parseTNSDescriptor extracts the addresses and the service name or SID
// from a TNS connect descriptor.
func parseTNSDescriptor(desc string) ([]Host, string) {
	var hosts []Host
	for _, address := range splitFold(desc, "(ADDRESS=")[1:] {
		host, ok := tnsValue(address, "HOST=")
		if !ok {
			continue
		}
		h := Host{Name: host, Port: oracleDefaultPort}
		if port, ok := tnsValue(address, "PORT="); ok {
			h = parseHost(host+":"+port, oracleDefaultPort)
		}
		hosts = append(hosts, h)
	}
	name, ok := tnsValue(desc, "SERVICE_NAME=")
	if !ok {
		name, _ = tnsValue(desc, "SID=")
	}
	return hosts, name
}

// tnsValue returns the value following key, up to the closing ')'.
func tnsValue(s, key string) (string, bool) {
	i := indexFold(s, key)
	if i < 0 {
		return "", false
	}
	v := s[i+len(key):]
	if end := strings.IndexByte(v, ')'); end >= 0 {
		v = v[:end]
	}
	return strings.TrimSpace(v), true
}

// splitFold splits s around each ASCII case-insensitive instance of sep.
func splitFold(s, sep string) []string {
	var parts []string
	for {
		i := indexFold(s, sep)
		if i < 0 {
			return append(parts, s)
		}
		parts = append(parts, s[:i])
		s = s[i+len(sep):]
	}
}

func indexFold(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(substr)], substr) {
			return i
		}
	}
	return -1
}
