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
)

// Parser parses a single connection URL.
//
// A Parser holds only the URL it was created for. Parsers are cheap to
// create and must not be shared between goroutines; create one per URL.
type Parser interface {
	// Parse returns the connection information described by the URL.
	// Parse never fails: URLs missing a database name or port produce
	// an empty database name or the dialect's default port.
	Parse() ConnectionInfo
}

// NewParserFunc returns a Parser for url.
type NewParserFunc func(url string) Parser

// delimiter reports which kind of separator was found first when
// scanning a URL from some offset.
type delimiter int

const (
	noDelimiter delimiter = iota
	pathDelimiter
	paramDelimiter
)

// urlParser holds the state and range arithmetic shared by the dialects.
// Dialects embed it and implement Parse.
type urlParser struct {
	url string

	// hostsStart is the offset of the first host in url.
	hostsStart int

	// params holds the bytes that open the parameter section.
	params string
}

func newURLParser(url string, hostsStart int, params string) urlParser {
	p := urlParser{url: url, params: params}
	p.hostsStart = p.clamp(hostsStart)
	return p
}

func (p *urlParser) clamp(offset int) int {
	switch {
	case offset < 0:
		return 0
	case offset > len(p.url):
		return len(p.url)
	}
	return offset
}

// nextDelimiter returns the kind and offset of the first '/' or parameter
// separator at or after from.
func (p *urlParser) nextDelimiter(from int) (delimiter, int) {
	from = p.clamp(from)
	i := strings.IndexAny(p.url[from:], "/"+p.params)
	if i < 0 {
		return noDelimiter, len(p.url)
	}
	i += from
	if p.url[i] == '/' {
		return pathDelimiter, i
	}
	return paramDelimiter, i
}

// paramsStart returns the offset of the first parameter separator at or
// after from, or len(url) if there is none.
func (p *urlParser) paramsStart(from int) int {
	from = p.clamp(from)
	if i := strings.IndexAny(p.url[from:], p.params); i >= 0 {
		return from + i
	}
	return len(p.url)
}

// HostsRange returns the range holding the host list: from the first host
// up to the first '/' or parameter separator, or to the end of the URL.
func (p *urlParser) HostsRange() Location {
	_, end := p.nextDelimiter(p.hostsStart)
	return Location{Start: p.hostsStart, End: end}
}

// DatabaseNameRange returns the range of the database name that follows
// the last '/' before the parameters. The search starts at the first host,
// so it spans an entire host list. The boolean result is false if there
// is no database name segment.
func (p *urlParser) DatabaseNameRange() (Location, bool) {
	end := p.paramsStart(p.hostsStart)
	slash := strings.LastIndexByte(p.url[p.hostsStart:end], '/')
	if slash < 0 {
		return Location{}, false
	}
	return Location{Start: p.hostsStart + slash + 1, End: end}, true
}

// DatabaseNameRangeFrom returns the range of the database name following
// the first '/' at or after offset. If a parameter separator comes before
// any '/', the URL has no database name and the boolean result is false.
func (p *urlParser) DatabaseNameRangeFrom(offset int) (Location, bool) {
	d, i := p.nextDelimiter(offset)
	if d != pathDelimiter {
		return Location{}, false
	}
	return Location{Start: i + 1, End: p.paramsStart(i + 1)}, true
}

// DatabaseName returns the text of DatabaseNameRange, or "" if absent.
func (p *urlParser) DatabaseName() string {
	loc, ok := p.DatabaseNameRange()
	if !ok {
		return ""
	}
	return p.slice(loc)
}

// DatabaseNameFrom returns the text of DatabaseNameRangeFrom(offset),
// or "" if absent.
func (p *urlParser) DatabaseNameFrom(offset int) string {
	loc, ok := p.DatabaseNameRangeFrom(offset)
	if !ok {
		return ""
	}
	return p.slice(loc)
}

func (p *urlParser) slice(loc Location) string {
	return p.url[p.clamp(loc.Start):p.clamp(loc.End)]
}

// splitHosts splits a comma-separated host list. Trailing empty entries are
// dropped, but at least one entry is always returned.
func splitHosts(hosts string) []string {
	entries := strings.Split(hosts, ",")
	n := len(entries)
	for n > 1 && entries[n-1] == "" {
		n--
	}
	return entries[:n]
}

// parseHost splits a host[:port] entry. Entries without a usable port get
// defaultPort.
func parseHost(entry string, defaultPort int) Host {
	name, port, ok := strings.Cut(entry, ":")
	if !ok {
		return Host{Name: entry, Port: defaultPort}
	}
	// Anything after a second ':' is not part of the port.
	port, _, _ = strings.Cut(port, ":")
	n, err := strconv.Atoi(port)
	if err != nil || n <= 0 {
		return Host{Name: name, Port: defaultPort}
	}
	return Host{Name: name, Port: n}
}
