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

package apmdburl_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"go.elastic.co/apm/module/apmdburl/v2"
)

func TestSybaseParser(t *testing.T) {
	test := func(url string, hosts []apmdburl.Host, database string) {
		t.Helper()
		want := apmdburl.ConnectionInfo{
			Component:    apmdburl.SybaseJDBC,
			DBType:       "Sybase",
			Hosts:        hosts,
			DatabaseName: database,
		}
		got := apmdburl.NewSybaseParser(url).Parse()
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: (-want +got)\n%s", url, diff)
		}
	}

	test("jdbc:sybase:Tds:host1:5001/mydb", []apmdburl.Host{{Name: "host1", Port: 5001}}, "mydb")
	test("jdbc:sybase:Tds:host1/mydb?x=1", []apmdburl.Host{{Name: "host1", Port: 5000}}, "mydb")
	test("jdbc:sybase:Tds:h1,h2:6000,h3/mydb", []apmdburl.Host{
		{Name: "h1", Port: 5000},
		{Name: "h2", Port: 6000},
		{Name: "h3", Port: 5000},
	}, "mydb")
	test("jdbc:sybase:Tds:host1?x=1", []apmdburl.Host{{Name: "host1", Port: 5000}}, "")
	test("jdbc:sybase:Tds:host1/", []apmdburl.Host{{Name: "host1", Port: 5000}}, "")
	test("jdbc:sybase:Tds:host1/?x=1", []apmdburl.Host{{Name: "host1", Port: 5000}}, "")
	test("jdbc:sybase:Tds:host1:5001?x=/y", []apmdburl.Host{{Name: "host1", Port: 5001}}, "")
	test("jdbc:sybase:Tds:h1,h2?charset=utf8", []apmdburl.Host{
		{Name: "h1", Port: 5000},
		{Name: "h2", Port: 5000},
	}, "")
	test("jdbc:sybase:Tds:h1,h2?x=a/b", []apmdburl.Host{
		{Name: "h1", Port: 5000},
		{Name: "h2", Port: 5000},
	}, "")
	test("jdbc:sybase:Tds:h1:5001,h2:5002/db?x=a/b", []apmdburl.Host{
		{Name: "h1", Port: 5001},
		{Name: "h2", Port: 5002},
	}, "db")
	test("jdbc:sybase:Tds:host1:notaport/mydb", []apmdburl.Host{{Name: "host1", Port: 5000}}, "mydb")
	test("jdbc:sybase:Tds:", []apmdburl.Host{{Name: "", Port: 5000}}, "")
}

func TestSybaseParserHostCount(t *testing.T) {
	for n := 1; n <= 8; n++ {
		var (
			entries []string
			want    []apmdburl.Host
		)
		for i := 0; i < n; i++ {
			name := fmt.Sprintf("syb%d.example.com", i)
			if i%2 == 0 {
				entries = append(entries, name)
				want = append(want, apmdburl.Host{Name: name, Port: 5000})
			} else {
				port := 6000 + i
				entries = append(entries, name+":"+strconv.Itoa(port))
				want = append(want, apmdburl.Host{Name: name, Port: port})
			}
		}
		url := "jdbc:sybase:Tds:" + strings.Join(entries, ",") + "/inventory?charset=utf8"
		info := apmdburl.NewSybaseParser(url).Parse()
		assert.Equal(t, want, info.Hosts, url)
		assert.Equal(t, "inventory", info.DatabaseName, url)
	}
}

func TestSybaseParserIdempotent(t *testing.T) {
	const url = "jdbc:sybase:Tds:h1,h2:6000,h3/mydb?x=1"
	first := apmdburl.NewSybaseParser(url).Parse()
	second := apmdburl.NewSybaseParser(url).Parse()
	assert.Equal(t, first, second)
	assert.Equal(t, "h1:5000,h2:6000,h3:5000", first.Peer())
}

func TestJTDSSybaseParser(t *testing.T) {
	info := apmdburl.NewJTDSSybaseParser("jdbc:jtds:sybase://syb1/sales;appName=inventory").Parse()
	assert.Equal(t, apmdburl.ConnectionInfo{
		Component:    apmdburl.JTDSJDBC,
		DBType:       "Sybase",
		Hosts:        []apmdburl.Host{{Name: "syb1", Port: 7100}},
		DatabaseName: "sales",
	}, info)
}
