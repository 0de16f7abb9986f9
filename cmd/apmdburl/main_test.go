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

package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunJSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	status := run([]string{"jdbc:sybase:Tds:host1:5001/mydb"}, nil, &stdout, &stderr)
	assert.Equal(t, 0, status)
	assert.Empty(t, stderr.String())

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &decoded))
	assert.Equal(t, map[string]interface{}{
		"component": "sybase-jdbc-driver",
		"db_type":   "Sybase",
		"hosts": []interface{}{
			map[string]interface{}{"host": "host1", "port": float64(5001)},
		},
		"peer":     "host1:5001",
		"database": "mydb",
	}, decoded)
}

func TestRunTextStdin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	stdin := strings.NewReader("jdbc:sybase:Tds:host1,host2:5002/mydb\n\n  jdbc:mysql://db1/orders  \n")
	status := run([]string{"-format", "text"}, stdin, &stdout, &stderr)
	assert.Equal(t, 0, status)
	assert.Equal(t,
		"sybase-jdbc-driver\tSybase\thost1:5000,host2:5002\tmydb\n"+
			"mysql-connector-java\tMysql\tdb1:3306\torders\n",
		stdout.String(),
	)
}

func TestRunDriverDSN(t *testing.T) {
	var stdout, stderr bytes.Buffer
	status := run([]string{
		"-driver", "mysql", "-format", "text",
		"app:secret@tcp(db1:3307)/orders",
	}, nil, &stdout, &stderr)
	assert.Equal(t, 0, status)
	assert.Equal(t, "go-sql-driver-mysql\tMysql\tdb1:3307\torders\n", stdout.String())

	stdout.Reset()
	status = run([]string{"-driver", "sqlite3", "file:test.db"}, nil, &stdout, &stderr)
	assert.Equal(t, 1, status)
	assert.Contains(t, stderr.String(), `no DSN parser for driver \"sqlite3\"`)
}

func TestRunUnsupported(t *testing.T) {
	var stdout, stderr bytes.Buffer
	status := run([]string{"jdbc:unknown://user:secret@h/db", "jdbc:sybase:Tds:h/db"}, nil, &stdout, &stderr)
	assert.Equal(t, 1, status)
	assert.Contains(t, stderr.String(), `"level":"error"`)
	assert.Contains(t, stderr.String(), "jdbc:unknown")
	assert.NotContains(t, stderr.String(), "secret")
	assert.Equal(t, 1, strings.Count(stdout.String(), "\n"))
}

func TestRunInvalidFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	status := run([]string{"-format", "yaml", "jdbc:sybase:Tds:h/db"}, nil, &stdout, &stderr)
	assert.Equal(t, 2, status)
	assert.Contains(t, stderr.String(), `invalid -format "yaml"`)
	assert.Empty(t, stdout.String())
}
