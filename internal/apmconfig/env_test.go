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

package apmconfig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.elastic.co/apm/module/apmdburl/v2/internal/apmconfig"
)

func TestParseBoolEnv(t *testing.T) {
	const envKey = "ELASTIC_APM_TEST_BOOL"
	t.Setenv(envKey, "")

	b, err := apmconfig.ParseBoolEnv(envKey, true)
	assert.NoError(t, err)
	assert.True(t, b)

	t.Setenv(envKey, " false ")
	b, err = apmconfig.ParseBoolEnv(envKey, true)
	assert.NoError(t, err)
	assert.False(t, b)

	t.Setenv(envKey, "falsk")
	_, err = apmconfig.ParseBoolEnv(envKey, true)
	assert.EqualError(t, err, `failed to parse ELASTIC_APM_TEST_BOOL: strconv.ParseBool: parsing "falsk": invalid syntax`)
}

func TestStringEnv(t *testing.T) {
	const envKey = "ELASTIC_APM_TEST_STRING"
	t.Setenv(envKey, "  ")
	assert.Equal(t, "datasource", apmconfig.StringEnv(envKey, "datasource"))

	t.Setenv(envKey, " pool ")
	assert.Equal(t, "pool", apmconfig.StringEnv(envKey, "datasource"))
}

func TestParseListEnv(t *testing.T) {
	const envKey = "ELASTIC_APM_TEST_LIST"
	t.Setenv(envKey, "")
	assert.Equal(t, []string{"a"}, apmconfig.ParseListEnv(envKey, []string{"a"}))

	t.Setenv(envKey, "numBusyConnections, ,maxPoolSize,")
	assert.Equal(t, []string{"numBusyConnections", "maxPoolSize"}, apmconfig.ParseListEnv(envKey, nil))
}
