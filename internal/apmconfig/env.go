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

// Package apmconfig parses configuration from environment variables.
package apmconfig // import "go.elastic.co/apm/module/apmdburl/v2/internal/apmconfig"

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseBoolEnv gets the value of the environment variable envKey
// and, if set, parses it as a boolean. If the environment variable
// is unset, defaultValue is returned.
func ParseBoolEnv(envKey string, defaultValue bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(envKey))
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, errors.Wrapf(err, "failed to parse %s", envKey)
	}
	return b, nil
}

// StringEnv returns the trimmed value of the environment variable
// envKey, or defaultValue if it is unset or blank.
func StringEnv(envKey, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(envKey)); value != "" {
		return value
	}
	return defaultValue
}

// ParseListEnv gets the value of the environment variable envKey and,
// if set, splits it on commas. Blank items are dropped. If the environment
// variable is unset, defaultValue is returned.
func ParseListEnv(envKey string, defaultValue []string) []string {
	value := os.Getenv(envKey)
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
