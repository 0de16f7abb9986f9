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

// Command apmdburl prints the database type, hosts and database name
// of connection URLs given as arguments, or read one per line from stdin.
//
// With -driver, the inputs are parsed as data source names for the
// named database/sql driver, e.g. -driver mysql.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.elastic.co/fastjson"

	"go.elastic.co/apm/module/apmdburl/v2"
	"go.elastic.co/apm/module/apmdburl/v2/internal/apmlog"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type logger interface {
	Errorf(format string, args ...interface{})
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("apmdburl", flag.ContinueOnError)
	flags.SetOutput(stderr)
	format := flags.String("format", "json", "output format (json or text)")
	driverName := flags.String("driver", "", "parse inputs as data source names for this database/sql driver")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: apmdburl [flags] [url...]\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}

	var write func(*bufio.Writer, apmdburl.ConnectionInfo)
	switch *format {
	case "json":
		write = writeJSON
	case "text":
		write = writeText
	default:
		fmt.Fprintf(stderr, "invalid -format %q\n", *format)
		flags.Usage()
		return 2
	}

	var log logger = apmlog.New(stderr, apmlog.ErrorLevel)
	if apmlog.DefaultLogger != nil {
		log = apmlog.DefaultLogger
	}

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	status := 0
	parse := func(url string) {
		var info apmdburl.ConnectionInfo
		var err error
		if *driverName != "" {
			info, err = apmdburl.ParseDSN(*driverName, url)
		} else {
			info, err = apmdburl.Parse(url)
		}
		if err != nil {
			log.Errorf("%s", err)
			status = 1
			return
		}
		write(out, info)
	}

	if flags.NArg() > 0 {
		for _, url := range flags.Args() {
			parse(url)
		}
		return status
	}
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if url := strings.TrimSpace(scanner.Text()); url != "" {
			parse(url)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Errorf("failed to read input: %s", err)
		return 1
	}
	return status
}

func writeJSON(out *bufio.Writer, info apmdburl.ConnectionInfo) {
	var w fastjson.Writer
	info.MarshalFastJSON(&w)
	w.RawByte('\n')
	out.Write(w.Bytes())
}

func writeText(out *bufio.Writer, info apmdburl.ConnectionInfo) {
	fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", info.Component, info.DBType, info.Peer(), info.DatabaseName)
}
