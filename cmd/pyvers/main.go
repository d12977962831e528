/*
Package main is the pyvers CLI: it queries the upstream Python release feeds
and prints the selected interpreter version strings as a JSON array, ready
for a CI build matrix.
*/
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/jessevdk/go-flags"

	"github.com/solaluset/python-version-matrix/index"
)

type Options struct {
	// Version selection
	OptionsSelect OptionsSelect `group:"Selection"`
	// Upstream feed locations
	OptionsSource OptionsSource `group:"Sources"`

	Verbose bool `short:"v" long:"verbose" description:"Enable debug logging on stderr"`
}

type OptionsSelect struct {
	Min             string   `short:"m" long:"min"            description:"Minimum version (inclusive), or 'auto' to derive it from the EOL feed" default:"auto"`
	Max             string   `short:"x" long:"max"            description:"Maximum version (exclusive)"`
	Prereleases     bool     `short:"p" long:"prereleases"    description:"Include pre-release versions"`
	Freethreaded    bool     `short:"t" long:"freethreaded"   description:"Include free-threaded builds"`
	Implementations []string `short:"i" long:"implementation" description:"Interpreter implementation to query (repeatable)" choice:"cpython" choice:"pypy" default:"cpython"`
	CheckPlatform   bool     `short:"P" long:"check-platform" description:"Keep only versions with a build for RUNNER_OS / RUNNER_ARCH"`
}

type OptionsSource struct {
	CPythonURL string `long:"cpython-url" description:"CPython release index URL"`
	PyPyURL    string `long:"pypy-url"    description:"PyPy release index URL"`
	EOLURL     string `long:"eol-url"     description:"End-of-life index URL"`
}

func main() {
	var opt Options
	parser := flags.NewParser(&opt, flags.Default|flags.AllowBoolValues)
	parser.LongDescription = `pyvers — Python interpreter version selector.
Combines the CPython and PyPy release indexes with the end-of-life feed and
prints the version strings matching the given bounds and platform as a JSON
array on stdout.`
	if _, err := parser.Parse(); err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	level := hclog.Warn
	if opt.Verbose {
		level = hclog.Debug
	}
	log := hclog.New(&hclog.LoggerOptions{Name: "pyvers", Level: level})

	client := index.NewClient(log)
	if u := opt.OptionsSource.CPythonURL; u != "" {
		client.CPythonURL = u
	}
	if u := opt.OptionsSource.PyPyURL; u != "" {
		client.PyPyURL = u
	}
	if u := opt.OptionsSource.EOLURL; u != "" {
		client.EOLURL = u
	}

	q := index.Query{
		Min:                 opt.OptionsSelect.Min,
		Max:                 opt.OptionsSelect.Max,
		IncludePrereleases:  opt.OptionsSelect.Prereleases,
		IncludeFreethreaded: opt.OptionsSelect.Freethreaded,
		Implementations:     opt.OptionsSelect.Implementations,
	}
	if opt.OptionsSelect.CheckPlatform {
		q.TargetOS = os.Getenv("RUNNER_OS")
		q.TargetArch = os.Getenv("RUNNER_ARCH")
	}

	out, err := client.Versions(context.Background(), q)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pyvers: %v\n", err)
		os.Exit(2)
	}
	if out == nil {
		out = []string{}
	}

	buf, err := json.Marshal(out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pyvers: %v\n", err)
		os.Exit(2)
	}

	fmt.Println(string(buf))
}
