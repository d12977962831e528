/*
Package main is the pyvers-matrix CLI: it merges per-runner version lists
(one <runner>.json file per runner) into the matrix-with-exclusions JSON
document a CI workflow consumes.
*/
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/solaluset/python-version-matrix/matrix"
)

type Options struct {
	Args struct {
		Path string `positional-arg-name:"path" description:"Directory holding one <runner>.json version list per runner"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	var opt Options
	parser := flags.NewParser(&opt, flags.Default)
	parser.LongDescription = `pyvers-matrix — build-matrix merger.
Reads a directory of per-runner JSON version lists and prints a JSON object
with the runner list, the union of versions, and the (runner, version)
exclusions for versions a runner cannot build.`
	if _, err := parser.Parse(); err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	runners, err := matrix.Load(opt.Args.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pyvers-matrix: %v\n", err)
		os.Exit(2)
	}

	buf, err := json.Marshal(matrix.Build(runners))
	if err != nil {
		fmt.Fprintf(os.Stderr, "pyvers-matrix: %v\n", err)
		os.Exit(2)
	}

	fmt.Println(string(buf))
}
