// Package matrix merges per-runner version lists into the matrix-with-
// exclusions document a CI workflow consumes: the union of all versions plus
// an exclude entry for every (runner, version) pair the runner cannot build.
package matrix

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Exclusion marks one (runner, version) combination to skip.
type Exclusion struct {
	Runner        string `json:"runner"`
	PythonVersion string `json:"python-version"`
}

// Matrix is the merged build matrix document.
type Matrix struct {
	Runner        []string    `json:"runner"`
	PythonVersion []string    `json:"python-version"`
	Exclude       []Exclusion `json:"exclude"`
}

// Load reads every "<runner>.json" file in dir (non-recursive) into a map
// from runner name to its version list. Each file must hold a JSON array of
// strings.
func Load(dir string) (map[string][]string, error) {
	items, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "read runner directory")
	}

	runners := make(map[string][]string, len(items))
	for _, it := range items {
		name := it.Name()
		if it.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", name)
		}

		var versions []string
		if err := json.Unmarshal(raw, &versions); err != nil {
			return nil, errors.Wrapf(err, "decode %s", name)
		}

		runners[strings.TrimSuffix(name, ".json")] = versions
	}

	return runners, nil
}

// Build merges the per-runner lists. Runners and versions are sorted so the
// output is reproducible; correctness does not depend on the order.
func Build(runners map[string][]string) Matrix {
	names := make([]string, 0, len(runners))
	for name := range runners {
		names = append(names, name)
	}
	sort.Strings(names)

	seen := make(map[string]struct{})
	versions := make([]string, 0)
	for _, name := range names {
		for _, v := range runners[name] {
			if _, ok := seen[v]; ok {
				continue
			}

			seen[v] = struct{}{}
			versions = append(versions, v)
		}
	}
	sort.Strings(versions)

	exclude := make([]Exclusion, 0)
	for _, v := range versions {
		for _, name := range names {
			if !slices.Contains(runners[name], v) {
				exclude = append(exclude, Exclusion{Runner: name, PythonVersion: v})
			}
		}
	}

	return Matrix{Runner: names, PythonVersion: versions, Exclude: exclude}
}
