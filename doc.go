/*
Package pyvers selects Python interpreter versions for a CI build matrix.

The package is network-agnostic: it operates purely on release entries that
were decoded elsewhere. Typical flow:

 1. Fetch raw release records elsewhere (e.g., via the index package).
 2. Wrap each record with NewEntry for its implementation (CPython or PyPy).
 3. Call Process with the desired Constraints.
 4. Use the resulting list of version strings.

Selection model:
  - Entries below Min or at/above Max (exclusive) are dropped, as are
    pre-releases unless IncludePrereleases is set.
  - When a target OS or architecture is set, an entry only counts if it still
    has a distributable file for that platform.
  - Surviving entries are grouped by (major, minor, variant), where variant is
    standard or free-threaded; each group yields the single highest version.

Rendering:
  - CPython final releases keep their original version string ("3.12.4").
  - CPython pre-releases collapse to "MAJOR.MINOR-dev" ("3.13-dev").
  - PyPy entries render as "pypy-MAJOR.MINOR" of their CPython-compatibility
    version ("pypy-3.10"), with "-dev" appended for pre-releases.
  - Free-threaded variants carry the "-freethreaded" marker before any "-dev".

Usage example:

	entries := []pyvers.Entry{...}

	out := pyvers.Process(entries, pyvers.Constraints{
		Min:                 pyvers.MustParseVersion("3.9"),
		IncludeFreethreaded: true,
		TargetOS:            pyvers.Linux,
		TargetArch:          pyvers.X64,
	})

	fmt.Println(out) // ["3.9.21" "3.10.16" ... "3.13.1" "3.13.1-freethreaded"]
*/
package pyvers
