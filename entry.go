package pyvers

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Implementation selects the interpreter implementation a release entry
// belongs to. It decides which upstream field carries the version and how
// the final version string is rendered.
type Implementation uint8

const (
	// CPython is the reference implementation (actions versions manifest).
	CPython Implementation = iota
	// PyPy entries carry the CPython-compatibility version they provide.
	PyPy
)

// String returns a stable textual representation for Implementation.
func (i Implementation) String() string {
	switch i {
	case PyPy:
		return "pypy"
	default:
		return "cpython"
	}
}

// versionField names the upstream record field holding the version string.
func (i Implementation) versionField() string {
	switch i {
	case PyPy:
		return "python_version"
	default:
		return "version"
	}
}

// ParseImplementation maps free-form implementation names (case-insensitive)
// to an Implementation. Unknown names fail with ErrUnsupportedImplementation.
func ParseImplementation(s string) (Implementation, error) {
	switch toTok(s) {
	case "cpython":
		return CPython, nil

	case "pypy":
		return PyPy, nil

	default:
		return 0, errors.Wrap(ErrUnsupportedImplementation, s)
	}
}

// ReleaseFile is one distributable build of a release: raw platform and
// architecture names as they appear in the upstream feed.
type ReleaseFile struct {
	Platform string `json:"platform"`
	Arch     string `json:"arch"`
}

// Freethreaded reports whether the file is a free-threaded build
// (architecture name carries the marker suffix).
func (f ReleaseFile) Freethreaded() bool {
	return strings.HasSuffix(strings.ToLower(f.Arch), FreethreadedSuffix)
}

// Entry is one upstream release record in a uniform shape: its version, its
// distributable files, and the implementation-specific renderer producing
// the canonical version string. Entries are immutable once constructed.
type Entry interface {
	Version() Version
	Files() []ReleaseFile

	// Render produces the canonical version string with the given variant
	// suffix ("" or FreethreadedSuffix) applied.
	Render(suffix string) string
}

// NewEntry wraps one upstream release record for the given implementation.
// The version string must already be extracted from the implementation's
// version field; an empty string fails with ErrMissingField, an unparsable
// one with ErrInvalidVersion.
func NewEntry(impl Implementation, version string, files []ReleaseFile) (Entry, error) {
	if version == "" {
		return nil, errors.Wrapf(ErrMissingField, "%s record has no %q", impl, impl.versionField())
	}

	ver, err := ParseVersion(version)
	if err != nil {
		return nil, err
	}

	rel := release{raw: version, ver: ver, files: files}
	if impl == PyPy {
		return pypyEntry{rel}, nil
	}

	return cpythonEntry{rel}, nil
}

// release carries the fields shared by both implementations.
type release struct {
	raw   string
	ver   Version
	files []ReleaseFile
}

func (r release) Version() Version     { return r.ver }
func (r release) Files() []ReleaseFile { return r.files }

// simple renders the shortened "MAJOR.MINOR{suffix}" form, with "-dev"
// appended for pre-releases.
func (r release) simple(suffix string) string {
	s := strconv.Itoa(r.ver.Major()) + "." + strconv.Itoa(r.ver.Minor()) + suffix
	if r.ver.IsPrerelease() {
		s += "-dev"
	}

	return s
}

type cpythonEntry struct{ release }

// Render keeps the original version string for final releases; pre-releases
// collapse to the "MAJOR.MINOR-dev" form the setup action understands.
func (e cpythonEntry) Render(suffix string) string {
	if e.ver.IsPrerelease() {
		return e.simple(suffix)
	}

	return e.raw + suffix
}

type pypyEntry struct{ release }

// Render always uses the shortened form of the CPython-compatibility
// version, prefixed with the implementation name.
func (e pypyEntry) Render(suffix string) string {
	return "pypy-" + e.simple(suffix)
}
