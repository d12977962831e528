package pyvers

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/woozymasta/semver"
)

// preLabels maps recognized pre-release labels to their canonical SemVer
// prerelease identifier. Lexicographic order of the canonical labels matches
// release order: alpha < beta < rc.
var preLabels = map[string]string{
	"a":       "alpha",
	"alpha":   "alpha",
	"b":       "beta",
	"beta":    "beta",
	"c":       "rc",
	"rc":      "rc",
	"pre":     "rc",
	"preview": "rc",
	"dev":     "dev",
}

// Version is a parsed Python release identifier with a total order.
// Comparison goes by (major, minor, micro) first; a pre-release always sorts
// below the final release with the same numeric components.
type Version struct {
	orig string
	sv   semver.Semver
	pre  bool
}

// ParseVersion parses a dotted release identifier like "3.12.4", "3.9",
// "3.13.0rc1" or "3.13.0-rc.1". It returns ErrInvalidVersion for anything
// outside that grammar.
//
// The micro component defaults to 0, so shorthand cycles ("3.9") compare as
// their first release ("3.9.0").
func ParseVersion(s string) (Version, error) {
	orig := strings.TrimSpace(s)

	m := versionRe.FindStringSubmatch(strings.ToLower(orig))
	if m == nil {
		return Version{}, errors.Wrap(ErrInvalidVersion, orig)
	}

	micro := m[3]
	if micro == "" {
		micro = "0"
	}

	canon := m[1] + "." + m[2] + "." + micro
	pre := m[4] != ""
	if pre {
		canon += "-" + preLabels[m[4]]
		if m[5] != "" {
			canon += "." + m[5]
		}
	}

	sv, ok := semver.Parse(canon)
	if !ok || !sv.Valid {
		return Version{}, errors.Wrap(ErrInvalidVersion, orig)
	}

	return Version{orig: orig, sv: sv, pre: pre}, nil
}

// MustParseVersion is ParseVersion that panics on error.
// Intended for constants and tests.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}

	return v
}

// Major returns the major component.
func (v Version) Major() int { return v.sv.Major }

// Minor returns the minor component.
func (v Version) Minor() int { return v.sv.Minor }

// IsPrerelease reports whether the identifier carries a pre-release segment.
func (v Version) IsPrerelease() bool { return v.pre }

// Compare returns -1, 0, or +1 comparing v against o in release order.
func (v Version) Compare(o Version) int { return v.sv.Compare(o.sv) }

// String returns the identifier as it was given to ParseVersion.
func (v Version) String() string { return v.orig }
