package pyvers

import "regexp"

// Python release version: MAJOR.MINOR[.MICRO][PRE].
//
// PRE accepts both the compact form used by CPython tags ("rc1", "a2", "b4")
// and the separated form used by the release manifests ("-rc.1", "-beta.2").
var versionRe = regexp.MustCompile(
	`^(0|[1-9]\d*)\.(0|[1-9]\d*)(?:\.(0|[1-9]\d*))?` +
		`(?:[-._]?(a|b|c|rc|alpha|beta|pre|preview|dev)[-._]?(\d+)?)?$`,
)
