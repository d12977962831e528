package pyvers

import "strings"

// FreethreadedSuffix marks free-threaded (no-GIL) builds in upstream
// architecture names, e.g. "x64-freethreaded".
const FreethreadedSuffix = "-freethreaded"

// OS is a canonical operating-system tag. The zero value OSNone means
// "unknown / no target": it never matches a concrete tag and disables
// filtering when used as a target.
type OS uint8

const (
	// OSNone is an unrecognized or absent operating system.
	OSNone OS = iota
	// Linux covers the "linux" upstream name.
	Linux
	// Windows covers "windows", "win32" and "win64".
	Windows
	// MacOS covers "macos" and "darwin".
	MacOS
)

// String returns a stable textual representation for OS.
func (o OS) String() string {
	switch o {
	case Linux:
		return "linux"
	case Windows:
		return "windows"
	case MacOS:
		return "macos"
	default:
		return "none"
	}
}

// ParseOS maps free-form OS names to a canonical tag (case-insensitive).
// Unknown names map to OSNone, never an error.
//
//	linux:   "linux"
//	windows: "windows", "win32", "win64"
//	macos:   "macos", "darwin"
func ParseOS(s string) OS {
	switch toTok(s) {
	case "linux":
		return Linux

	case "windows", "win32", "win64":
		return Windows

	case "macos", "darwin":
		return MacOS

	default:
		return OSNone
	}
}

// Arch is a canonical architecture tag. The zero value ArchNone means
// "unknown / no target", same semantics as OSNone.
type Arch uint8

const (
	// ArchNone is an unrecognized or absent architecture.
	ArchNone Arch = iota
	// X86 covers "x86" and "i686".
	X86
	// X64 covers "x64".
	X64
	// ARM64 covers "aarch64" and "arm64".
	ARM64
)

// String returns a stable textual representation for Arch.
func (a Arch) String() string {
	switch a {
	case X86:
		return "x86"
	case X64:
		return "x64"
	case ARM64:
		return "arm64"
	default:
		return "none"
	}
}

// ParseArch maps free-form architecture names to a canonical tag
// (case-insensitive). A trailing free-threaded marker is stripped before
// matching, so "x64-freethreaded" parses as X64. Unknown names map to
// ArchNone, never an error.
//
//	x86:   "x86", "i686"
//	x64:   "x64"
//	arm64: "aarch64", "arm64"
func ParseArch(s string) Arch {
	switch strings.TrimSuffix(toTok(s), FreethreadedSuffix) {
	case "x86", "i686":
		return X86

	case "x64":
		return X64

	case "aarch64", "arm64":
		return ARM64

	default:
		return ArchNone
	}
}
