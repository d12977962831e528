package pyvers

// Constraints configures one Process run. The zero values of TargetOS and
// TargetArch disable the corresponding file filter.
type Constraints struct {
	// Min is the inclusive lower version bound. Required; callers resolving
	// an "auto" minimum do so before building Constraints.
	Min Version

	// Max is the exclusive upper version bound; nil means unbounded.
	Max *Version

	// IncludePrereleases keeps pre-release entries.
	IncludePrereleases bool

	// IncludeFreethreaded additionally selects free-threaded variants for
	// entries that ship free-threaded files.
	IncludeFreethreaded bool

	// TargetOS keeps only files for this operating system when set.
	TargetOS OS

	// TargetArch keeps only files for this architecture when set.
	// The free-threaded marker is stripped before comparing.
	TargetArch Arch
}

// group identifies one selection bucket: a (major, minor) release line in
// either the standard ("") or free-threaded variant. The variant doubles as
// the render suffix.
type group struct {
	major, minor int
	variant      string
}

// Process filters entries against the constraints and reduces them to one
// version string per (major, minor, variant) group: the highest surviving
// version of that line, rendered with the group's suffix.
//
// Output order is the first-registration order of groups; callers must not
// rely on it. Process never fails: malformed upstream data is rejected
// earlier, at entry construction.
func Process(entries []Entry, c Constraints) []string {
	best := make(map[group]Entry, len(entries))
	order := make([]group, 0, len(entries))

	register := func(g group, e Entry) {
		cur, ok := best[g]
		if !ok {
			best[g] = e
			order = append(order, g)
			return
		}

		// Strict greater keeps the first-seen entry on ties.
		if e.Version().Compare(cur.Version()) > 0 {
			best[g] = e
		}
	}

	for _, e := range entries {
		v := e.Version()

		if v.Compare(c.Min) < 0 {
			continue
		}

		if c.Max != nil && v.Compare(*c.Max) >= 0 {
			continue
		}

		if !c.IncludePrereleases && v.IsPrerelease() {
			continue
		}

		files := filterFiles(e.Files(), c)

		freethreaded := 0
		for _, f := range files {
			if f.Freethreaded() {
				freethreaded++
			}
		}

		// The standard variant qualifies whenever at least one filtered file
		// is not free-threaded, even if free-threaded files exist alongside.
		if freethreaded < len(files) {
			register(group{v.Major(), v.Minor(), ""}, e)
		}

		if c.IncludeFreethreaded && freethreaded > 0 {
			register(group{v.Major(), v.Minor(), FreethreadedSuffix}, e)
		}
	}

	out := make([]string, 0, len(order))
	for _, g := range order {
		out = append(out, best[g].Render(g.variant))
	}

	return out
}

// filterFiles keeps the files matching the target OS/arch. Files whose names
// normalize to none never match a concrete target.
func filterFiles(files []ReleaseFile, c Constraints) []ReleaseFile {
	if c.TargetOS == OSNone && c.TargetArch == ArchNone {
		return files
	}

	out := make([]ReleaseFile, 0, len(files))
	for _, f := range files {
		if c.TargetOS != OSNone && ParseOS(f.Platform) != c.TargetOS {
			continue
		}

		if c.TargetArch != ArchNone && ParseArch(f.Arch) != c.TargetArch {
			continue
		}

		out = append(out, f)
	}

	return out
}
