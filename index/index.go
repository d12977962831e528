// Package index fetches the upstream release feeds and turns them into the
// version strings the core package selects. It is the only networked part of
// the module; everything here is sequential and fail-fast.
package index

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	pyvers "github.com/solaluset/python-version-matrix"
)

// Default feed locations. Overridable per Client for tests and mirrors.
const (
	CPythonIndexURL = "https://raw.githubusercontent.com/actions/python-versions" +
		"/refs/heads/main/versions-manifest.json"
	PyPyIndexURL = "https://downloads.python.org/pypy/versions.json"
	EOLIndexURL  = "https://endoflife.date/api/python.json"
)

// Client fetches release feeds. Construct with NewClient and adjust the
// exported fields before first use; the client is read-only afterwards.
type Client struct {
	// HTTP performs the feed requests.
	HTTP *http.Client

	// Feed locations, one per upstream.
	CPythonURL string
	PyPyURL    string
	EOLURL     string

	// Log receives debug-level fetch progress.
	Log hclog.Logger

	// Now supplies the current time for the EOL cutoff.
	Now func() time.Time
}

// NewClient returns a Client with the default feed URLs and a 30s request
// timeout. A nil logger is replaced with a no-op one.
func NewClient(log hclog.Logger) *Client {
	if log == nil {
		log = hclog.NewNullLogger()
	}

	return &Client{
		HTTP:       &http.Client{Timeout: 30 * time.Second},
		CPythonURL: CPythonIndexURL,
		PyPyURL:    PyPyIndexURL,
		EOLURL:     EOLIndexURL,
		Log:        log,
		Now:        time.Now,
	}
}

// Query describes one version-selection request.
type Query struct {
	// Min is the inclusive lower bound. "auto" (or empty) derives it from
	// the EOL feed: the lowest release cycle that is not yet end-of-life.
	Min string

	// Max is the exclusive upper bound; empty means unbounded.
	Max string

	// IncludePrereleases keeps pre-release versions.
	IncludePrereleases bool

	// IncludeFreethreaded additionally selects free-threaded variants.
	IncludeFreethreaded bool

	// Implementations lists the interpreter implementations to query,
	// in order. Unknown names fail the whole request.
	Implementations []string

	// TargetOS / TargetArch restrict results to versions that ship a build
	// for the given platform names (free-form, e.g. RUNNER_OS values).
	// Empty or unrecognized names disable the respective filter.
	TargetOS   string
	TargetArch string
}

// Versions resolves the query against the upstream feeds and returns the
// flat list of selected version strings across all requested
// implementations. Any fetch, decode, or parse failure aborts the call.
func (c *Client) Versions(ctx context.Context, q Query) ([]string, error) {
	min, err := c.resolveMin(ctx, q.Min)
	if err != nil {
		return nil, err
	}

	cons := pyvers.Constraints{
		Min:                 min,
		IncludePrereleases:  q.IncludePrereleases,
		IncludeFreethreaded: q.IncludeFreethreaded,
		TargetOS:            pyvers.ParseOS(q.TargetOS),
		TargetArch:          pyvers.ParseArch(q.TargetArch),
	}

	if q.Max != "" {
		max, err := pyvers.ParseVersion(q.Max)
		if err != nil {
			return nil, errors.Wrap(err, "max version")
		}
		cons.Max = &max
	}

	out := make([]string, 0, 16)
	for _, name := range q.Implementations {
		impl, err := pyvers.ParseImplementation(name)
		if err != nil {
			return nil, err
		}

		entries, err := c.fetchEntries(ctx, impl)
		if err != nil {
			return nil, err
		}

		out = append(out, pyvers.Process(entries, cons)...)
	}

	return out, nil
}

// resolveMin turns the query's min field into a concrete version.
func (c *Client) resolveMin(ctx context.Context, min string) (pyvers.Version, error) {
	if min == "" || min == "auto" {
		return c.AutoMin(ctx)
	}

	v, err := pyvers.ParseVersion(min)
	if err != nil {
		return pyvers.Version{}, errors.Wrap(err, "min version")
	}

	return v, nil
}

// eolCycle is one record of the end-of-life feed.
type eolCycle struct {
	Cycle string `json:"cycle"`
	EOL   string `json:"eol"`
}

// AutoMin derives the minimum supported version from the EOL feed: the
// lowest release cycle whose end-of-life date is still strictly in the
// future. A feed without any supported cycle is an error.
func (c *Client) AutoMin(ctx context.Context) (pyvers.Version, error) {
	var cycles []eolCycle
	if err := c.getJSON(ctx, c.EOLURL, &cycles); err != nil {
		return pyvers.Version{}, errors.Wrap(err, "eol index")
	}

	today := c.Now()

	var lowest pyvers.Version
	found := false
	for _, cy := range cycles {
		eol, err := time.Parse("2006-01-02", cy.EOL)
		if err != nil {
			return pyvers.Version{}, errors.Wrapf(err, "eol index: cycle %s", cy.Cycle)
		}

		if !eol.After(today) {
			continue
		}

		v, err := pyvers.ParseVersion(cy.Cycle)
		if err != nil {
			return pyvers.Version{}, errors.Wrap(err, "eol index")
		}

		if !found || v.Compare(lowest) < 0 {
			lowest = v
			found = true
		}
	}

	if !found {
		return pyvers.Version{}, errors.New("eol index: no release cycle is still supported")
	}

	c.Log.Debug("resolved auto minimum", "min", lowest.String())

	return lowest, nil
}

// cpythonRelease is one record of the actions versions manifest.
type cpythonRelease struct {
	Version string               `json:"version"`
	Files   []pyvers.ReleaseFile `json:"files"`
}

// pypyRelease is one record of the PyPy versions feed.
type pypyRelease struct {
	PythonVersion string               `json:"python_version"`
	Files         []pyvers.ReleaseFile `json:"files"`
}

// fetchEntries retrieves the implementation's feed and wraps every record.
func (c *Client) fetchEntries(ctx context.Context, impl pyvers.Implementation) ([]pyvers.Entry, error) {
	var entries []pyvers.Entry

	switch impl {
	case pyvers.PyPy:
		var recs []pypyRelease
		if err := c.getJSON(ctx, c.PyPyURL, &recs); err != nil {
			return nil, errors.Wrap(err, "pypy index")
		}

		entries = make([]pyvers.Entry, 0, len(recs))
		for _, r := range recs {
			e, err := pyvers.NewEntry(impl, r.PythonVersion, r.Files)
			if err != nil {
				return nil, errors.Wrap(err, "pypy index")
			}
			entries = append(entries, e)
		}

	default:
		var recs []cpythonRelease
		if err := c.getJSON(ctx, c.CPythonURL, &recs); err != nil {
			return nil, errors.Wrap(err, "cpython index")
		}

		entries = make([]pyvers.Entry, 0, len(recs))
		for _, r := range recs {
			e, err := pyvers.NewEntry(impl, r.Version, r.Files)
			if err != nil {
				return nil, errors.Wrap(err, "cpython index")
			}
			entries = append(entries, e)
		}
	}

	c.Log.Debug("fetched release index",
		"implementation", impl.String(), "records", len(entries))

	return entries, nil
}

// getJSON performs one GET request and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return errors.Wrapf(err, "get %s", url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("get %s: unexpected status %s", url, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decode %s", url)
	}

	return nil
}
