package index

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pyvers "github.com/solaluset/python-version-matrix"
)

const cpythonFeed = `[
	{"version": "3.13.1", "files": [
		{"platform": "linux", "arch": "x64"},
		{"platform": "linux", "arch": "x64-freethreaded"},
		{"platform": "win64", "arch": "x64"}
	]},
	{"version": "3.12.4", "files": [{"platform": "linux", "arch": "x64"}]},
	{"version": "3.12.3", "files": [{"platform": "linux", "arch": "x64"}]},
	{"version": "3.8.18", "files": [{"platform": "linux", "arch": "x64"}]},
	{"version": "3.14.0-rc.1", "files": [{"platform": "linux", "arch": "x64"}]}
]`

const pypyFeed = `[
	{"python_version": "3.10.14", "files": [{"platform": "linux", "arch": "x64"}]},
	{"python_version": "3.10.12", "files": [{"platform": "linux", "arch": "x64"}]},
	{"python_version": "2.7.18", "files": [{"platform": "linux", "arch": "x64"}]}
]`

const eolFeed = `[
	{"cycle": "3.8", "eol": "2024-10-07"},
	{"cycle": "3.9", "eol": "2025-10-05"},
	{"cycle": "3.12", "eol": "2028-10-31"},
	{"cycle": "3.13", "eol": "2029-10-01"}
]`

// newTestClient serves the three canned feeds from one test server and
// points a Client with a frozen clock at it.
func newTestClient(t *testing.T) *Client {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/cpython", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(cpythonFeed))
	})
	mux.HandleFunc("/pypy", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(pypyFeed))
	})
	mux.HandleFunc("/eol", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(eolFeed))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c := NewClient(nil)
	c.HTTP = srv.Client()
	c.CPythonURL = srv.URL + "/cpython"
	c.PyPyURL = srv.URL + "/pypy"
	c.EOLURL = srv.URL + "/eol"
	c.Now = func() time.Time {
		return time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	return c
}

func TestVersions_CPython(t *testing.T) {
	t.Parallel()

	c := newTestClient(t)

	got, err := c.Versions(context.Background(), Query{
		Min:             "3.9",
		Implementations: []string{"cpython"},
	})
	require.NoError(t, err)

	// 3.8.18 below min, 3.14.0-rc.1 is a prerelease, 3.12.3 loses to 3.12.4.
	assert.ElementsMatch(t, []string{"3.13.1", "3.12.4"}, got)
}

func TestVersions_AutoMin(t *testing.T) {
	t.Parallel()

	c := newTestClient(t)

	// 3.8 is already end-of-life on the frozen clock, so auto resolves to
	// 3.9 and drops 3.8.18 exactly like an explicit min would.
	got, err := c.Versions(context.Background(), Query{
		Min:             "auto",
		Implementations: []string{"cpython"},
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"3.13.1", "3.12.4"}, got)
}

func TestAutoMin(t *testing.T) {
	t.Parallel()

	c := newTestClient(t)

	v, err := c.AutoMin(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "3.9", v.String())
}

func TestAutoMin_NoSupportedCycle(t *testing.T) {
	t.Parallel()

	c := newTestClient(t)
	c.Now = func() time.Time {
		return time.Date(2040, time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	_, err := c.AutoMin(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no release cycle")
}

func TestVersions_MaxAndPrereleases(t *testing.T) {
	t.Parallel()

	c := newTestClient(t)

	got, err := c.Versions(context.Background(), Query{
		Min:                "3.9",
		Max:                "3.13",
		IncludePrereleases: true,
		Implementations:    []string{"cpython"},
	})
	require.NoError(t, err)

	// Max is exclusive: 3.13.1 and the 3.14 candidate are both out.
	assert.ElementsMatch(t, []string{"3.12.4"}, got)
}

func TestVersions_Freethreaded(t *testing.T) {
	t.Parallel()

	c := newTestClient(t)

	got, err := c.Versions(context.Background(), Query{
		Min:                 "3.13",
		IncludeFreethreaded: true,
		Implementations:     []string{"cpython"},
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"3.13.1", "3.13.1-freethreaded"}, got)
}

func TestVersions_PlatformFilter(t *testing.T) {
	t.Parallel()

	c := newTestClient(t)

	// Only 3.13.1 ships a windows build in the canned feed. Names arrive in
	// runner-environment casing.
	got, err := c.Versions(context.Background(), Query{
		Min:             "3.9",
		Implementations: []string{"cpython"},
		TargetOS:        "Windows",
		TargetArch:      "X64",
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"3.13.1"}, got)
}

func TestVersions_MultipleImplementations(t *testing.T) {
	t.Parallel()

	c := newTestClient(t)

	got, err := c.Versions(context.Background(), Query{
		Min:             "2.7",
		Implementations: []string{"cpython", "pypy"},
	})
	require.NoError(t, err)

	assert.ElementsMatch(t,
		[]string{"3.13.1", "3.12.4", "3.8.18", "pypy-3.10", "pypy-2.7"}, got)
}

func TestVersions_UnsupportedImplementation(t *testing.T) {
	t.Parallel()

	c := newTestClient(t)

	_, err := c.Versions(context.Background(), Query{
		Min:             "3.9",
		Implementations: []string{"jython"},
	})
	require.ErrorIs(t, err, pyvers.ErrUnsupportedImplementation)
}

func TestVersions_FeedFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(nil)
	c.CPythonURL = srv.URL

	_, err := c.Versions(context.Background(), Query{
		Min:             "3.9",
		Implementations: []string{"cpython"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cpython index")
	assert.Contains(t, err.Error(), "500")
}

func TestVersions_MissingVersionField(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"files": [{"platform": "linux", "arch": "x64"}]}]`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(nil)
	c.CPythonURL = srv.URL

	_, err := c.Versions(context.Background(), Query{
		Min:             "3.9",
		Implementations: []string{"cpython"},
	})
	require.ErrorIs(t, err, pyvers.ErrMissingField)
}
