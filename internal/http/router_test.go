package http

import (
	nethttp "net/http"
	"testing"

	"github.com/preston-bernstein/soccer-prophet/internal/app/datasets"
	"github.com/preston-bernstein/soccer-prophet/internal/catalog"
	"github.com/preston-bernstein/soccer-prophet/internal/domain"
	"github.com/preston-bernstein/soccer-prophet/internal/http/handlers"
	"github.com/preston-bernstein/soccer-prophet/internal/testutil"
)

func newTestRouter(t *testing.T, dir string) nethttp.Handler {
	t.Helper()
	svc := datasets.NewService(catalog.NewFSStore(dir), nil, nil)
	h, err := handlers.NewHandler(svc, nil)
	if err != nil {
		t.Fatalf("failed to build handler: %v", err)
	}
	return NewRouter(h)
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter(t, testutil.WriteSampleDataset(t))

	cases := map[string]int{
		"/":              nethttp.StatusOK,
		"/health":        nethttp.StatusOK,
		"/ready":         nethttp.StatusOK,
		"/api/matches":   nethttp.StatusOK,
		"/api/leagues":   nethttp.StatusOK,
		"/api/standings": nethttp.StatusOK,
		"/api/players":   nethttp.StatusOK,
	}

	for path, expected := range cases {
		rr := testutil.Serve(router, nethttp.MethodGet, path, nil)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := newTestRouter(t, t.TempDir())

	for _, path := range []string{"/does-not-exist", "/api/teams", "/api/matches/1"} {
		rr := testutil.Serve(router, nethttp.MethodGet, path, nil)
		testutil.AssertStatus(t, rr, nethttp.StatusNotFound)
		var body map[string]string
		testutil.DecodeJSON(t, rr, &body)
		if body["error"] != "not found" {
			t.Fatalf("expected not found body for %s, got %+v", path, body)
		}
	}
}

func TestRouterRejectsWrongMethod(t *testing.T) {
	router := newTestRouter(t, testutil.WriteSampleDataset(t))

	for _, res := range domain.Resources {
		rr := testutil.Serve(router, nethttp.MethodPost, res.Path(), nil)
		testutil.AssertStatus(t, rr, nethttp.StatusMethodNotAllowed)
	}
}

func TestRouterIsolatesBrokenResource(t *testing.T) {
	dir := testutil.WriteSampleDataset(t)
	testutil.CorruptDocument(t, dir, domain.ResourceStandings)
	router := newTestRouter(t, dir)

	for _, res := range domain.Resources {
		rr := testutil.Serve(router, nethttp.MethodGet, res.Path(), nil)
		if res == domain.ResourceStandings {
			testutil.AssertStatus(t, rr, nethttp.StatusInternalServerError)
			var body map[string]string
			testutil.DecodeJSON(t, rr, &body)
			if body["error"] != "Failed to load standings data" {
				t.Fatalf("unexpected error body %+v", body)
			}
			continue
		}
		testutil.AssertStatus(t, rr, nethttp.StatusOK)
		testutil.AssertJSONEqual(t, testutil.ReadDocument(t, dir, res), rr.Body.Bytes())
	}
}
