package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"apptrack-engine/internal/config"
	"apptrack-engine/internal/domain"
	"apptrack-engine/internal/events"
	"apptrack-engine/internal/openjobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubImporter struct {
	gotURL string
	rec    domain.JobRecord
}

func (s *stubImporter) FromURL(ctx context.Context, url string) domain.JobRecord {
	s.gotURL = url
	return s.rec
}

type stubRefresher struct {
	status    openjobs.Status
	refreshed atomic.Bool
}

func (s *stubRefresher) Refresh(ctx context.Context) error {
	s.refreshed.Store(true)
	return nil
}

func (s *stubRefresher) Status() openjobs.Status { return s.status }

func testMux(t *testing.T, d Deps) *http.ServeMux {
	t.Helper()
	if d.Hub == nil {
		d.Hub = events.NewHub()
	}
	if d.OpenJobs == nil {
		d.OpenJobs = openjobs.NewCache()
	}
	if d.Refresher == nil {
		d.Refresher = &stubRefresher{}
	}
	if d.CfgVal == nil {
		v := &atomic.Value{}
		v.Store(config.Config{})
		d.CfgVal = v
	}
	return NewMux(d)
}

func TestImport_ReturnsRecord(t *testing.T) {
	imp := &stubImporter{rec: domain.JobRecord{
		Role:       "SWE Intern",
		Company:    "Acme",
		SourceURL:  "https://job-board.example/jobs/1",
		Confidence: 90,
	}}
	mux := testMux(t, Deps{Importer: imp})

	req := httptest.NewRequest(http.MethodPost, "/import",
		strings.NewReader(`{"url":"https://job-board.example/jobs/1"}`))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "https://job-board.example/jobs/1", imp.gotURL)

	var rec domain.JobRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rec))
	assert.Equal(t, "Acme", rec.Company)
	assert.Equal(t, 90, rec.Confidence)
}

func TestImport_BadJSONIs400(t *testing.T) {
	mux := testMux(t, Deps{Importer: &stubImporter{}})

	req := httptest.NewRequest(http.MethodPost, "/import", strings.NewReader(`{`))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestImport_GetIs405(t *testing.T) {
	mux := testMux(t, Deps{Importer: &stubImporter{}})

	req := httptest.NewRequest(http.MethodGet, "/import", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

type openJobsResponse struct {
	Jobs  []domain.JobRecord `json:"jobs"`
	Count int                `json:"count"`
}

func TestOpenJobs_ListAll(t *testing.T) {
	cache := openjobs.NewCache()
	cache.Replace([]domain.JobRecord{
		{Company: "Acme", Role: "SWE Intern"},
		{Company: "Globex", Role: "Data Intern"},
	})
	mux := testMux(t, Deps{OpenJobs: cache})

	req := httptest.NewRequest(http.MethodGet, "/open-jobs", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp openJobsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
}

func TestOpenJobs_DaysFilter(t *testing.T) {
	recent := time.Now().UTC().AddDate(0, 0, -3)
	old := time.Now().UTC().AddDate(0, 0, -60)
	cache := openjobs.NewCache()
	cache.Replace([]domain.JobRecord{
		{Company: "Recent", DatePosted: &recent},
		{Company: "Old", DatePosted: &old},
		{Company: "Undated"},
	})
	mux := testMux(t, Deps{OpenJobs: cache})

	req := httptest.NewRequest(http.MethodGet, "/open-jobs?days=30", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp openJobsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "Recent", resp.Jobs[0].Company)
}

func TestOpenJobs_BadDaysIs400(t *testing.T) {
	mux := testMux(t, Deps{})

	for _, q := range []string{"days=-1", "days=abc"} {
		req := httptest.NewRequest(http.MethodGet, "/open-jobs?"+q, nil)
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code, q)
	}
}

func TestOpenJobs_RefreshTriggers(t *testing.T) {
	ref := &stubRefresher{}
	mux := testMux(t, Deps{Refresher: ref})

	req := httptest.NewRequest(http.MethodPost, "/open-jobs/refresh", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["ok"])

	assert.Eventually(t, ref.refreshed.Load, time.Second, 10*time.Millisecond)
}

func TestOpenJobs_RefreshAlreadyRunning(t *testing.T) {
	ref := &stubRefresher{status: openjobs.Status{Running: true}}
	mux := testMux(t, Deps{Refresher: ref})

	req := httptest.NewRequest(http.MethodPost, "/open-jobs/refresh", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["ok"])
	assert.False(t, ref.refreshed.Load())
}

func TestOpenJobs_Status(t *testing.T) {
	ref := &stubRefresher{status: openjobs.Status{LastCount: 42, LastOkAt: "2026-01-01T00:00:00Z"}}
	mux := testMux(t, Deps{Refresher: ref})

	req := httptest.NewRequest(http.MethodGet, "/open-jobs/status", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var st openjobs.Status
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &st))
	assert.Equal(t, 42, st.LastCount)
}

func TestConfig_Get(t *testing.T) {
	var cfg config.Config
	cfg.App.Port = 38471
	cfg.OpenJobs.FeedURL = "https://example.com/README.md"
	v := &atomic.Value{}
	v.Store(cfg)
	mux := testMux(t, Deps{CfgVal: v})

	req := httptest.NewRequest(http.MethodGet, "/config", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got config.Config
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, 38471, got.App.Port)
}

func TestHealth(t *testing.T) {
	mux := testMux(t, Deps{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
