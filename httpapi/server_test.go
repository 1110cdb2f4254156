package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/classmix/regroup/planner"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	return NewServer(planner.New())
}

func postJSON(t *testing.T, s *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	return rec
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_CreatePlan(t *testing.T) {
	t.Run("generates a schedule", func(t *testing.T) {
		s := newTestServer(t)

		rec := postJSON(t, s, "/api/v1/plans", PlanRequest{
			ItemCount: 8,
			GroupSize: 2,
			Rounds:    3,
			Labels:    "Ada\nBen\nCleo\nDev\nEli\nFay\nGus\nHana",
			Seed:      7,
		})

		require.Equal(t, http.StatusOK, rec.Code)

		var resp PlanResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		require.Equal(t, []int{2, 2, 2, 2}, resp.GroupSizes)
		require.Len(t, resp.Rounds, 3)
		require.Equal(t, 1, resp.Rounds[0].Round)
		require.Len(t, resp.Rounds[0].Groups, 4)
		require.Positive(t, resp.Stats.TotalUniquePairs)
	})

	t.Run("invalid config returns 400 with the core's message", func(t *testing.T) {
		s := newTestServer(t)

		rec := postJSON(t, s, "/api/v1/plans", PlanRequest{
			ItemCount: 1,
			GroupSize: 2,
			Rounds:    1,
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "need at least 2 items")
	})

	t.Run("label mismatch names both counts", func(t *testing.T) {
		s := newTestServer(t)

		rec := postJSON(t, s, "/api/v1/plans", PlanRequest{
			ItemCount: 4,
			GroupSize: 2,
			Rounds:    1,
			Labels:    "Ada\nBen\nCleo",
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "3")
		require.Contains(t, rec.Body.String(), "4")
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		s := newTestServer(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/plans", bytes.NewBufferString("{"))
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("repeated request returns the cached plan", func(t *testing.T) {
		s := newTestServer(t)
		body := PlanRequest{ItemCount: 8, GroupSize: 2, Rounds: 3, Seed: 0}

		first := postJSON(t, s, "/api/v1/plans", body)
		second := postJSON(t, s, "/api/v1/plans", body)

		require.Equal(t, http.StatusOK, first.Code)
		require.Equal(t, http.StatusOK, second.Code)
		require.JSONEq(t, first.Body.String(), second.Body.String())
	})
}

func TestServer_PreviewSizes(t *testing.T) {
	t.Run("returns descending sizes", func(t *testing.T) {
		s := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/plans/preview?itemCount=7&groupSize=3", nil)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"groupSizes": [4, 3]}`, rec.Body.String())
	})

	t.Run("non-integer params return 400", func(t *testing.T) {
		s := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/plans/preview?itemCount=x&groupSize=3", nil)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid shape returns 400", func(t *testing.T) {
		s := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/plans/preview?itemCount=4&groupSize=9", nil)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "group size cannot exceed item count")
	})
}

func TestServer_ExportPlan(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s, "/api/v1/plans/export", PlanRequest{
		ItemCount: 6,
		GroupSize: 3,
		Rounds:    2,
		Seed:      5,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Disposition"), "schedule.xlsx")
	require.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))

	// The body must be a complete workbook, not a truncated stream.
	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	require.Contains(t, f.GetSheetList(), "Assignments")
}
