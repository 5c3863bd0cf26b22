package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prospecta/leadgen/internal/core"
	"github.com/prospecta/leadgen/internal/core/match"
	"github.com/prospecta/leadgen/internal/core/model"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine, err := core.NewEngine(match.DefaultConfig())
	require.NoError(t, err)

	s := &Server{Engine: engine}
	return s.SetupRouter()
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyzeDuplicatesEndpoint(t *testing.T) {
	r := newTestRouter(t)

	req := AnalyzeRequest{Leads: []model.LeadRecord{
		{ID: "1", FirstName: "Alice", LastName: "Chen", CompanyName: "Initech", LinkedInURL: "https://www.linkedin.com/in/alice-chen/"},
		{ID: "2", FirstName: "Alice", LastName: "Chen", CompanyName: "Initech Inc", LinkedInURL: "http://linkedin.com/in/alice-chen"},
		{ID: "3", FirstName: "Zara", LastName: "Okafor", CompanyName: "Globex"},
	}}

	w := doJSON(t, r, http.MethodPost, "/tools/analyze_duplicates", req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK     bool `json:"ok"`
		Result struct {
			TotalChecked    int `json:"total_checked"`
			ExactDuplicates int `json:"exact_duplicates"`
			UniqueLeads     int `json:"unique_leads"`
			DuplicateGroups []struct {
				LeadIDs   []string `json:"lead_ids"`
				MatchType string   `json:"match_type"`
			} `json:"duplicate_groups"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.OK)
	assert.Equal(t, 3, resp.Result.TotalChecked)
	assert.Equal(t, 1, resp.Result.ExactDuplicates)
	assert.Equal(t, 1, resp.Result.UniqueLeads)
	require.Len(t, resp.Result.DuplicateGroups, 1)
	assert.Equal(t, "linkedin", resp.Result.DuplicateGroups[0].MatchType)
	assert.ElementsMatch(t, []string{"1", "2"}, resp.Result.DuplicateGroups[0].LeadIDs)
}

func TestAnalyzeDuplicatesEmptyBatch(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/tools/analyze_duplicates", AnalyzeRequest{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		OK    bool        `json:"ok"`
		Error *core.Error `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	require.NotNil(t, resp.Error)
	assert.Equal(t, core.CodeInvalidInput, resp.Error.Code)
}

func TestSimilarityEndpoint(t *testing.T) {
	r := newTestRouter(t)

	req := SimilarityRequest{
		Lead1: model.LeadRecord{ID: "1", FirstName: "Jon", LastName: "Smith", CompanyName: "AcmeCorp"},
		Lead2: model.LeadRecord{ID: "2", FirstName: "John", LastName: "Smith", CompanyName: "AcmeCorp"},
	}

	w := doJSON(t, r, http.MethodPost, "/tools/similarity", req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK     bool                   `json:"ok"`
		Result model.SimilarityReport `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.True(t, resp.Result.IsMatch)
	assert.InDelta(t, 0.98, resp.Result.CompositeScore, 0.001)
}

func TestDedupSummaryEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/tools/dedup_summary", model.SummaryRequest{
		TotalChecked:    100,
		ExactDuplicates: 8,
		FuzzyDuplicates: 2,
		UniqueLeads:     85,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK     bool               `json:"ok"`
		Result model.DedupSummary `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, 10, resp.Result.TotalDuplicates)
	assert.Equal(t, core.QualityGood, resp.Result.Quality)
}

func TestMergeApplyWithoutStore(t *testing.T) {
	r := newTestRouter(t)

	req := MergeRequest{
		Leads: []model.LeadRecord{
			{ID: "1", FirstName: "Alice"},
			{ID: "2", FirstName: "Alice", Email: "alice@initech.com"},
		},
		Groups: []model.DuplicateGroup{
			{LeadIDs: []string{"1", "2"}, MatchType: model.MatchTypeEmail, Confidence: 1.0},
		},
		Apply: true,
	}

	w := doJSON(t, r, http.MethodPost, "/tools/merge_duplicates", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLeadsEndpointsWithoutStore(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/leads", SaveLeadsRequest{
		Leads: []model.LeadRecord{{ID: "1"}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/leads", nil)
	got := httptest.NewRecorder()
	r.ServeHTTP(got, req)
	assert.Equal(t, http.StatusBadRequest, got.Code)
}
