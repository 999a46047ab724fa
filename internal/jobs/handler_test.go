package jobs_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"jobsearch-backend/internal/jobs"
	"jobsearch-backend/internal/match"
	"jobsearch-backend/internal/search"
)

type staticResolver struct {
	profile match.Profile
	err     error
}

func (r *staticResolver) MatchProfileForUser(ctx context.Context, userID string) (match.Profile, error) {
	if r.err != nil {
		return match.Profile{}, r.err
	}
	return r.profile, nil
}

func newTestRouter(t *testing.T, svc *jobs.Service, resolver jobs.ProfileResolver) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	jobs.NewHandler(svc, resolver).RegisterRoutes(api)
	return router
}

func seededService(t *testing.T) (*jobs.Service, jobs.Posting) {
	t.Helper()
	repo := jobs.NewMemoryRepo()
	posting := jobs.Posting{
		ID:             "job-1",
		Title:          "Backend Engineer",
		Company:        "Acme",
		Location:       "Austin, TX",
		Description:    "Build Go services",
		Requirements:   []string{"Go"},
		URL:            "https://example.com/jobs/1",
		Source:         "perplexity",
		Remote:         true,
		EmploymentType: "Full-time",
		CreatedAt:      time.Now().UTC(),
	}
	if err := repo.Create(context.Background(), posting); err != nil {
		t.Fatalf("seed posting: %v", err)
	}
	provider := &search.StaticProvider{Results: []search.Result{{
		Title:   "Platform Engineer",
		Company: "Beta",
		URL:     "https://example.com/jobs/2",
	}}}
	return &jobs.Service{Repo: repo, Provider: provider}, posting
}

func TestSearchEndpoint(t *testing.T) {
	svc, _ := seededService(t)
	router := newTestRouter(t, svc, nil)

	body := []byte(`{"query":"golang"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/search", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.Code, resp.Body.String())
	}
	var out struct {
		Jobs  []jobs.ScoredPosting `json:"jobs"`
		Total int                  `json:"total"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Total != 1 || len(out.Jobs) != 1 {
		t.Fatalf("unexpected payload: %+v", out)
	}
	if out.Jobs[0].MatchScore != nil {
		t.Fatal("expected no score without profile")
	}
}

func TestSearchEndpointInlineProfileScores(t *testing.T) {
	svc, _ := seededService(t)
	router := newTestRouter(t, svc, nil)

	body := []byte(`{
		"query": "golang",
		"userProfile": {
			"professional": {"desiredTitles": ["Platform Engineer"]},
			"skills": [{"name": "Go"}],
			"preferences": {"remoteWork": true}
		}
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/search", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.Code, resp.Body.String())
	}
	var out struct {
		Jobs []jobs.ScoredPosting `json:"jobs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Jobs) != 1 || out.Jobs[0].MatchScore == nil {
		t.Fatalf("expected scored jobs, got %+v", out.Jobs)
	}
}

func TestSearchEndpointMissingQuery(t *testing.T) {
	svc, _ := seededService(t)
	router := newTestRouter(t, svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/search", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
}

func TestGetEndpoint(t *testing.T) {
	svc, posting := seededService(t)
	router := newTestRouter(t, svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/"+posting.ID, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d", resp.Code)
	}

	reqMissing := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/nope", nil)
	respMissing := httptest.NewRecorder()
	router.ServeHTTP(respMissing, reqMissing)
	if respMissing.Code != http.StatusNotFound {
		t.Fatalf("missing status = %d, want 404", respMissing.Code)
	}
}

func TestMatchEndpointRequiresProfile(t *testing.T) {
	svc, posting := seededService(t)
	router := newTestRouter(t, svc, nil)

	body, _ := json.Marshal(map[string]any{"jobId": posting.ID})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/match", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
}

func TestMatchEndpointInlineProfile(t *testing.T) {
	svc, posting := seededService(t)
	router := newTestRouter(t, svc, &staticResolver{})

	body := []byte(`{
		"jobId": "` + posting.ID + `",
		"userProfile": {
			"professional": {"desiredTitles": ["Backend Engineer"]},
			"skills": [{"name": "Go"}],
			"preferences": {"remoteWork": true, "employmentTypes": ["Full-time"]}
		}
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/match", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.Code, resp.Body.String())
	}
	var out struct {
		Job        jobs.Posting `json:"job"`
		MatchScore int          `json:"matchScore"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Job.ID != posting.ID {
		t.Fatalf("job id = %s", out.Job.ID)
	}
	if out.MatchScore <= 0 || out.MatchScore > 100 {
		t.Fatalf("score out of range: %d", out.MatchScore)
	}
}

func TestTrendingEndpoint(t *testing.T) {
	svc, _ := seededService(t)
	router := newTestRouter(t, svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/trending?industry=go", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d", resp.Code)
	}
	var out []jobs.Posting
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("trending = %d, want 1", len(out))
	}
}
