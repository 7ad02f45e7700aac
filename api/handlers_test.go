package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cbouillon/frrerank/internal/normalize"
	"github.com/cbouillon/frrerank/internal/oracle"
	"github.com/cbouillon/frrerank/internal/rerank"
	"github.com/cbouillon/frrerank/internal/typoutil"
	"github.com/cbouillon/frrerank/model"
)

func setupTestEngine(docs []model.Candidate) (*rerank.Engine, *oracle.FixtureOracle) {
	fixture := oracle.NewFixtureOracle()
	fixture.Seed("places", docs)

	eng := rerank.New(rerank.Deps{
		Oracle:             fixture,
		Normalizer:         normalize.New(),
		EditDistance:       typoutil.NewDamerauLevenshtein(),
		DefaultLimit:       10,
		DefaultMaxDistance: 4,
		CacheCapacity:      100,
		CacheTTL:           time.Hour,
	})
	return eng, fixture
}

func setupTestRouter(eng *rerank.Engine) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router, eng)
	return router
}

func TestSearchHandler(t *testing.T) {
	eng, _ := setupTestEngine([]model.Candidate{
		{"id": "1", "name": "Paris", "name_search": "paris", "name_no_space": "paris", "name_soundex": "P620"},
	})
	router := setupTestRouter(eng)

	tests := []struct {
		name           string
		index          string
		requestBody    interface{}
		expectedStatus int
	}{
		{
			name:           "valid search",
			index:          "places",
			requestBody:    SearchRequest{Query: "paris"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid JSON",
			index:          "places",
			requestBody:    "not an object",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "blank index name",
			index:          " ",
			requestBody:    SearchRequest{Query: "paris"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(tt.requestBody)
			if err != nil {
				t.Fatalf("failed to marshal request body: %v", err)
			}

			req := httptest.NewRequest(http.MethodPost, "/indexes/"+url.PathEscape(tt.index)+"/search", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d (body: %s)", w.Code, tt.expectedStatus, w.Body.String())
			}
		})
	}
}

func TestSearchHandlerReturnsHits(t *testing.T) {
	eng, _ := setupTestEngine([]model.Candidate{
		{"id": "1", "name": "Paris", "name_search": "paris", "name_no_space": "paris", "name_soundex": "P620"},
	})
	router := setupTestRouter(eng)

	body, _ := json.Marshal(SearchRequest{Query: "paris"})
	req := httptest.NewRequest(http.MethodPost, "/indexes/places/search", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}

	var reply model.Reply
	if err := json.Unmarshal(w.Body.Bytes(), &reply); err != nil {
		t.Fatalf("failed to decode reply: %v", err)
	}
	if len(reply.Hits) != 1 {
		t.Errorf("expected one hit, got %d", len(reply.Hits))
	}
}

func TestSynonymsHandlers(t *testing.T) {
	eng, _ := setupTestEngine(nil)
	router := setupTestRouter(eng)

	body, _ := json.Marshal(map[string][]string{"saint": {"st"}})
	req := httptest.NewRequest(http.MethodPut, "/synonyms", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("PUT /synonyms status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/synonyms", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET /synonyms status = %d, want 200", w.Code)
	}

	var classes map[string][]string
	if err := json.Unmarshal(w.Body.Bytes(), &classes); err != nil {
		t.Fatalf("failed to decode synonyms: %v", err)
	}
	if syns, ok := classes["saint"]; !ok || len(syns) != 1 || syns[0] != "st" {
		t.Errorf("GetSynonyms = %v, want saint -> [st]", classes)
	}
}

func TestCacheHandlers(t *testing.T) {
	eng, _ := setupTestEngine([]model.Candidate{
		{"id": "1", "name": "Paris", "name_search": "paris", "name_no_space": "paris", "name_soundex": "P620"},
	})
	router := setupTestRouter(eng)

	body, _ := json.Marshal(SearchRequest{Query: "paris"})
	req := httptest.NewRequest(http.MethodPost, "/indexes/places/search", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("seed search status = %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/cache/stats", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /cache/stats status = %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/cache/clear", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("POST /cache/clear status = %d", w.Code)
	}
}

func TestHealthCheckHandler(t *testing.T) {
	eng, _ := setupTestEngine(nil)
	router := setupTestRouter(eng)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
