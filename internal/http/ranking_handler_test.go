package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"psy-match/internal/domain"
	"psy-match/internal/metrics"
	"psy-match/internal/ranking"
	"psy-match/internal/service"
)

type mockClientRepo struct {
	clients map[string]domain.Client
}

func (m *mockClientRepo) GetByUserID(_ context.Context, userID string) (domain.Client, error) {
	c, ok := m.clients[userID]
	if !ok {
		return domain.Client{}, pgx.ErrNoRows
	}
	return c, nil
}

type mockSpecialistRepo struct {
	specialists []domain.Specialist
	err         error
}

func (m *mockSpecialistRepo) ListActive(_ context.Context) ([]domain.Specialist, error) {
	return m.specialists, m.err
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

func seedSpecialists() []domain.Specialist {
	return []domain.Specialist{
		{ID: "anna", FirstName: "Anna", Specializations: []string{"Anxiety"}, Price: 800, Online: true, Offline: true, Gender: "Female", Language: "Ukrainian", IsActive: true},
		{ID: "petro", FirstName: "Petro", Specializations: []string{"Relationships"}, Price: 1200, Offline: true, Gender: "Male", Language: "Ukrainian", IsActive: true},
	}
}

func seedClients() *mockClientRepo {
	return &mockClientRepo{clients: map[string]domain.Client{
		"u1": {
			UserID:            "u1",
			Budget:            1000,
			Issues:            []string{"Anxiety"},
			PreferredLanguage: "Ukrainian",
			PreferredGender:   "Female",
			PreferOnline:      true,
		},
	}}
}

type testServer struct {
	router   *gin.Engine
	registry *prometheus.Registry
}

func setupRouter(t *testing.T, specialists *mockSpecialistRepo, db Pinger) testServer {
	t.Helper()
	return setupRouterWithLimiter(t, specialists, db, nil)
}

func setupRouterWithLimiter(t *testing.T, specialists *mockSpecialistRepo, db Pinger, limiter service.RateLimiter) testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics()
	if err := m.Register(reg); err != nil {
		t.Fatalf("register metrics: %v", err)
	}

	logger := zap.NewNop()
	svc := service.NewRankingService(logger, seedClients(), specialists, ranking.DefaultWeights(), nil, m)
	r := NewRouter(
		logger,
		m,
		reg,
		limiter,
		NewHealthHandler(logger, db),
		NewRankingHandler(logger, svc),
		NewHelpHandler(ranking.DefaultWeights()),
	)
	return testServer{router: r, registry: reg}
}

func performRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeMatches(t *testing.T, rec *httptest.ResponseRecorder) []domain.SpecialistMatch {
	t.Helper()
	var matches []domain.SpecialistMatch
	if err := json.Unmarshal(rec.Body.Bytes(), &matches); err != nil {
		t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
	}
	return matches
}

func TestRankingHandlerClientRecommendations(t *testing.T) {
	srv := setupRouter(t, &mockSpecialistRepo{specialists: seedSpecialists()}, nil)

	rec := performRequest(srv.router, http.MethodGet, "/clients/u1/recommendations", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	matches := decodeMatches(t, rec)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].ID != "anna" || matches[0].TopsisRank != 1 || matches[0].TopsisScore <= 0.7 {
		t.Fatalf("unexpected top match: %+v", matches[0])
	}
	if matches[1].ID != "petro" || matches[1].TopsisScore >= matches[0].TopsisScore {
		t.Fatalf("unexpected second match: %+v", matches[1])
	}
	if rec.Header().Get(requestIDHeader) == "" {
		t.Fatalf("expected request id header")
	}
}

func TestRankingHandlerClientRecommendations_NotFound(t *testing.T) {
	srv := setupRouter(t, &mockSpecialistRepo{specialists: seedSpecialists()}, nil)

	rec := performRequest(srv.router, http.MethodGet, "/clients/missing/recommendations", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestRankingHandlerClientRecommendations_RepositoryFailure(t *testing.T) {
	srv := setupRouter(t, &mockSpecialistRepo{err: errors.New("db down")}, nil)

	rec := performRequest(srv.router, http.MethodGet, "/clients/u1/recommendations", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "db down") {
		t.Fatalf("internal error leaked to client: %s", rec.Body.String())
	}
}

func TestRankingHandlerRecommendations(t *testing.T) {
	cases := []struct {
		name       string
		body       any
		wantStatus int
		wantFirst  string
	}{
		{
			name: "lista de problemas",
			body: map[string]any{
				"budget":             1000,
				"issues":             []string{"Anxiety"},
				"preferred_language": "Ukrainian",
				"prefer_online":      true,
			},
			wantStatus: http.StatusOK,
			wantFirst:  "anna",
		},
		{
			name:       "campo legacy issue",
			body:       map[string]any{"budget": 2000, "issue": "relationships, family"},
			wantStatus: http.StatusOK,
			wantFirst:  "petro",
		},
		{
			name: "pesos por peticion",
			body: map[string]any{
				"budget":  2000,
				"issues":  []string{"Relationships"},
				"weights": map[string]float64{"category": 0, "price": 1},
			},
			wantStatus: http.StatusOK,
			wantFirst:  "anna",
		},
		{
			name:       "presupuesto negativo",
			body:       map[string]any{"budget": -5},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "criterio desconocido",
			body:       map[string]any{"budget": 100, "weights": map[string]float64{"rating": 1}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "json invalido",
			body:       "not an object",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := setupRouter(t, &mockSpecialistRepo{specialists: seedSpecialists()}, nil)
			rec := performRequest(srv.router, http.MethodPost, "/recommendations", tc.body)
			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d (%s)", tc.wantStatus, rec.Code, rec.Body.String())
			}
			if tc.wantFirst == "" {
				return
			}
			matches := decodeMatches(t, rec)
			if len(matches) == 0 || matches[0].ID != tc.wantFirst {
				t.Fatalf("expected %s first, got %+v", tc.wantFirst, matches)
			}
		})
	}
}

func TestRankingHandlerRecommendations_EmptyPool(t *testing.T) {
	srv := setupRouter(t, &mockSpecialistRepo{}, nil)

	rec := performRequest(srv.router, http.MethodPost, "/recommendations", map[string]any{"budget": 1000})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty JSON array, got %s", body)
	}
}

func TestHealth(t *testing.T) {
	srv := setupRouter(t, &mockSpecialistRepo{}, &mockPinger{})
	if rec := performRequest(srv.router, http.MethodGet, "/health", nil); rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	srv = setupRouter(t, &mockSpecialistRepo{}, &mockPinger{err: errors.New("down")})
	if rec := performRequest(srv.router, http.MethodGet, "/health", nil); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := setupRouter(t, &mockSpecialistRepo{specialists: seedSpecialists()}, nil)
	performRequest(srv.router, http.MethodGet, "/clients/u1/recommendations", nil)

	rec := performRequest(srv.router, http.MethodGet, "/metrics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, name := range []string{metrics.MetricRankingsTotal, metrics.MetricHTTPRequestsTotal} {
		if !strings.Contains(body, name) {
			t.Fatalf("expected %s in metrics output", name)
		}
	}
	if !strings.Contains(body, `path="/clients/:userId/recommendations"`) {
		t.Fatalf("expected route template as path label")
	}
}

func TestRecommendations_RateLimited(t *testing.T) {
	limiter := service.NewMemoryRateLimiter(time.Minute, 1)
	srv := setupRouterWithLimiter(t, &mockSpecialistRepo{specialists: seedSpecialists()}, nil, limiter)

	if rec := performRequest(srv.router, http.MethodPost, "/recommendations", map[string]any{"budget": 1000}); rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if rec := performRequest(srv.router, http.MethodPost, "/recommendations", map[string]any{"budget": 1000}); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", rec.Code)
	}
	// El ranking por cliente no esta limitado.
	if rec := performRequest(srv.router, http.MethodGet, "/clients/u1/recommendations", nil); rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}
