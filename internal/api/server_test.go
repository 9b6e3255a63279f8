package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/datasource"
	"github.com/vfg2006/campaign-dashboard-api/internal/api/handler"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/metrics"
	"github.com/vfg2006/campaign-dashboard-api/internal/scheduler"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
	"github.com/vfg2006/campaign-dashboard-api/pkg/middleware"
)

const campaignsCSV = `nome_campanha,tipo_campanha,data_inicio,data_fim,impressões,cliques,ctr,investimento,cpc,cpm,salvaram,compartilharam,comentaram
A,Alcance,2024-01-05,2024-01-20,1000,10,1.0,100,10,100,1,2,3
B,Conversão,2024-01-10,2024-02-10,2000,40,2.0,200,5,100,4,5,6
C,Alcance,2024-02-20,2024-02-28,500,5,1.0,50,10,100,7,8,9
`

type testEnv struct {
	handler   http.Handler
	fetches   *int32
	auth      *authenticating.Service
	sourceURL string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log.SetupTestLogger()

	var fetches int32
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&fetches, 1)
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(campaignsCSV))
	}))
	t.Cleanup(origin.Close)

	cfg := &config.Config{
		Server:     config.Server{AllowedOrigins: []string{"*"}},
		DataSource: config.DataSource{DefaultURL: origin.URL + "/campanhas.csv", RequestTimeout: 5 * time.Second},
		Cache:      config.Cache{Backend: config.CacheBackendMemory, TTL: time.Minute},
		Auth:       config.Auth{Secret: "segredo"},
		DatasetRefresh: config.DatasetRefresh{
			CronSchedule:      "*/30 * * * *",
			MaxConcurrentJobs: 1,
		},
	}

	m := metrics.NewMetrics("test")
	service := dashboarding.NewService(cfg, datasource.NewHTTPLoader(cfg.DataSource), cache.NewMemoryCache(cfg.Cache.TTL), m)
	auth := authenticating.NewService(cfg.Auth)
	cronServices := handler.CronJobServices{
		DatasetRefreshService: scheduler.NewDatasetRefreshService(service, cfg),
	}

	return &testEnv{
		handler:   NewHandler(cfg, service, auth, cronServices, m),
		fetches:   &fetches,
		auth:      auth,
		sourceURL: cfg.DataSource.DefaultURL,
	}
}

func (e *testEnv) do(method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestDashboardEndToEnd(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/v1/dashboard?start_date=2024-01-01&end_date=2024-01-31", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	metricsBody := body["metrics"].(map[string]any)
	assert.Equal(t, 300.0, metricsBody["total_spend"])
	assert.Equal(t, 3000.0, metricsBody["total_impressions"])
	assert.Equal(t, 50.0, metricsBody["total_clicks"])
	assert.Equal(t, 1.67, metricsBody["ctr"])
	assert.Equal(t, 3.0, body["total_rows"])
	assert.Len(t, body["records"], 2)

	// segunda consulta vem do cache
	rec = env.do(http.MethodGet, "/v1/dashboard/metrics?campaign=C", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 50.0, decode(t, rec)["metrics"].(map[string]any)["total_spend"])
	assert.Equal(t, int32(1), atomic.LoadInt32(env.fetches))
}

func TestDashboardValidationEndToEnd(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/v1/dashboard?start_date=2024-01-01", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VAL_002", decode(t, rec)["code"])

	rec = env.do(http.MethodGet, "/v1/dashboard?start_date=2024-02-01&end_date=2024-01-01", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VAL_003", decode(t, rec)["code"])

	assert.Zero(t, atomic.LoadInt32(env.fetches))
}

func TestAdminRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/v1/datasets/cache/invalidate", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	supervisor, err := env.auth.GenerateToken("bia", middleware.RoleSupervisor, time.Hour)
	require.NoError(t, err)
	rec = env.do(http.MethodPost, "/v1/datasets/cache/invalidate", supervisor)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(http.MethodGet, "/v1/datasets/loads", supervisor)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0.0, decode(t, rec)["count"])
}

func TestInvalidateCacheForcesReload(t *testing.T) {
	env := newTestEnv(t)
	admin, err := env.auth.GenerateToken("ana", middleware.RoleAdmin, time.Hour)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, env.do(http.MethodGet, "/v1/dashboard/filters", "").Code)
	require.Equal(t, http.StatusOK, env.do(http.MethodPost, "/v1/datasets/cache/invalidate", admin).Code)
	require.Equal(t, http.StatusOK, env.do(http.MethodGet, "/v1/dashboard/records", "").Code)

	assert.Equal(t, int32(2), atomic.LoadInt32(env.fetches))
}

func TestManualRefreshAndStatus(t *testing.T) {
	env := newTestEnv(t)
	admin, err := env.auth.GenerateToken("ana", middleware.RoleAdmin, time.Hour)
	require.NoError(t, err)

	rec := env.do(http.MethodPost, "/v1/cron/datasets/run", admin)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	assert.Eventually(t, func() bool { return atomic.LoadInt32(env.fetches) == 1 }, 2*time.Second, 10*time.Millisecond)

	rec = env.do(http.MethodPost, "/v1/cron/desconhecido/run", admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodGet, "/v1/cron/status", admin)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decode(t, rec), "datasets")
}

func TestHealthcheckAndMetrics(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	env.do(http.MethodGet, "/v1/dashboard", "")

	rec = env.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `test_dashboard_requests_total{view="full"} 1`))
}

func TestUnknownRoute(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/v1/nada", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
