package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-dashboard-api/internal/metrics"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/campaign-dashboard-api/pkg/middleware"
)

type Middlewares []func(http.Handler) http.Handler

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(m *metrics.Metrics) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: m.Handler(),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder, m *metrics.Metrics) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service, m),
		},
		{
			Path:    "/v1/dashboard/metrics",
			Method:  http.MethodGet,
			Handler: GetDashboardMetrics(service, m),
		},
		{
			Path:    "/v1/dashboard/charts",
			Method:  http.MethodGet,
			Handler: GetDashboardCharts(service, m),
		},
		{
			Path:    "/v1/dashboard/records",
			Method:  http.MethodGet,
			Handler: GetDashboardRecords(service, m),
		},
		{
			Path:    "/v1/dashboard/filters",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(service, m),
		},
	}
}

func Datasets(service dashboarding.Dashboarder, validator middleware.TokenValidator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/datasets/loads",
			Method:      http.MethodGet,
			Handler:     ListLoadRuns(service),
			Middlewares: Middlewares{middleware.AuthMiddleware(validator), middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/datasets/cache/invalidate",
			Method:      http.MethodPost,
			Handler:     InvalidateCache(service),
			Middlewares: Middlewares{middleware.AuthMiddleware(validator), middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices, validator middleware.TokenValidator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: Middlewares{middleware.AuthMiddleware(validator), middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: Middlewares{middleware.AuthMiddleware(validator), middleware.AdminOrSupervisor()},
		},
	}
}
