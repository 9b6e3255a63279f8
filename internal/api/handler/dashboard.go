package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/metrics"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

// Visões do painel, também usadas como rótulo de métrica
const (
	viewFull    = "full"
	viewMetrics = "metrics"
	viewCharts  = "charts"
	viewRecords = "records"
	viewFilters = "filters"
)

type MetricsView struct {
	Source    string                   `json:"source"`
	LoadedAt  *time.Time               `json:"loaded_at,omitempty"`
	LoadError string                   `json:"load_error,omitempty"`
	Filters   domain.FilterCriteria    `json:"filters"`
	Metrics   *domain.AggregateMetrics `json:"metrics"`
}

type ChartsView struct {
	Source    string                `json:"source"`
	LoadedAt  *time.Time            `json:"loaded_at,omitempty"`
	LoadError string                `json:"load_error,omitempty"`
	Filters   domain.FilterCriteria `json:"filters"`
	Charts    *domain.ChartData     `json:"charts"`
}

type RecordsView struct {
	Source    string                  `json:"source"`
	LoadError string                  `json:"load_error,omitempty"`
	Filters   domain.FilterCriteria   `json:"filters"`
	Records   []domain.CampaignRecord `json:"records"`
	Count     int                     `json:"count"`
}

type FiltersView struct {
	Source    string                `json:"source"`
	LoadError string                `json:"load_error,omitempty"`
	Options   *domain.FilterOptions `json:"options"`
}

// parseCriteria lê source, campaign, type, start_date e end_date da query string.
// Retorna false quando já respondeu com erro.
func parseCriteria(w http.ResponseWriter, r *http.Request, logger log.Logger) (string, domain.FilterCriteria, bool) {
	query := r.URL.Query()

	startDate, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		logger.WithFields(log.Fields{
			"start_date": query.Get("start_date"),
			"error":      err.Error(),
		}).Warn("dashboard: invalid start_date parameter")

		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date deve estar no formato AAAA-MM-DD", nil)
		return "", domain.FilterCriteria{}, false
	}

	endDate, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		logger.WithFields(log.Fields{
			"end_date": query.Get("end_date"),
			"error":    err.Error(),
		}).Warn("dashboard: invalid end_date parameter")

		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date deve estar no formato AAAA-MM-DD", nil)
		return "", domain.FilterCriteria{}, false
	}

	criteria := domain.FilterCriteria{
		Campaign:     strings.TrimSpace(query.Get("campaign")),
		CampaignType: strings.TrimSpace(query.Get("type")),
		StartDate:    startDate,
		EndDate:      endDate,
	}

	return strings.TrimSpace(query.Get("source")), criteria, true
}

func dashboardResponse(service dashboarding.Dashboarder, w http.ResponseWriter, r *http.Request, logger log.Logger) (*domain.DashboardResponse, bool) {
	source, criteria, ok := parseCriteria(w, r, logger)
	if !ok {
		return nil, false
	}

	response, err := service.GetDashboard(r.Context(), source, criteria)
	if err != nil {
		logger.WithField("source", source).WithError(err).Warn("dashboard: request rejected")
		writeServiceError(w, logger, err)
		return nil, false
	}

	if response.LoadError != "" {
		logger.WithField("source", response.Source).Warn("dashboard: responding with empty dataset")
	}

	return response, true
}

// GetDashboard devolve indicadores, gráficos, linhas filtradas e opções de filtro
func GetDashboard(service dashboarding.Dashboarder, m *metrics.Metrics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		m.ObserveDashboard(viewFull)

		response, ok := dashboardResponse(service, w, r, logger)
		if !ok {
			return
		}

		logger.WithFields(log.Fields{
			"source": response.Source,
			"rows":   len(response.Records),
		}).Debug("dashboard: response ready")

		writeJSON(w, logger, http.StatusOK, response)
	})
}

func GetDashboardMetrics(service dashboarding.Dashboarder, m *metrics.Metrics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		m.ObserveDashboard(viewMetrics)

		response, ok := dashboardResponse(service, w, r, logger)
		if !ok {
			return
		}

		writeJSON(w, logger, http.StatusOK, MetricsView{
			Source:    response.Source,
			LoadedAt:  response.LoadedAt,
			LoadError: response.LoadError,
			Filters:   response.Filters,
			Metrics:   response.Metrics,
		})
	})
}

func GetDashboardCharts(service dashboarding.Dashboarder, m *metrics.Metrics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		m.ObserveDashboard(viewCharts)

		response, ok := dashboardResponse(service, w, r, logger)
		if !ok {
			return
		}

		writeJSON(w, logger, http.StatusOK, ChartsView{
			Source:    response.Source,
			LoadedAt:  response.LoadedAt,
			LoadError: response.LoadError,
			Filters:   response.Filters,
			Charts:    response.Charts,
		})
	})
}

// GetDashboardRecords devolve a tabela filtrada
func GetDashboardRecords(service dashboarding.Dashboarder, m *metrics.Metrics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		m.ObserveDashboard(viewRecords)

		requested, criteria, ok := parseCriteria(w, r, logger)
		if !ok {
			return
		}

		source, err := service.ResolveSource(requested)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		records, err := service.GetRecords(r.Context(), source, criteria)
		loadError, degraded := loadErrorOf(err)
		if err != nil && !degraded {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, RecordsView{
			Source:    source,
			LoadError: loadError,
			Filters:   criteria,
			Records:   records,
			Count:     len(records),
		})
	})
}

// GetFilterOptions devolve campanhas, tipos e período disponíveis na fonte
func GetFilterOptions(service dashboarding.Dashboarder, m *metrics.Metrics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		m.ObserveDashboard(viewFilters)

		source, err := service.ResolveSource(strings.TrimSpace(r.URL.Query().Get("source")))
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		options, err := service.GetFilterOptions(r.Context(), source)
		loadError, degraded := loadErrorOf(err)
		if err != nil && !degraded {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, FiltersView{
			Source:    source,
			LoadError: loadError,
			Options:   options,
		})
	})
}
