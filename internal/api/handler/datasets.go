package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
)

// ListLoadRuns lista o histórico de cargas, opcionalmente filtrado por fonte
func ListLoadRuns(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		query := r.URL.Query()

		limit := 0
		if raw := strings.TrimSpace(query.Get("limit")); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "limit deve ser um inteiro positivo", nil)
				return
			}
			limit = parsed
		}

		runs, err := service.ListLoadRuns(strings.TrimSpace(query.Get("source")), limit)
		if err != nil {
			logger.WithError(err).Error("datasets: failed to list load runs")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar histórico de cargas", nil)
			return
		}

		writeJSON(w, logger, http.StatusOK, map[string]any{
			"loads": runs,
			"count": len(runs),
		})
	})
}

// InvalidateCache descarta o dataset em cache da fonte; a próxima consulta recarrega da origem
func InvalidateCache(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		source, err := service.ResolveSource(strings.TrimSpace(r.URL.Query().Get("source")))
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		if err := service.InvalidateCache(r.Context(), source); err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, map[string]any{
			"message": "Cache invalidado com sucesso",
			"source":  source,
		})
	})
}
