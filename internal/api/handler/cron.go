package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/campaign-dashboard-api/internal/scheduler"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
)

// Tipos de cron job aceitos em /v1/cron/:type/run
const (
	CronJobTypeDatasets = "datasets"
	CronJobTypeAll      = "all"
)

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	DatasetRefreshService *scheduler.DatasetRefreshService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeDatasets, CronJobTypeAll:
			if services.DatasetRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrServiceDisabled, "Serviço de recarga de fontes não disponível", nil)
				return
			}

			if !services.DatasetRefreshService.TriggerManualSync() {
				writeJSON(w, logger, http.StatusConflict, map[string]any{
					"message": "Recarga de fontes já em andamento",
					"type":    cronType,
				})
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: datasets, all", nil)
			return
		}

		logger.WithField("cron_type", cronType).Info("cron: manual run triggered")

		writeJSON(w, logger, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.DatasetRefreshService != nil {
			status[CronJobTypeDatasets] = services.DatasetRefreshService.GetStatus()
		}

		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, status)
	})
}
