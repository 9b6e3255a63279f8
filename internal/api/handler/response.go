package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, logger log.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Error("failed to encode response")
	}
}

// writeServiceError traduz os erros do serviço do painel para o envelope de erro da API
func writeServiceError(w http.ResponseWriter, logger log.Logger, err error) {
	switch {
	case errors.Is(err, dashboarding.ErrIncompleteDateRange):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, dashboarding.ErrInvalidDateRange):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, dashboarding.ErrSourceNotAllowed):
		apiErrors.WriteError(w, apiErrors.ErrSourceNotAllowed, err.Error(), nil)
	default:
		logger.WithError(err).Error("unexpected service error")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
	}
}

// loadErrorOf separa a falha de carga, que não interrompe a resposta, dos demais erros
func loadErrorOf(err error) (string, bool) {
	var unavailable *dashboarding.DatasetUnavailableError
	if errors.As(err, &unavailable) {
		return unavailable.Message, true
	}
	return "", false
}
