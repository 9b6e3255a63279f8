package domain

import (
	"time"

	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

// Valores que desativam os filtros de campanha e tipo
const (
	FilterAll   = "Todas"
	FilterAllEN = "All"
)

// FilterCriteria contém as seleções do usuário para uma consulta.
// É sempre passado por valor; os filtros nunca alteram o conjunto original.
type FilterCriteria struct {
	Campaign     string     `json:"campaign"`
	CampaignType string     `json:"campaign_type"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
}

func isAll(value string) bool {
	return value == "" || value == FilterAll || value == FilterAllEN
}

// CampaignActive indica se o filtro por nome de campanha deve ser aplicado
func (f FilterCriteria) CampaignActive() bool {
	return !isAll(f.Campaign)
}

// TypeActive indica se o filtro por tipo de campanha deve ser aplicado
func (f FilterCriteria) TypeActive() bool {
	return !isAll(f.CampaignType)
}

// DateRangeActive indica se as duas pontas do período foram informadas
func (f FilterCriteria) DateRangeActive() bool {
	return f.StartDate != nil && f.EndDate != nil
}

// DashboardResponse agrupa tudo que o painel exibe para um conjunto de filtros
type DashboardResponse struct {
	Source    string            `json:"source"`
	LoadedAt  *time.Time        `json:"loaded_at,omitempty"`
	LoadError string            `json:"load_error,omitempty"`
	Filters   FilterCriteria    `json:"filters"`
	Options   *FilterOptions    `json:"options"`
	Metrics   *AggregateMetrics `json:"metrics"`
	Charts    *ChartData        `json:"charts"`
	Records   []CampaignRecord  `json:"records"`
	TotalRows int               `json:"total_rows"`
}

// CalculateCTR calcula o CTR percentual a partir dos totais do período
func CalculateCTR(clicks, impressions int64) float64 {
	if impressions <= 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace(float64(clicks) / float64(impressions) * 100)
}
