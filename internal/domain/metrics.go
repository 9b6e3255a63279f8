package domain

// AggregateMetrics são os indicadores calculados sobre o conjunto filtrado.
// Não são persistidos: cada consulta recalcula a partir dos registros.
type AggregateMetrics struct {
	TotalImpressions int64   `json:"total_impressions"`
	TotalClicks      int64   `json:"total_clicks"`
	CTR              float64 `json:"ctr"`
	TotalSpend       float64 `json:"total_spend"`
	AvgCPC           float64 `json:"avg_cpc"`
	AvgCPM           float64 `json:"avg_cpm"`
	Saves            int64   `json:"saves"`
	Shares           int64   `json:"shares"`
	Comments         int64   `json:"comments"`
}

// FilterOptions lista os valores disponíveis para os controles do painel
type FilterOptions struct {
	Campaigns     []string `json:"campaigns"`
	CampaignTypes []string `json:"campaign_types"`
	MinDate       *string  `json:"min_date"`
	MaxDate       *string  `json:"max_date"`
}
