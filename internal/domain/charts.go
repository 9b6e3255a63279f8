package domain

// Métricas do gráfico comparativo por campanha
const (
	MetricSpend       = "spend"
	MetricImpressions = "impressions"
)

// Tipos de interação do gráfico de engajamento
const (
	InteractionSaves    = "saves"
	InteractionShares   = "shares"
	InteractionComments = "comments"
)

// ChartLabels mapeia as chaves internas para os rótulos exibidos no painel
var ChartLabels = map[string]string{
	MetricSpend:         "Investimento",
	MetricImpressions:   "Impressões",
	InteractionSaves:    "Salvaram",
	InteractionShares:   "Compartilharam",
	InteractionComments: "Comentaram",
}

// CampaignMetricPoint é uma linha no formato longo (campanha, métrica, valor)
type CampaignMetricPoint struct {
	Campaign string  `json:"campaign"`
	Metric   string  `json:"metric"`
	Label    string  `json:"label"`
	Value    float64 `json:"value"`
}

type InteractionTotal struct {
	Interaction string `json:"interaction"`
	Label       string `json:"label"`
	Quantity    int64  `json:"quantity"`
}

// DailySpend é uma fatia do gráfico de investimento por dia de início
type DailySpend struct {
	Date  string  `json:"date"`
	Spend float64 `json:"spend"`
}

type ChartData struct {
	CampaignComparison []CampaignMetricPoint `json:"campaign_comparison"`
	Interactions       []InteractionTotal    `json:"interactions"`
	SpendByDay         []DailySpend          `json:"spend_by_day"`
}
