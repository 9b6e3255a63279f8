package dashboarding

import (
	"sort"
	"time"

	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

type campaignTotals struct {
	spend       float64
	impressions int64
}

// CampaignComparison agrupa por campanha e devolve o formato longo
// (campanha, métrica, valor) usado no gráfico de barras agrupadas
func CampaignComparison(records []domain.CampaignRecord) []domain.CampaignMetricPoint {
	totals := make(map[string]*campaignTotals)
	for _, record := range records {
		t, ok := totals[record.CampaignName]
		if !ok {
			t = &campaignTotals{}
			totals[record.CampaignName] = t
		}
		t.spend += record.Spend
		t.impressions += record.Impressions
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	points := make([]domain.CampaignMetricPoint, 0, len(names)*2)
	for _, name := range names {
		points = append(points,
			domain.CampaignMetricPoint{
				Campaign: name,
				Metric:   domain.MetricSpend,
				Label:    domain.ChartLabels[domain.MetricSpend],
				Value:    utils.RoundWithTwoDecimalPlace(totals[name].spend),
			},
			domain.CampaignMetricPoint{
				Campaign: name,
				Metric:   domain.MetricImpressions,
				Label:    domain.ChartLabels[domain.MetricImpressions],
				Value:    float64(totals[name].impressions),
			},
		)
	}

	return points
}

// InteractionTotals soma salvamentos, compartilhamentos e comentários, sempre nessa ordem
func InteractionTotals(records []domain.CampaignRecord) []domain.InteractionTotal {
	var saves, shares, comments int64
	for _, record := range records {
		saves += record.Saves
		shares += record.Shares
		comments += record.Comments
	}

	return []domain.InteractionTotal{
		{Interaction: domain.InteractionSaves, Label: domain.ChartLabels[domain.InteractionSaves], Quantity: saves},
		{Interaction: domain.InteractionShares, Label: domain.ChartLabels[domain.InteractionShares], Quantity: shares},
		{Interaction: domain.InteractionComments, Label: domain.ChartLabels[domain.InteractionComments], Quantity: comments},
	}
}

// SpendByDay soma o investimento por data de início, em ordem cronológica.
// Linhas sem data de início não entram no gráfico.
func SpendByDay(records []domain.CampaignRecord) []domain.DailySpend {
	totals := make(map[string]float64)
	for _, record := range records {
		if record.StartDate == nil {
			continue
		}
		totals[record.StartDate.Format(time.DateOnly)] += record.Spend
	}

	days := make([]string, 0, len(totals))
	for day := range totals {
		days = append(days, day)
	}
	sort.Strings(days)

	spend := make([]domain.DailySpend, 0, len(days))
	for _, day := range days {
		spend = append(spend, domain.DailySpend{
			Date:  day,
			Spend: utils.RoundWithTwoDecimalPlace(totals[day]),
		})
	}

	return spend
}

func BuildCharts(records []domain.CampaignRecord) *domain.ChartData {
	return &domain.ChartData{
		CampaignComparison: CampaignComparison(records),
		Interactions:       InteractionTotals(records),
		SpendByDay:         SpendByDay(records),
	}
}
