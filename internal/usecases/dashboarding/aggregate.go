package dashboarding

import (
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

// Aggregate calcula os indicadores do painel.
// Somas são simples; CPC e CPM são médias por linha; CTR vem dos totais de cliques e impressões.
// Um conjunto vazio resulta em todos os indicadores zerados.
func Aggregate(records []domain.CampaignRecord) *domain.AggregateMetrics {
	metrics := &domain.AggregateMetrics{}

	var spend, cpcSum, cpmSum float64
	for _, record := range records {
		metrics.TotalImpressions += record.Impressions
		metrics.TotalClicks += record.Clicks
		metrics.Saves += record.Saves
		metrics.Shares += record.Shares
		metrics.Comments += record.Comments

		spend += record.Spend
		cpcSum += record.CPC
		cpmSum += record.CPM
	}

	metrics.TotalSpend = utils.RoundWithTwoDecimalPlace(spend)
	metrics.CTR = domain.CalculateCTR(metrics.TotalClicks, metrics.TotalImpressions)

	if n := float64(len(records)); n > 0 {
		metrics.AvgCPC = utils.RoundWithTwoDecimalPlace(cpcSum / n)
		metrics.AvgCPM = utils.RoundWithTwoDecimalPlace(cpmSum / n)
	}

	return metrics
}
