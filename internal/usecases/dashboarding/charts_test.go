package dashboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

func TestCampaignComparison(t *testing.T) {
	records := append(sampleRecords(), record("A", "Alcance", "2024-03-01", 25.5, 250, 1))
	// fora de ordem alfabética na entrada
	records[0], records[2] = records[2], records[0]

	points := CampaignComparison(records)

	assert.Equal(t, []domain.CampaignMetricPoint{
		{Campaign: "A", Metric: domain.MetricSpend, Label: "Investimento", Value: 125.5},
		{Campaign: "A", Metric: domain.MetricImpressions, Label: "Impressões", Value: 1250},
		{Campaign: "B", Metric: domain.MetricSpend, Label: "Investimento", Value: 200},
		{Campaign: "B", Metric: domain.MetricImpressions, Label: "Impressões", Value: 2000},
		{Campaign: "C", Metric: domain.MetricSpend, Label: "Investimento", Value: 50},
		{Campaign: "C", Metric: domain.MetricImpressions, Label: "Impressões", Value: 500},
	}, points)
}

func TestInteractionTotalsKeepsFixedOrder(t *testing.T) {
	totals := InteractionTotals(sampleRecords())

	assert.Equal(t, []domain.InteractionTotal{
		{Interaction: domain.InteractionSaves, Label: "Salvaram", Quantity: 12},
		{Interaction: domain.InteractionShares, Label: "Compartilharam", Quantity: 15},
		{Interaction: domain.InteractionComments, Label: "Comentaram", Quantity: 18},
	}, totals)

	empty := InteractionTotals(nil)
	assert.Len(t, empty, 3)
	for _, total := range empty {
		assert.Zero(t, total.Quantity)
	}
}

func TestSpendByDay(t *testing.T) {
	records := []domain.CampaignRecord{
		record("A", "Alcance", "2024-01-10", 20, 0, 0),
		record("B", "Alcance", "2024-01-05", 10, 0, 0),
		record("C", "Alcance", "2024-01-10", 5.25, 0, 0),
		record("D", "Alcance", "", 99, 0, 0),
	}

	assert.Equal(t, []domain.DailySpend{
		{Date: "2024-01-05", Spend: 10},
		{Date: "2024-01-10", Spend: 25.25},
	}, SpendByDay(records))
}

func TestBuildChartsEmpty(t *testing.T) {
	charts := BuildCharts(nil)

	assert.NotNil(t, charts.CampaignComparison)
	assert.Empty(t, charts.CampaignComparison)
	assert.NotNil(t, charts.SpendByDay)
	assert.Empty(t, charts.SpendByDay)
	assert.Len(t, charts.Interactions, 3)
}
