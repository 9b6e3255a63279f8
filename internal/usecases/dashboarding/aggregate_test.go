package dashboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

func TestAggregateEmpty(t *testing.T) {
	assert.Equal(t, &domain.AggregateMetrics{}, Aggregate(nil))
	assert.Equal(t, &domain.AggregateMetrics{}, Aggregate([]domain.CampaignRecord{}))
}

func TestAggregateSumsAndAverages(t *testing.T) {
	metrics := Aggregate(sampleRecords())

	assert.Equal(t, int64(3500), metrics.TotalImpressions)
	assert.Equal(t, int64(55), metrics.TotalClicks)
	assert.Equal(t, 350.0, metrics.TotalSpend)
	assert.Equal(t, 1.57, metrics.CTR)
	assert.Equal(t, 8.33, metrics.AvgCPC)
	assert.Equal(t, 100.0, metrics.AvgCPM)
	assert.Equal(t, int64(12), metrics.Saves)
	assert.Equal(t, int64(15), metrics.Shares)
	assert.Equal(t, int64(18), metrics.Comments)
}

func TestAggregateCTRWithoutImpressions(t *testing.T) {
	records := []domain.CampaignRecord{
		record("A", "Alcance", "2024-01-01", 10, 0, 5),
		record("B", "Alcance", "2024-01-02", 10, 0, 3),
	}

	metrics := Aggregate(records)
	assert.Equal(t, int64(8), metrics.TotalClicks)
	assert.Zero(t, metrics.CTR)
}

func TestAggregateRoundsSpend(t *testing.T) {
	records := []domain.CampaignRecord{
		record("A", "Alcance", "", 0.1, 0, 0),
		record("A", "Alcance", "", 0.2, 0, 0),
	}

	assert.Equal(t, 0.3, Aggregate(records).TotalSpend)
}
