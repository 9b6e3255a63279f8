package dashboarding

import (
	"time"

	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

func day(s string) *time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func record(name, campaignType, start string, spend float64, impressions, clicks int64) domain.CampaignRecord {
	r := domain.CampaignRecord{
		CampaignName: name,
		CampaignType: campaignType,
		Impressions:  impressions,
		Clicks:       clicks,
		Spend:        spend,
	}
	if start != "" {
		r.StartDate = day(start)
	}
	return r
}

// Três campanhas, duas em janeiro e uma em fevereiro
func sampleRecords() []domain.CampaignRecord {
	a := record("A", "Alcance", "2024-01-05", 100, 1000, 10)
	a.EndDate = day("2024-01-20")
	a.CPC, a.CPM = 10, 100
	a.Saves, a.Shares, a.Comments = 1, 2, 3

	b := record("B", "Conversão", "2024-01-10", 200, 2000, 40)
	b.EndDate = day("2024-02-10")
	b.CPC, b.CPM = 5, 100
	b.Saves, b.Shares, b.Comments = 4, 5, 6

	c := record("C", "Alcance", "2024-02-20", 50, 500, 5)
	c.CPC, c.CPM = 10, 100
	c.Saves, c.Shares, c.Comments = 7, 8, 9

	return []domain.CampaignRecord{a, b, c}
}
