package dashboarding

import (
	"time"

	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

// BuildFilterOptions lista campanhas e tipos distintos na ordem em que aparecem,
// precedidos de "Todas", e o período coberto pela planilha
func BuildFilterOptions(records []domain.CampaignRecord) *domain.FilterOptions {
	options := &domain.FilterOptions{
		Campaigns:     []string{domain.FilterAll},
		CampaignTypes: []string{domain.FilterAll},
	}

	seenCampaigns := make(map[string]bool)
	seenTypes := make(map[string]bool)

	var minStart, maxStart, maxEnd *time.Time
	for i := range records {
		record := records[i]

		if record.CampaignName != "" && !seenCampaigns[record.CampaignName] {
			seenCampaigns[record.CampaignName] = true
			options.Campaigns = append(options.Campaigns, record.CampaignName)
		}
		if record.CampaignType != "" && !seenTypes[record.CampaignType] {
			seenTypes[record.CampaignType] = true
			options.CampaignTypes = append(options.CampaignTypes, record.CampaignType)
		}

		if record.StartDate != nil {
			if minStart == nil || record.StartDate.Before(*minStart) {
				minStart = record.StartDate
			}
			if maxStart == nil || record.StartDate.After(*maxStart) {
				maxStart = record.StartDate
			}
		}
		if record.EndDate != nil && (maxEnd == nil || record.EndDate.After(*maxEnd)) {
			maxEnd = record.EndDate
		}
	}

	if maxEnd == nil {
		maxEnd = maxStart
	}

	options.MinDate = formatDate(minStart)
	options.MaxDate = formatDate(maxEnd)

	return options
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}
