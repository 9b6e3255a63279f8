package dashboarding

import (
	"time"

	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

// Cada filtro é um predicado independente sobre a linha; Filter é a conjunção deles.
// Por isso a ordem de aplicação nunca altera o resultado.

func keep(records []domain.CampaignRecord, match func(domain.CampaignRecord) bool) []domain.CampaignRecord {
	filtered := make([]domain.CampaignRecord, 0, len(records))
	for _, record := range records {
		if match(record) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

func matchesCampaign(record domain.CampaignRecord, criteria domain.FilterCriteria) bool {
	return !criteria.CampaignActive() || record.CampaignName == criteria.Campaign
}

func matchesType(record domain.CampaignRecord, criteria domain.FilterCriteria) bool {
	return !criteria.TypeActive() || record.CampaignType == criteria.CampaignType
}

// matchesDateRange compara a data de início da linha com o período, inclusivo nas duas pontas.
// Linhas sem data de início ficam de fora quando o período está ativo.
func matchesDateRange(record domain.CampaignRecord, criteria domain.FilterCriteria) bool {
	if !criteria.DateRangeActive() {
		return true
	}
	if record.StartDate == nil {
		return false
	}

	day := utils.TruncateToDay(*record.StartDate)
	return !day.Before(utils.TruncateToDay(*criteria.StartDate)) && !day.After(utils.TruncateToDay(*criteria.EndDate))
}

// FilterByCampaign mantém as linhas da campanha selecionada; "Todas" não filtra
func FilterByCampaign(records []domain.CampaignRecord, campaign string) []domain.CampaignRecord {
	criteria := domain.FilterCriteria{Campaign: campaign}
	return keep(records, func(r domain.CampaignRecord) bool { return matchesCampaign(r, criteria) })
}

// FilterByType mantém as linhas do tipo selecionado; "Todas" não filtra
func FilterByType(records []domain.CampaignRecord, campaignType string) []domain.CampaignRecord {
	criteria := domain.FilterCriteria{CampaignType: campaignType}
	return keep(records, func(r domain.CampaignRecord) bool { return matchesType(r, criteria) })
}

// FilterByDateRange mantém as linhas cuja data de início está em [start, end]
func FilterByDateRange(records []domain.CampaignRecord, start, end *time.Time) []domain.CampaignRecord {
	criteria := domain.FilterCriteria{StartDate: start, EndDate: end}
	return keep(records, func(r domain.CampaignRecord) bool { return matchesDateRange(r, criteria) })
}

// Filter aplica todos os filtros ativos e devolve um novo slice; o original não é alterado
func Filter(records []domain.CampaignRecord, criteria domain.FilterCriteria) []domain.CampaignRecord {
	return keep(records, func(r domain.CampaignRecord) bool {
		return matchesCampaign(r, criteria) && matchesType(r, criteria) && matchesDateRange(r, criteria)
	})
}
