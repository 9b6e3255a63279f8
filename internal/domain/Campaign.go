package domain

import "time"

// Formatos de planilha suportados pelo carregador
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// CampaignRecord representa uma linha da planilha de campanhas.
// Nome e tipo não são únicos: cada linha é uma veiculação separada.
type CampaignRecord struct {
	CampaignName string     `json:"campaign_name"`
	CampaignType string     `json:"campaign_type"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	Impressions  int64      `json:"impressions"`
	Clicks       int64      `json:"clicks"`
	CTR          float64    `json:"ctr"`
	Spend        float64    `json:"spend"`
	CPC          float64    `json:"cpc"`
	CPM          float64    `json:"cpm"`
	Saves        int64      `json:"saves"`
	Shares       int64      `json:"shares"`
	Comments     int64      `json:"comments"`
}

// Dataset é o resultado de uma carga completa de uma fonte remota
type Dataset struct {
	Source   string           `json:"source"`
	Format   string           `json:"format"`
	LoadedAt time.Time        `json:"loaded_at"`
	Records  []CampaignRecord `json:"records"`
}

// EmptyDataset retorna o conjunto vazio usado quando a carga falha
func EmptyDataset(source string) *Dataset {
	return &Dataset{
		Source:  source,
		Records: []CampaignRecord{},
	}
}

func (d *Dataset) IsEmpty() bool {
	return d == nil || len(d.Records) == 0
}
