package datasource

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type column int

const (
	colCampaignName column = iota
	colCampaignType
	colStartDate
	colEndDate
	colImpressions
	colClicks
	colCTR
	colSpend
	colCPC
	colCPM
	colSaves
	colShares
	colComments
)

// columnAliases mapeia cabeçalhos normalizados (minúsculos, sem acento) para as colunas internas.
// As duas grafias de impressões usadas nas planilhas caem em "impressoes" após a normalização.
var columnAliases = map[string]column{
	"nome_campanha":     colCampaignName,
	"nome_da_campanha":  colCampaignName,
	"campanha":          colCampaignName,
	"campaign_name":     colCampaignName,
	"campaign":          colCampaignName,
	"tipo_campanha":     colCampaignType,
	"tipo_de_campanha":  colCampaignType,
	"tipo":              colCampaignType,
	"campaign_type":     colCampaignType,
	"type":              colCampaignType,
	"data_inicio":       colStartDate,
	"inicio":            colStartDate,
	"start_date":        colStartDate,
	"data_fim":          colEndDate,
	"fim":               colEndDate,
	"end_date":          colEndDate,
	"impressoes":        colImpressions,
	"impressions":       colImpressions,
	"cliques":           colClicks,
	"clicks":            colClicks,
	"ctr":               colCTR,
	"investimento":      colSpend,
	"valor_investido":   colSpend,
	"spend":             colSpend,
	"amount_spent":      colSpend,
	"cpc":               colCPC,
	"cpm":               colCPM,
	"salvaram":          colSaves,
	"salvamentos":       colSaves,
	"saves":             colSaves,
	"compartilharam":    colShares,
	"compartilhamentos": colShares,
	"shares":            colShares,
	"comentaram":        colComments,
	"comentarios":       colComments,
	"comments":          colComments,
}

var headerReplacer = strings.NewReplacer(" ", "_", "-", "_", "\ufeff", "")

// normalizeHeader remove acentos, espaços nas pontas e padroniza separadores
func normalizeHeader(header string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	folded, _, err := transform.String(t, header)
	if err != nil {
		folded = header
	}

	return strings.ToLower(headerReplacer.Replace(strings.TrimSpace(folded)))
}

// columnIndex localiza cada coluna conhecida no cabeçalho; a primeira ocorrência vence
func columnIndex(header []string) map[column]int {
	index := make(map[column]int)

	for i, h := range header {
		col, ok := columnAliases[normalizeHeader(h)]
		if !ok {
			continue
		}
		if _, exists := index[col]; !exists {
			index[col] = i
		}
	}

	return index
}
