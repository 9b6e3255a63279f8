package datasource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "impressoes", normalizeHeader("Impressões"))
	assert.Equal(t, "impressoes", normalizeHeader(" impressoes "))
	assert.Equal(t, "data_inicio", normalizeHeader("Data Início"))
	assert.Equal(t, "nome_campanha", normalizeHeader("\ufeffnome_campanha"))
	assert.Equal(t, "campaign_name", normalizeHeader("Campaign-Name"))
}

func TestColumnIndexAcceptsBothImpressionSpellings(t *testing.T) {
	for _, header := range []string{"impressões", "impressoes", "Impressions"} {
		index := columnIndex([]string{"nome_campanha", header})
		assert.Equal(t, 1, index[colImpressions], header)
	}
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, domain.FormatCSV, DetectFormat("https://example.com/data.csv", "text/csv", []byte("a,b")))
	assert.Equal(t, domain.FormatXLSX, DetectFormat("https://example.com/data.xlsx", "application/octet-stream", nil))
	assert.Equal(t, domain.FormatXLSX, DetectFormat("https://docs.example.com/export?format=xlsx", "", nil))
	assert.Equal(t, domain.FormatXLSX, DetectFormat("https://example.com/data", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil))
	assert.Equal(t, domain.FormatXLSX, DetectFormat("https://example.com/data", "", []byte("PK\x03\x04rest")))
}

func TestDetectDelimiter(t *testing.T) {
	assert.Equal(t, ',', detectDelimiter([]byte("a,b,c\n1;2;3")))
	assert.Equal(t, ';', detectDelimiter([]byte("a;b;c\n1,5;2;3")))
	assert.Equal(t, '\t', detectDelimiter([]byte("a\tb\tc")))
}

func TestParseRecords(t *testing.T) {
	rows := [][]string{
		{},
		{"nome_campanha", "tipo_campanha", "data_inicio", "data_fim", "impressões", "cliques", "CTR", "investimento", "CPC", "CPM", "salvaram", "compartilharam", "comentaram"},
		{"Black Friday", "Conversão", "2024-11-01", "2024-11-30", "1000", "10", "0.01", "100.50", "10.05", "100.5", "3", "2", "1"},
		{"", "", "", "", "", "", "", "", "", "", "", "", ""},
		{"Natal", "Alcance", "data inválida", "", "abc", "5", "", "R$ 20,00", "", "", "", "", ""},
		{"Curta"},
	}

	records, err := ParseRecords(rows)
	require.NoError(t, err)
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, "Black Friday", first.CampaignName)
	assert.Equal(t, "Conversão", first.CampaignType)
	require.NotNil(t, first.StartDate)
	assert.Equal(t, "2024-11-01", first.StartDate.Format("2006-01-02"))
	require.NotNil(t, first.EndDate)
	assert.Equal(t, int64(1000), first.Impressions)
	assert.Equal(t, int64(10), first.Clicks)
	assert.InDelta(t, 100.50, first.Spend, 1e-9)
	assert.Equal(t, int64(3), first.Saves)
	assert.Equal(t, int64(2), first.Shares)
	assert.Equal(t, int64(1), first.Comments)

	second := records[1]
	assert.Nil(t, second.StartDate)
	assert.Nil(t, second.EndDate)
	assert.Equal(t, int64(0), second.Impressions)
	assert.InDelta(t, 20.0, second.Spend, 1e-9)

	short := records[2]
	assert.Equal(t, "Curta", short.CampaignName)
	assert.Equal(t, int64(0), short.Clicks)
}

func TestParseRecordsRequiresCampaignColumn(t *testing.T) {
	_, err := ParseRecords([][]string{{"tipo", "cliques"}, {"Alcance", "3"}})
	assert.ErrorIs(t, err, ErrMissingCampaignColumn)
}

func TestParseRecordsEmptyInput(t *testing.T) {
	records, err := ParseRecords(nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseRecordsBrazilianCounts(t *testing.T) {
	rows := [][]string{
		{"nome_campanha", "impressoes", "cliques", "investimento", "data_inicio"},
		{"Dia das Mães", "1.234.567", "1.234", "1.500,75", "2024"},
		{"Exportação", "1e30", "12", "10", "45366"},
	}

	records, err := ParseRecords(rows)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, int64(1234567), records[0].Impressions)
	assert.Equal(t, int64(1234), records[0].Clicks)
	assert.InDelta(t, 1500.75, records[0].Spend, 1e-9)
	assert.Nil(t, records[0].StartDate)

	assert.Equal(t, int64(0), records[1].Impressions)
	assert.Equal(t, int64(12), records[1].Clicks)
	require.NotNil(t, records[1].StartDate)
	assert.Equal(t, "2024-03-15", records[1].StartDate.Format("2006-01-02"))
}
