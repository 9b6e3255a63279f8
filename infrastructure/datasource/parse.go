package datasource

import (
	"bytes"
	"encoding/csv"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// ErrMissingCampaignColumn indica que a planilha não tem a coluna de nome da campanha
var ErrMissingCampaignColumn = errors.New("coluna obrigatória ausente: nome_campanha")

var zipSignature = []byte("PK\x03\x04")

// DetectFormat decide entre CSV e XLSX pela URL, pelo Content-Type e pela assinatura do arquivo
func DetectFormat(source, contentType string, body []byte) string {
	if bytes.HasPrefix(body, zipSignature) {
		return domain.FormatXLSX
	}

	if strings.Contains(contentType, "spreadsheetml") || strings.Contains(contentType, "ms-excel") {
		return domain.FormatXLSX
	}

	if u, err := url.Parse(source); err == nil {
		if strings.HasSuffix(strings.ToLower(u.Path), ".xlsx") || strings.EqualFold(u.Query().Get("format"), domain.FormatXLSX) {
			return domain.FormatXLSX
		}
	}

	return domain.FormatCSV
}

// ReadRows lê o conteúdo bruto como uma grade de células
func ReadRows(format string, body []byte) ([][]string, error) {
	if format == domain.FormatXLSX {
		return readXLSX(body)
	}
	return readCSV(body)
}

func readCSV(body []byte) ([][]string, error) {
	body = bytes.TrimPrefix(body, []byte("\xef\xbb\xbf"))

	reader := csv.NewReader(bytes.NewReader(body))
	reader.Comma = detectDelimiter(body)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler CSV")
	}

	return rows, nil
}

// detectDelimiter escolhe o separador mais frequente na linha de cabeçalho
func detectDelimiter(body []byte) rune {
	header := body
	if i := bytes.IndexByte(body, '\n'); i >= 0 {
		header = body[:i]
	}

	best, bestCount := ',', bytes.Count(header, []byte{','})
	for _, candidate := range []rune{';', '\t'} {
		if count := bytes.Count(header, []byte(string(candidate))); count > bestCount {
			best, bestCount = candidate, count
		}
	}

	return best
}

func readXLSX(body []byte) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir planilha")
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("planilha sem abas")
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler aba %s", sheets[0])
	}

	return rows, nil
}

// ParseRecords converte a grade de células em registros de campanha.
// A primeira linha não vazia é o cabeçalho; linhas totalmente vazias são ignoradas.
func ParseRecords(rows [][]string) ([]domain.CampaignRecord, error) {
	headerAt := -1
	for i, row := range rows {
		if !isBlank(row) {
			headerAt = i
			break
		}
	}

	if headerAt < 0 {
		return []domain.CampaignRecord{}, nil
	}

	index := columnIndex(rows[headerAt])
	if _, ok := index[colCampaignName]; !ok {
		return nil, ErrMissingCampaignColumn
	}

	records := make([]domain.CampaignRecord, 0, len(rows)-headerAt-1)
	for _, row := range rows[headerAt+1:] {
		if isBlank(row) {
			continue
		}
		records = append(records, toRecord(row, index))
	}

	return records, nil
}

func toRecord(row []string, index map[column]int) domain.CampaignRecord {
	cell := func(col column) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	return domain.CampaignRecord{
		CampaignName: cell(colCampaignName),
		CampaignType: cell(colCampaignType),
		StartDate:    parseDate(cell(colStartDate)),
		EndDate:      parseDate(cell(colEndDate)),
		Impressions:  parseCount(cell(colImpressions)),
		Clicks:       parseCount(cell(colClicks)),
		CTR:          parseNumber(cell(colCTR)),
		Spend:        parseNumber(cell(colSpend)),
		CPC:          parseNumber(cell(colCPC)),
		CPM:          parseNumber(cell(colCPM)),
		Saves:        parseCount(cell(colSaves)),
		Shares:       parseCount(cell(colShares)),
		Comments:     parseCount(cell(colComments)),
	}
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
