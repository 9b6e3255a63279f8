package datasource

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var numberReplacer = strings.NewReplacer("R$", "", "$", "", "%", "", " ", "", "\u00a0", "")

// Inteiros com separador de milhar: "1.234", "1,234", "1.234.567"
var groupedInteger = regexp.MustCompile(`^\d{1,3}([.,]\d{3})+$`)

var groupSeparators = strings.NewReplacer(".", "", ",", "")

// Serial do Excel para 1970-01-01; números menores não são tratados como data
const minExcelSerial = 25569

// Formatos aceitos para as colunas de data, do mais comum para o menos comum
var dateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02/01/2006",
	"2006/01/02",
	"02-01-2006",
	"01-02-06",
}

// parseNumber aceita "1234.56", "1.234,56", "1,234.56", "1.234.567", "12,5", "R$ 10" e "3,2%".
// Qualquer valor que não possa ser interpretado vira zero.
func parseNumber(raw string) float64 {
	s := numberReplacer.Replace(strings.TrimSpace(raw))
	if s == "" {
		return 0
	}

	commas := strings.Count(s, ",")
	dots := strings.Count(s, ".")
	switch {
	case commas > 0 && strings.Contains(s, "."):
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case commas == 1:
		s = strings.Replace(s, ",", ".", 1)
	case commas > 1:
		s = strings.ReplaceAll(s, ",", "")
	case dots > 1:
		s = strings.ReplaceAll(s, ".", "")
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}

	return value
}

// parseCount converte contadores (impressões, cliques, interações).
// Um único separador seguido de três dígitos é de milhar. Negativos e valores
// fora da faixa de int64 viram zero.
func parseCount(raw string) int64 {
	s := numberReplacer.Replace(strings.TrimSpace(raw))
	if groupedInteger.MatchString(s) {
		s = groupSeparators.Replace(s)
	}

	value := parseNumber(s)
	if value <= 0 || value >= math.MaxInt64 {
		return 0
	}

	return int64(math.Round(value))
}

// parseDate retorna nil quando a data não pode ser interpretada
func parseDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, s); err == nil {
			day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
			return &day
		}
	}

	// Planilhas sem formatação de data trazem o número serial do Excel
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial >= minExcelSerial && serial < 2958466 {
		if date, err := excelize.ExcelDateToTime(serial, false); err == nil {
			day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
			return &day
		}
	}

	return nil
}
