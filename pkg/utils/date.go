package utils

import (
	"strings"
	"time"
)

// ParseDate interpreta datas de query string no formato YYYY-MM-DD.
// Uma string vazia resulta em nil, indicando que a data não foi informada.
func ParseDate(dateStr string) (*time.Time, error) {
	if strings.TrimSpace(dateStr) == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, strings.TrimSpace(dateStr))
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// TruncateToDay remove a parte de horário mantendo o fuso da data
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
