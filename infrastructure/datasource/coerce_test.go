package datasource

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"1234.56", 1234.56},
		{"1.234,56", 1234.56},
		{"1,234.56", 1234.56},
		{"12,5", 12.5},
		{"1,000,000", 1000000},
		{"1.234.567", 1234567},
		{"1.234.567,89", 1234567.89},
		{"R$ 10,00", 10},
		{"3,2%", 3.2},
		{"", 0},
		{"n/a", 0},
		{"NaN", 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.InDelta(t, tt.want, parseNumber(tt.raw), 1e-9)
		})
	}
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, int64(1500), parseCount("1500"))
	assert.Equal(t, int64(12), parseCount("12.0"))
	assert.Equal(t, int64(0), parseCount("-4"))
	assert.Equal(t, int64(0), parseCount("abc"))
}

func TestParseCountThousandsSeparators(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
	}{
		{"1.234", 1234},
		{"1,234", 1234},
		{"1.234.567", 1234567},
		{"1,000,000", 1000000},
		{"R$ 2.500", 2500},
		{"1.234,0", 1234},
		{"12.5", 13},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, parseCount(tt.raw))
		})
	}
}

func TestParseCountOutOfRange(t *testing.T) {
	assert.Equal(t, int64(0), parseCount("1e30"))
	assert.Equal(t, int64(0), parseCount("9223372036854775808"))
	assert.Equal(t, int64(0), parseCount("-1e30"))
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	for _, raw := range []string{"2024-03-15", "2024-03-15 10:30:00", "15/03/2024", "2024-03-15T08:00:00Z", "45366"} {
		t.Run(raw, func(t *testing.T) {
			date := parseDate(raw)
			require.NotNil(t, date)
			assert.True(t, want.Equal(*date), "got %s", date)
		})
	}

	assert.Nil(t, parseDate(""))
	assert.Nil(t, parseDate("ontem"))
	assert.Nil(t, parseDate("2024"))
	assert.Nil(t, parseDate("7"))
}
