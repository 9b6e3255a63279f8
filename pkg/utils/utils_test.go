package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, date)

	date, err = ParseDate("2024-03-15")
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *date)

	_, err = ParseDate("15/03/2024")
	assert.Error(t, err)
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 1.67, RoundWithTwoDecimalPlace(1.666))
	assert.Equal(t, 2.5, RoundWithTwoDecimalPlace(2.5))
}

func TestMakeRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("a,b\n1,2\n"))
	}))
	defer srv.Close()

	resp, err := MakeRequest(context.Background(), srv.Client(), srv.URL+"/data.csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", resp.ContentType)
	assert.Equal(t, "a,b\n1,2\n", string(resp.Body))

	_, err = MakeRequest(context.Background(), srv.Client(), srv.URL+"/missing")
	assert.Error(t, err)
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 12)
}
