package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestKeepField(t *testing.T) {
	assert.True(t, keepField("source"))
	assert.True(t, keepField("correlation_id"))
	assert.True(t, keepField("user_role"))
	assert.False(t, keepField("campaign_count"))
}

func TestWithFieldsInDevelopmentDropsIrrelevantFields(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	SetupTestLogger()

	base := L.(*logger)
	filtered := L.WithFields(Fields{"campaign_count": 3}).(*logger)
	assert.Same(t, base, filtered)

	kept := L.WithFields(Fields{"source": "a.csv", "campaign_count": 3}).(*logger)
	assert.Equal(t, "a.csv", kept.entry.Data["source"])
	_, ok := kept.entry.Data["campaign_count"]
	assert.False(t, ok)
}
