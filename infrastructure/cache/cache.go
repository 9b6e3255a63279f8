package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

//go:generate mockgen -source=cache.go -destination=mocks/cache_mock.go -package=mocks

const keyPrefix = "dataset:"

// DatasetCache guarda a última carga bem-sucedida de cada fonte.
// A chave é derivada do localizador da fonte; a invalidação é sempre explícita ou por TTL.
type DatasetCache interface {
	Get(ctx context.Context, source string) (*domain.Dataset, bool, error)
	Set(ctx context.Context, source string, dataset *domain.Dataset) error
	Invalidate(ctx context.Context, source string) error
}

// Key gera a chave de cache de uma fonte
func Key(source string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(source)))
	return keyPrefix + hex.EncodeToString(sum[:])
}
