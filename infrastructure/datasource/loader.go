package datasource

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

//go:generate mockgen -source=loader.go -destination=mocks/loader_mock.go -package=mocks

// Loader carrega a planilha de campanhas de uma fonte remota.
// Em caso de falha retorna um Dataset vazio junto com o erro.
type Loader interface {
	Load(ctx context.Context, source string) (*domain.Dataset, error)
}

type HTTPLoader struct {
	client *http.Client
	now    func() time.Time
}

func NewHTTPLoader(cfg config.DataSource) *HTTPLoader {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &HTTPLoader{
		client: &http.Client{Timeout: timeout},
		now:    time.Now,
	}
}

func (l *HTTPLoader) Load(ctx context.Context, source string) (*domain.Dataset, error) {
	startTime := l.now()

	resp, err := utils.MakeRequest(ctx, l.client, source)
	if err != nil {
		return domain.EmptyDataset(source), errors.Wrap(err, "erro ao buscar a fonte de dados")
	}

	format := DetectFormat(source, resp.ContentType, resp.Body)

	rows, err := ReadRows(format, resp.Body)
	if err != nil {
		return domain.EmptyDataset(source), errors.Wrapf(err, "erro ao interpretar arquivo %s", format)
	}

	records, err := ParseRecords(rows)
	if err != nil {
		return domain.EmptyDataset(source), errors.Wrap(err, "erro ao converter registros")
	}

	logrus.WithFields(logrus.Fields{
		"source":      source,
		"format":      format,
		"rows":        len(records),
		"duration_ms": l.now().Sub(startTime).Milliseconds(),
	}).Debug("Fonte de dados carregada")

	return &domain.Dataset{
		Source:   source,
		Format:   format,
		LoadedAt: l.now(),
		Records:  records,
	}, nil
}
