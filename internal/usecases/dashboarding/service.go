package dashboarding

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/datasource"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/metrics"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

// Service implementa Dashboarder
type Service struct {
	cfg               *config.Config
	loader            datasource.Loader
	cache             cache.DatasetCache
	metrics           *metrics.Metrics
	loadRunRepository repository.LoadRunRepository
	now               func() time.Time
}

var _ Dashboarder = (*Service)(nil)

// NewService cria uma nova instância do serviço do painel
func NewService(
	cfg *config.Config,
	loader datasource.Loader,
	datasetCache cache.DatasetCache,
	m *metrics.Metrics,
) *Service {
	return &Service{
		cfg:               cfg,
		loader:            loader,
		cache:             datasetCache,
		metrics:           m,
		loadRunRepository: nil, // Sem banco não há histórico de cargas
		now:               time.Now,
	}
}

// WithLoadHistory habilita o registro de cada tentativa de carga
func (s *Service) WithLoadHistory(loadRunRepo repository.LoadRunRepository) *Service {
	s.loadRunRepository = loadRunRepo
	return s
}

func (s *Service) Sources() []string {
	return s.cfg.DataSource.Sources()
}

// ResolveSource troca a fonte vazia pela padrão e rejeita fontes fora da lista permitida
func (s *Service) ResolveSource(source string) (string, error) {
	if source == "" {
		return s.cfg.DataSource.DefaultURL, nil
	}

	for _, allowed := range s.Sources() {
		if source == allowed {
			return source, nil
		}
	}

	return "", ErrSourceNotAllowed
}

// ValidateCriteria exige as duas datas juntas e em ordem
func ValidateCriteria(criteria domain.FilterCriteria) error {
	if (criteria.StartDate == nil) != (criteria.EndDate == nil) {
		return ErrIncompleteDateRange
	}

	if criteria.DateRangeActive() && utils.TruncateToDay(*criteria.StartDate).After(utils.TruncateToDay(*criteria.EndDate)) {
		return ErrInvalidDateRange
	}

	return nil
}

// GetDataset devolve o dataset em cache ou carrega a fonte.
// Em caso de falha retorna um dataset vazio junto com o erro.
func (s *Service) GetDataset(ctx context.Context, source string) (*domain.Dataset, error) {
	if dataset, ok := s.cached(ctx, source); ok {
		return dataset, nil
	}

	return s.load(ctx, source)
}

func (s *Service) cached(ctx context.Context, source string) (*domain.Dataset, bool) {
	if s.cache == nil {
		return nil, false
	}

	dataset, ok, err := s.cache.Get(ctx, source)
	if err != nil {
		log.ForContext(ctx).WithField("source", source).WithError(err).Warn("Erro ao consultar cache, carregando da fonte")
		ok = false
	}
	if dataset == nil {
		ok = false
	}

	s.metrics.ObserveCache(ok)
	return dataset, ok
}

func (s *Service) load(ctx context.Context, source string) (*domain.Dataset, error) {
	logger := log.ForContext(ctx).WithField("source", source)
	startTime := s.now()

	dataset, err := s.loader.Load(ctx, source)
	if dataset == nil {
		dataset = domain.EmptyDataset(source)
	}
	duration := s.now().Sub(startTime)

	s.recordLoadRun(ctx, source, dataset, err, startTime, duration)

	if err != nil {
		logger.WithError(err).Error("Falha ao carregar fonte de dados")
		s.metrics.ObserveLoad(source, string(domain.LoadRunStatusFailure), "", duration, 0)
		return dataset, err
	}

	s.metrics.ObserveLoad(source, string(domain.LoadRunStatusSuccess), dataset.Format, duration, len(dataset.Records))
	logger.WithField("rows", len(dataset.Records)).Info("Fonte de dados carregada")

	if s.cache != nil {
		if err := s.cache.Set(ctx, source, dataset); err != nil {
			logger.WithError(err).Warn("Erro ao salvar dataset no cache")
		}
	}

	return dataset, nil
}

func (s *Service) recordLoadRun(ctx context.Context, source string, dataset *domain.Dataset, loadErr error, startedAt time.Time, duration time.Duration) {
	if s.loadRunRepository == nil {
		return
	}

	id, err := utils.GenerateID()
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao gerar identificador da carga")
		return
	}

	run := &domain.LoadRun{
		ID:         id,
		Source:     source,
		Status:     domain.LoadRunStatusSuccess,
		Format:     dataset.Format,
		Rows:       len(dataset.Records),
		StartedAt:  startedAt,
		DurationMs: duration.Milliseconds(),
	}
	if loadErr != nil {
		run.Status = domain.LoadRunStatusFailure
		run.Error = loadErr.Error()
	}

	if err := s.loadRunRepository.Save(run); err != nil {
		log.ForContext(ctx).WithField("source", source).WithError(err).Warn("Erro ao registrar histórico de carga")
	}
}

// GetDashboard monta a resposta completa do painel.
// Uma falha de carga não é erro da consulta: a resposta vem zerada e com LoadError preenchido.
func (s *Service) GetDashboard(ctx context.Context, source string, criteria domain.FilterCriteria) (*domain.DashboardResponse, error) {
	if err := ValidateCriteria(criteria); err != nil {
		return nil, err
	}

	resolved, err := s.ResolveSource(source)
	if err != nil {
		return nil, err
	}

	dataset, loadErr := s.GetDataset(ctx, resolved)

	response := &domain.DashboardResponse{
		Source:  resolved,
		Filters: criteria,
	}
	if loadErr != nil {
		response.LoadError = loadErrorMessage(loadErr)
	} else {
		loadedAt := dataset.LoadedAt
		response.LoadedAt = &loadedAt
	}

	filtered := Filter(dataset.Records, criteria)

	response.Options = BuildFilterOptions(dataset.Records)
	response.Metrics = Aggregate(filtered)
	response.Charts = BuildCharts(filtered)
	response.Records = filtered
	response.TotalRows = len(dataset.Records)

	return response, nil
}

// GetFilterOptions retorna as opções mesmo quando a carga falha, junto com ErrDatasetUnavailable
func (s *Service) GetFilterOptions(ctx context.Context, source string) (*domain.FilterOptions, error) {
	resolved, err := s.ResolveSource(source)
	if err != nil {
		return nil, err
	}

	dataset, loadErr := s.GetDataset(ctx, resolved)
	options := BuildFilterOptions(dataset.Records)
	if loadErr != nil {
		return options, unavailable(loadErr)
	}

	return options, nil
}

// GetRecords retorna as linhas filtradas; em falha de carga o slice vem vazio junto com ErrDatasetUnavailable
func (s *Service) GetRecords(ctx context.Context, source string, criteria domain.FilterCriteria) ([]domain.CampaignRecord, error) {
	if err := ValidateCriteria(criteria); err != nil {
		return nil, err
	}

	resolved, err := s.ResolveSource(source)
	if err != nil {
		return nil, err
	}

	dataset, loadErr := s.GetDataset(ctx, resolved)
	records := Filter(dataset.Records, criteria)
	if loadErr != nil {
		return records, unavailable(loadErr)
	}

	return records, nil
}

func (s *Service) InvalidateCache(ctx context.Context, source string) error {
	resolved, err := s.ResolveSource(source)
	if err != nil {
		return err
	}

	if s.cache == nil {
		return nil
	}

	if err := s.cache.Invalidate(ctx, resolved); err != nil {
		return errors.Wrap(err, "erro ao invalidar cache")
	}

	log.ForContext(ctx).WithField("source", resolved).Info("Cache invalidado")
	return nil
}

func (s *Service) RefreshSource(ctx context.Context, source string) error {
	resolved, err := s.ResolveSource(source)
	if err != nil {
		return err
	}

	_, err = s.load(ctx, resolved)
	return err
}

func (s *Service) ListLoadRuns(source string, limit int) ([]*domain.LoadRun, error) {
	if s.loadRunRepository == nil {
		return []*domain.LoadRun{}, nil
	}

	return s.loadRunRepository.ListRecent(source, limit)
}

func unavailable(loadErr error) error {
	return &DatasetUnavailableError{Message: loadErrorMessage(loadErr)}
}

func loadErrorMessage(err error) string {
	return fmt.Sprintf("%s: %s", LoadErrorMessage, err.Error())
}
