package dashboarding

import (
	"context"

	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/dashboarding_mock.go -package=mocks

// DatasetRefresher define o necessário para manter o cache aquecido
type DatasetRefresher interface {
	// Sources lista a fonte padrão e as fontes permitidas
	Sources() []string

	// RefreshSource recarrega a fonte ignorando o cache; o cache só é substituído em caso de sucesso
	RefreshSource(ctx context.Context, source string) error
}

// Dashboarder é a interface completa usada pelos handlers
type Dashboarder interface {
	DatasetRefresher

	// ResolveSource troca a fonte vazia pela padrão e rejeita fontes fora da lista permitida
	ResolveSource(source string) (string, error)

	// GetDashboard aplica os filtros e calcula indicadores, gráficos e opções de filtro
	GetDashboard(ctx context.Context, source string, criteria domain.FilterCriteria) (*domain.DashboardResponse, error)

	// GetFilterOptions lista as opções de filtro da fonte sem aplicar critérios
	GetFilterOptions(ctx context.Context, source string) (*domain.FilterOptions, error)

	// GetRecords retorna apenas as linhas filtradas
	GetRecords(ctx context.Context, source string, criteria domain.FilterCriteria) ([]domain.CampaignRecord, error)

	InvalidateCache(ctx context.Context, source string) error

	// ListLoadRuns lista o histórico de cargas; vazio quando o banco está desativado
	ListLoadRuns(source string, limit int) ([]*domain.LoadRun, error)
}
