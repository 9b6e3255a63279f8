package dashboarding

import "errors"

var (
	ErrSourceNotAllowed    = errors.New("fonte de dados não permitida")
	ErrIncompleteDateRange = errors.New("informe data inicial e final")
	ErrInvalidDateRange    = errors.New("data inicial posterior à data final")
	ErrDatasetUnavailable  = errors.New("dados indisponíveis")
)

// LoadErrorMessage é o texto exibido ao usuário quando a planilha não pôde ser carregada
const LoadErrorMessage = "Não foi possível carregar os dados"

// DatasetUnavailableError acompanha resultados vazios quando a fonte não pôde ser carregada.
// Message já vem pronta para exibição.
type DatasetUnavailableError struct {
	Message string
}

func (e *DatasetUnavailableError) Error() string {
	return e.Message
}

func (e *DatasetUnavailableError) Is(target error) bool {
	return target == ErrDatasetUnavailable
}
