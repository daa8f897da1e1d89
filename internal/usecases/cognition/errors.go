package cognition

import "errors"

// Erros específicos para o contexto da análise cognitiva
var (
	// Erros de validação de entrada
	ErrPeriodRequired    = errors.New("é necessário informar as datas de início e fim")
	ErrInvalidPeriod     = errors.New("a data de início não pode ser posterior à data de fim")
	ErrAccountIDRequired = errors.New("account ID is required")
	ErrAccountNotFound   = errors.New("account not found")

	// Erros de origem de dados
	ErrAdsSourceUnavailable = errors.New("nenhuma métrica de anúncios disponível para o período")
)
