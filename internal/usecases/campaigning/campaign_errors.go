package campaigning

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de campanhas
var (
	// Erros de validação
	ErrCampaignIDRequired   = errors.New("campaign ID is required")
	ErrCampaignNotFound     = errors.New("campaign not found")
	ErrInvalidStatus        = errors.New("invalid campaign status")
	ErrInvalidDateRange     = errors.New("invalid campaign date range")
	ErrMissingRequiredData  = errors.New("missing required campaign data")
	ErrInvalidCopiesNumber  = errors.New("invalid number of copies")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrFetchCampaigns    = errors.New("error fetching campaigns from database")

	// Erros de geração de identificadores
	ErrGenerateID = errors.New("error generating campaign ID")
)

// CampaignError é um erro com contexto adicional para campanhas
type CampaignError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	CampaignID string // ID da campanha envolvida (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *CampaignError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *CampaignError) Unwrap() error {
	return e.Err
}

// NewCampaignError cria um novo CampaignError
func NewCampaignError(err error, code string, details string) *CampaignError {
	return &CampaignError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewCampaignErrorWithID cria um novo CampaignError com ID da campanha
func NewCampaignErrorWithID(err error, code string, campaignID string, details string) *CampaignError {
	return &CampaignError{
		Err:        err,
		Code:       code,
		CampaignID: campaignID,
		Details:    details,
	}
}
