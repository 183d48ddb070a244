package healthchecking

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de relatórios de saúde
var (
	// Erros de validação
	ErrAccountIDRequired = errors.New("account ID is required")
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountInactive   = errors.New("account is not active")
	ErrUnknownPlatform   = errors.New("unknown account platform")

	// Erros de serviços externos
	ErrMetaIntegration   = errors.New("error collecting snapshot from Meta")
	ErrGoogleIntegration = errors.New("error collecting snapshot from Google Ads")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrSaveReport        = errors.New("error saving report")

	ErrGenerateID = errors.New("error generating ID")
)

// ReportError é um erro com contexto adicional para relatórios
type ReportError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	AccountID string // ID da conta envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError cria um novo ReportError
func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewReportErrorWithID cria um novo ReportError com ID da conta
func NewReportErrorWithID(err error, code string, accountID string, details string) *ReportError {
	return &ReportError{
		Err:       err,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}
