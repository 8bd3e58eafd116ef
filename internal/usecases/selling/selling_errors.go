package selling

import (
	"errors"
	"fmt"
)

// Erros de registro de vendas
var (
	ErrLedgerNotLoaded     = errors.New("livro-razão ainda não carregado")
	ErrInvalidAmountFormat = errors.New("formato de valor inválido")
	ErrInvalidDateFormat   = errors.New("formato de data inválido")
)

// ValidationError descreve uma entrada rejeitada antes de chegar ao
// livro-razão
type ValidationError struct {
	Err     error  // Regra violada
	Field   string // Campo rejeitado
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ValidationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError cria um erro de validação para o campo informado
func NewValidationError(baseErr error, field string, details string) *ValidationError {
	return &ValidationError{
		Err:     baseErr,
		Field:   field,
		Details: details,
	}
}

// IsValidationError verifica se o erro é uma falha de validação de
// entrada
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
