package authenticating

import (
	"errors"
	"fmt"
)

// Erros de autenticação do painel
var (
	ErrInvalidCredentials = errors.New("senha incorreta")
	ErrTooManyAttempts    = errors.New("número máximo de tentativas de login excedido")
	ErrNotAuthenticated   = errors.New("sessão não autenticada")
)

// AuthError é um erro de autenticação com contexto adicional
type AuthError struct {
	Err       error  // Erro base
	Code      string // Código de erro da aplicação
	SessionID string // Sessão envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsCredentialsError verifica se o erro está relacionado à senha do
// administrador
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrTooManyAttempts)
}

// IsSessionError verifica se o erro está relacionado ao estado da
// sessão
func IsSessionError(err error) bool {
	return errors.Is(err, ErrNotAuthenticated)
}

// NewAuthError cria um novo erro de autenticação
func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewSessionAuthError cria um novo erro de autenticação com contexto
// de sessão
func NewSessionAuthError(baseErr error, code string, sessionID string, details string) *AuthError {
	return &AuthError{
		Err:       baseErr,
		Code:      code,
		SessionID: sessionID,
		Details:   details,
	}
}
