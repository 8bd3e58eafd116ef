package cliErrors

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/vfg2006/sales-tracker/pkg/utils"
)

// Códigos de erro da aplicação
const (
	// Erros de autenticação (AUTH)
	ErrInvalidCredentials = "AUTH_001" // Senha incorreta
	ErrTooManyAttempts    = "AUTH_002" // Tentativas de login esgotadas
	ErrNotAuthenticated   = "AUTH_003" // Ação protegida sem sessão autenticada

	// Erros de validação (VAL)
	ErrInvalidInput        = "VAL_001" // Entrada inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de armazenamento (STO)
	ErrCorruptStore     = "STO_001" // Arquivo de dados corrompido
	ErrStorageOperation = "STO_002" // Falha ao ler ou gravar o arquivo de dados

	// Erros internos (SRV)
	ErrInternal = "SRV_001" // Erro interno da aplicação
)

// Mapeamento de códigos de erro para códigos de saída do processo
var exitCodeMap = map[string]int{
	ErrInvalidCredentials:  1,
	ErrTooManyAttempts:     2,
	ErrNotAuthenticated:    1,
	ErrInvalidInput:        1,
	ErrMissingRequiredData: 1,
	ErrInvalidFormat:       1,
	ErrCorruptStore:        3,
	ErrStorageOperation:    1,
	ErrInternal:            1,
}

// CLIError é o formato padronizado de erro exibido ao usuário
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

func (e *CLIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}

	return e.Code
}

// New cria um erro padronizado com código e mensagem
func New(code, message string) *CLIError {
	return &CLIError{
		Code:    code,
		Message: message,
	}
}

// FromError converte um erro comum em um erro padronizado com código
func FromError(err error, code string) *CLIError {
	if err == nil {
		return &CLIError{
			Code:    ErrInternal,
			Message: "Erro desconhecido",
		}
	}

	return &CLIError{
		Code:    code,
		Message: err.Error(),
	}
}

// WriteError escreve o erro padronizado no writer informado, no
// formato "ERRO [código] mensagem", com os detalhes em seguida
func WriteError(w io.Writer, code string, message string, details any) {
	fmt.Fprintf(w, "ERRO [%s] %s\n", code, message)

	if details != nil {
		switch d := details.(type) {
		case string:
			fmt.Fprintln(w, d)
		default:
			fmt.Fprintln(w, utils.PrettyJson(details))
		}
	}
}

// ExitCode traduz um erro no código de saída do processo. Erros sem
// código conhecido encerram com código 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		if code, exists := exitCodeMap[cliErr.Code]; exists {
			return code
		}
	}

	return 1
}
