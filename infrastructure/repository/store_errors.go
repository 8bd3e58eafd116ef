package repository

import (
	"errors"
	"fmt"
)

// CorruptStoreError indica que o arquivo de dados existe mas não pôde
// ser interpretado como um livro-razão válido. A aplicação nunca
// sobrescreve um arquivo nesse estado.
type CorruptStoreError struct {
	Path string // Caminho do arquivo de dados
	Err  error  // Causa da corrupção
}

func (e *CorruptStoreError) Error() string {
	return fmt.Sprintf("arquivo de dados corrompido (%s): %v", e.Path, e.Err)
}

func (e *CorruptStoreError) Unwrap() error {
	return e.Err
}

// NewCorruptStoreError cria um erro de corrupção para o arquivo informado
func NewCorruptStoreError(path string, cause error) *CorruptStoreError {
	return &CorruptStoreError{
		Path: path,
		Err:  cause,
	}
}

// IsCorruptStoreError verifica se o erro indica corrupção do arquivo
// de dados
func IsCorruptStoreError(err error) bool {
	var corruptErr *CorruptStoreError
	return errors.As(err, &corruptErr)
}
