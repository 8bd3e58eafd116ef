package domain

import (
	"errors"
	"fmt"
)

// LedgerVersion é a versão do formato do arquivo de dados gravado em disco
const LedgerVersion = 1

// Invariantes do livro-razão
var (
	ErrUnsupportedVersion = errors.New("versão do arquivo de dados não suportada")
	ErrInvalidNextID      = errors.New("próximo identificador inválido")
	ErrNonSequentialID    = errors.New("identificadores de venda fora de ordem")
	ErrEmptyDescription   = errors.New("descrição da venda vazia")
	ErrNegativeAmount     = errors.New("valor da venda negativo")
	ErrMissingTimestamp   = errors.New("venda sem data de registro")
)

// Ledger é o conjunto completo de vendas registradas, na ordem em que
// foram registradas. NextID é o identificador da próxima venda.
type Ledger struct {
	Version int           `json:"version"`
	NextID  int64         `json:"next_id"`
	Records []*SaleRecord `json:"records"`
}

// NewLedger cria um livro-razão vazio pronto para receber a primeira venda
func NewLedger() *Ledger {
	return &Ledger{
		Version: LedgerVersion,
		NextID:  1,
		Records: make([]*SaleRecord, 0),
	}
}

// Validate verifica as invariantes estruturais do livro-razão:
// identificadores estritamente crescentes e menores que NextID,
// valores não negativos, descrições preenchidas.
func (l *Ledger) Validate() error {
	if l.Version != LedgerVersion {
		return fmt.Errorf("%w: versão %d", ErrUnsupportedVersion, l.Version)
	}

	if l.NextID < 1 {
		return fmt.Errorf("%w: next_id %d", ErrInvalidNextID, l.NextID)
	}

	var lastID int64
	for position, record := range l.Records {
		if record == nil {
			return fmt.Errorf("%w: registro nulo na posição %d", ErrNonSequentialID, position)
		}

		if record.ID <= lastID {
			return fmt.Errorf("%w: id %d após id %d", ErrNonSequentialID, record.ID, lastID)
		}

		if record.ID >= l.NextID {
			return fmt.Errorf("%w: id %d maior ou igual a next_id %d", ErrInvalidNextID, record.ID, l.NextID)
		}

		if record.Description == "" {
			return fmt.Errorf("%w: id %d", ErrEmptyDescription, record.ID)
		}

		if record.Amount.IsNegative() {
			return fmt.Errorf("%w: id %d", ErrNegativeAmount, record.ID)
		}

		if record.Timestamp.IsZero() {
			return fmt.Errorf("%w: id %d", ErrMissingTimestamp, record.ID)
		}

		lastID = record.ID
	}

	return nil
}
