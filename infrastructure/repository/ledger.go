package repository

import (
	"errors"
	"fmt"
	"os"

	"github.com/vfg2006/sales-tracker/infrastructure/storage/jsonfile"
	"github.com/vfg2006/sales-tracker/internal/domain"
)

// LedgerRepository persiste o livro-razão completo de vendas
type LedgerRepository interface {
	Load() (*domain.Ledger, error)
	Save(ledger *domain.Ledger) error
}

type ledgerRepository struct {
	store *jsonfile.Store
}

func NewLedgerRepository(store *jsonfile.Store) LedgerRepository {
	return &ledgerRepository{store: store}
}

// Load lê o livro-razão persistido. A ausência do arquivo não é um
// erro: a primeira execução começa com um livro-razão vazio. Um
// arquivo presente mas ilegível vira CorruptStoreError e nunca é
// sobrescrito.
func (r *ledgerRepository) Load() (*domain.Ledger, error) {
	ledger := &domain.Ledger{}

	if err := r.store.Read(ledger); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.NewLedger(), nil
		}

		if errors.Is(err, jsonfile.ErrMalformed) {
			return nil, NewCorruptStoreError(r.store.Path(), err)
		}

		return nil, fmt.Errorf("erro ao ler o arquivo de dados %s: %w", r.store.Path(), err)
	}

	if err := ledger.Validate(); err != nil {
		return nil, NewCorruptStoreError(r.store.Path(), err)
	}

	return ledger, nil
}

// Save valida e grava o livro-razão inteiro, substituindo o conteúdo
// anterior
func (r *ledgerRepository) Save(ledger *domain.Ledger) error {
	if ledger == nil {
		return errors.New("livro-razão não pode ser nulo")
	}

	if err := ledger.Validate(); err != nil {
		return fmt.Errorf("erro ao validar o livro-razão antes da gravação: %w", err)
	}

	if err := r.store.Write(ledger); err != nil {
		return fmt.Errorf("erro ao gravar o arquivo de dados %s: %w", r.store.Path(), err)
	}

	return nil
}
