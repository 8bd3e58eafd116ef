package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sales-tracker/infrastructure/storage/jsonfile"
	"github.com/vfg2006/sales-tracker/internal/domain"
)

func newTestRepository(t *testing.T) (LedgerRepository, string) {
	path := filepath.Join(t.TempDir(), "sales_data.json")
	return NewLedgerRepository(jsonfile.New(path)), path
}

func newTestLedger() *domain.Ledger {
	ledger := domain.NewLedger()
	ledger.Records = []*domain.SaleRecord{
		{
			ID:          1,
			Description: "Caneta azul",
			Amount:      decimal.RequireFromString("3.5"),
			Timestamp:   time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:          2,
			Description: "Caderno",
			Amount:      decimal.RequireFromString("12"),
			Timestamp:   time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC),
		},
	}
	ledger.NextID = 3

	return ledger
}

func TestLedgerRepositoryLoad(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, repo LedgerRepository, path string)
		validate func(t *testing.T, ledger *domain.Ledger, err error)
	}{
		{
			name:  "Deve devolver um livro-razão vazio quando o arquivo não existe",
			setup: func(t *testing.T, repo LedgerRepository, path string) {},
			validate: func(t *testing.T, ledger *domain.Ledger, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.LedgerVersion, ledger.Version)
				assert.Equal(t, int64(1), ledger.NextID)
				assert.Empty(t, ledger.Records)
			},
		},
		{
			name: "Deve carregar o que foi gravado",
			setup: func(t *testing.T, repo LedgerRepository, path string) {
				require.NoError(t, repo.Save(newTestLedger()))
			},
			validate: func(t *testing.T, ledger *domain.Ledger, err error) {
				require.NoError(t, err)
				require.Len(t, ledger.Records, 2)
				assert.Equal(t, int64(3), ledger.NextID)
				assert.Equal(t, "Caneta azul", ledger.Records[0].Description)
				assert.True(t, ledger.Records[0].Amount.Equal(decimal.RequireFromString("3.5")))
				assert.True(t, ledger.Records[1].Timestamp.Equal(time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC)))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, path := newTestRepository(t)

			tt.setup(t, repo, path)

			ledger, err := repo.Load()
			tt.validate(t, ledger, err)
		})
	}
}

func TestLedgerRepositoryLoadCorruptStore(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "Deve rejeitar JSON quebrado",
			content: `{"version": 1, "next_id":`,
		},
		{
			name:    "Deve rejeitar arquivo vazio",
			content: "",
		},
		{
			name:    "Deve rejeitar versão desconhecida",
			content: `{"version": 99, "next_id": 1, "records": []}`,
		},
		{
			name: "Deve rejeitar identificadores fora de ordem",
			content: `{"version": 1, "next_id": 3, "records": [` +
				`{"id": 2, "description": "Caderno", "amount": "12", "timestamp": "2024-01-15T14:00:00Z"},` +
				`{"id": 1, "description": "Caneta", "amount": "3.5", "timestamp": "2024-01-15T10:30:00Z"}]}`,
		},
		{
			name: "Deve rejeitar valor negativo",
			content: `{"version": 1, "next_id": 2, "records": [` +
				`{"id": 1, "description": "Caneta", "amount": "-3.5", "timestamp": "2024-01-15T10:30:00Z"}]}`,
		},
		{
			name: "Deve rejeitar next_id menor que o último identificador",
			content: `{"version": 1, "next_id": 1, "records": [` +
				`{"id": 1, "description": "Caneta", "amount": "3.5", "timestamp": "2024-01-15T10:30:00Z"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, path := newTestRepository(t)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			ledger, err := repo.Load()

			assert.Nil(t, ledger)
			assert.True(t, IsCorruptStoreError(err), "esperado CorruptStoreError, obtido %v", err)

			// O arquivo corrompido permanece intacto para inspeção
			data, readErr := os.ReadFile(path)
			require.NoError(t, readErr)
			assert.Equal(t, tt.content, string(data))
		})
	}
}

func TestLedgerRepositorySaveRejectsInvalidLedger(t *testing.T) {
	repo, path := newTestRepository(t)

	ledger := domain.NewLedger()
	ledger.Records = []*domain.SaleRecord{
		{
			ID:          1,
			Description: "Caneta",
			Amount:      decimal.RequireFromString("-1"),
			Timestamp:   time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
	}
	ledger.NextID = 2

	err := repo.Save(ledger)

	assert.Error(t, err)
	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestLedgerRepositorySaveLoadIsIdempotent(t *testing.T) {
	repo, path := newTestRepository(t)

	require.NoError(t, repo.Save(newTestLedger()))
	firstContent, err := os.ReadFile(path)
	require.NoError(t, err)

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.NoError(t, repo.Save(loaded))

	secondContent, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(firstContent), string(secondContent))
}
