package selling

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/sales-tracker/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-tracker/internal/domain"
	"github.com/vfg2006/sales-tracker/pkg/log"
)

func amount(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func newLoadedService(mockRepo *mocks.MockLedgerRepository) *Service {
	return &Service{
		ledgerRepo: mockRepo,
		ledger:     domain.NewLedger(),
		loaded:     true,
	}
}

func TestAddSale(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name  string
		setup func(mockRepo *mocks.MockLedgerRepository)
		run   func(t *testing.T, service *Service)
	}{
		{
			name: "Deve atribuir identificadores sequenciais a partir de 1",
			setup: func(mockRepo *mocks.MockLedgerRepository) {
				mockRepo.EXPECT().Save(gomock.Any()).Return(nil).Times(3)
			},
			run: func(t *testing.T, service *Service) {
				first, err := service.AddSale("Caneta azul", amount("3.50"))
				require.NoError(t, err)

				second, err := service.AddSale("Caderno", amount("12.00"))
				require.NoError(t, err)

				third, err := service.AddSale("Borracha", amount("1.25"))
				require.NoError(t, err)

				assert.Equal(t, int64(1), first.ID)
				assert.Equal(t, int64(2), second.ID)
				assert.Equal(t, int64(3), third.ID)
				assert.Len(t, service.ListSales(), 3)
			},
		},
		{
			name:  "Deve rejeitar valor negativo sem tocar no livro-razão",
			setup: func(mockRepo *mocks.MockLedgerRepository) {},
			run: func(t *testing.T, service *Service) {
				record, err := service.AddSale("Caneta azul", amount("-1"))

				assert.Nil(t, record)
				assert.True(t, IsValidationError(err))
				assert.ErrorIs(t, err, domain.ErrNegativeAmount)
				assert.Empty(t, service.ListSales())
			},
		},
		{
			name:  "Deve rejeitar descrição vazia",
			setup: func(mockRepo *mocks.MockLedgerRepository) {},
			run: func(t *testing.T, service *Service) {
				record, err := service.AddSale("   ", amount("10"))

				assert.Nil(t, record)
				assert.True(t, IsValidationError(err))
				assert.ErrorIs(t, err, domain.ErrEmptyDescription)
				assert.Empty(t, service.ListSales())
			},
		},
		{
			name: "Deve aceitar venda de valor zero",
			setup: func(mockRepo *mocks.MockLedgerRepository) {
				mockRepo.EXPECT().Save(gomock.Any()).Return(nil)
			},
			run: func(t *testing.T, service *Service) {
				record, err := service.AddSale("Brinde", amount("0"))

				require.NoError(t, err)
				assert.True(t, record.Amount.IsZero())
			},
		},
		{
			name: "Deve remover espaços nas bordas da descrição",
			setup: func(mockRepo *mocks.MockLedgerRepository) {
				mockRepo.EXPECT().Save(gomock.Any()).Return(nil)
			},
			run: func(t *testing.T, service *Service) {
				record, err := service.AddSale("  Caneta azul  ", amount("3.50"))

				require.NoError(t, err)
				assert.Equal(t, "Caneta azul", record.Description)
			},
		},
		{
			name: "Deve descartar o registro quando a gravação falha",
			setup: func(mockRepo *mocks.MockLedgerRepository) {
				mockRepo.EXPECT().Save(gomock.Any()).Return(assert.AnError)
				mockRepo.EXPECT().Save(gomock.Any()).Return(nil)
			},
			run: func(t *testing.T, service *Service) {
				record, err := service.AddSale("Caneta azul", amount("3.50"))

				assert.Nil(t, record)
				assert.Error(t, err)
				assert.Empty(t, service.ListSales())

				// A venda seguinte reaproveita o identificador descartado
				retried, err := service.AddSale("Caneta azul", amount("3.50"))
				require.NoError(t, err)
				assert.Equal(t, int64(1), retried.ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockLedgerRepository(ctrl)
			tt.setup(mockRepo)

			tt.run(t, newLoadedService(mockRepo))
		})
	}
}

func TestAddSaleWithoutLoad(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := &Service{
		ledgerRepo: mocks.NewMockLedgerRepository(ctrl),
		ledger:     domain.NewLedger(),
	}

	record, err := service.AddSale("Caneta azul", amount("3.50"))

	assert.Nil(t, record)
	assert.ErrorIs(t, err, ErrLedgerNotLoaded)
}

func TestAddSaleAfterLoad(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	persisted := domain.NewLedger()
	persisted.Records = []*domain.SaleRecord{
		{
			ID:          1,
			Description: "Caneta azul",
			Amount:      amount("3.50"),
			Timestamp:   time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:          2,
			Description: "Caderno",
			Amount:      amount("12.00"),
			Timestamp:   time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC),
		},
	}
	persisted.NextID = 3

	mockRepo := mocks.NewMockLedgerRepository(ctrl)
	mockRepo.EXPECT().Load().Return(persisted, nil)
	mockRepo.EXPECT().Save(gomock.Any()).Return(nil)

	service := NewService(mockRepo)
	require.NoError(t, service.Load())

	record, err := service.AddSale("Borracha", amount("1.25"))

	require.NoError(t, err)
	assert.Equal(t, int64(3), record.ID)
	assert.Len(t, service.ListSales(), 3)
}

func TestLoadPropagatesFailure(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepository(ctrl)
	mockRepo.EXPECT().Load().Return(nil, assert.AnError)

	service := NewService(mockRepo)

	assert.Error(t, service.Load())
}

func TestDailyTotal(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepository(ctrl)
	mockRepo.EXPECT().Save(gomock.Any()).Return(nil).Times(3)

	service := newLoadedService(mockRepo)

	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	_, err := service.addSaleAt("Caneta azul", amount("3.50"), day.Add(10*time.Hour))
	require.NoError(t, err)

	_, err = service.addSaleAt("Caderno", amount("12.00"), day.Add(14*time.Hour))
	require.NoError(t, err)

	_, err = service.addSaleAt("Borracha", amount("5.00"), day.AddDate(0, 0, 1))
	require.NoError(t, err)

	assert.True(t, service.DailyTotal(day).Equal(amount("15.50")),
		"total do dia deveria ser 15.50, obtido %s", service.DailyTotal(day).String())
	assert.True(t, service.DailyTotal(day.AddDate(0, 0, 1)).Equal(amount("5.00")))
	assert.True(t, service.DailyTotal(day.AddDate(0, 0, 30)).IsZero())
}
