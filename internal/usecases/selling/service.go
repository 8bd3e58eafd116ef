package selling

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/sales-tracker/infrastructure/repository"
	"github.com/vfg2006/sales-tracker/internal/domain"
	"github.com/vfg2006/sales-tracker/pkg/log"
	"github.com/vfg2006/sales-tracker/pkg/utils"
)

// SalesTracker mantém o livro-razão de vendas em memória e o persiste
// a cada mutação
type SalesTracker interface {
	Load() error
	AddSale(description string, amount decimal.Decimal) (*domain.SaleRecord, error)
	ListSales() []*domain.SaleRecord
	DailyTotal(date time.Time) decimal.Decimal
}

type Service struct {
	ledgerRepo repository.LedgerRepository
	ledger     *domain.Ledger
	loaded     bool
}

func NewService(ledgerRepo repository.LedgerRepository) SalesTracker {
	return &Service{
		ledgerRepo: ledgerRepo,
		ledger:     domain.NewLedger(),
	}
}

// Load carrega o livro-razão persistido para a memória. Precisa ser
// chamado uma vez antes de registrar vendas.
func (s *Service) Load() error {
	ledger, err := s.ledgerRepo.Load()
	if err != nil {
		return err
	}

	s.ledger = ledger
	s.loaded = true

	log.L.WithFields(log.Fields{
		"records": len(ledger.Records),
		"next_id": ledger.NextID,
	}).Info("Livro-razão carregado")

	return nil
}

// AddSale valida e registra uma venda com o momento atual
func (s *Service) AddSale(description string, amount decimal.Decimal) (*domain.SaleRecord, error) {
	return s.addSaleAt(description, amount, time.Now())
}

// addSaleAt registra a venda com um timestamp específico
func (s *Service) addSaleAt(description string, amount decimal.Decimal, at time.Time) (*domain.SaleRecord, error) {
	if !s.loaded {
		return nil, ErrLedgerNotLoaded
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return nil, NewValidationError(domain.ErrEmptyDescription, "description", "informe uma descrição para a venda")
	}

	if amount.IsNegative() {
		return nil, NewValidationError(domain.ErrNegativeAmount, "amount", fmt.Sprintf("valor informado: %s", amount.String()))
	}

	record := &domain.SaleRecord{
		ID:          s.ledger.NextID,
		Description: description,
		Amount:      amount,
		Timestamp:   at,
	}

	s.ledger.Records = append(s.ledger.Records, record)
	s.ledger.NextID++

	if err := s.ledgerRepo.Save(s.ledger); err != nil {
		// O livro-razão em memória precisa refletir o que está em disco
		s.ledger.Records = s.ledger.Records[:len(s.ledger.Records)-1]
		s.ledger.NextID--

		return nil, fmt.Errorf("erro ao persistir a venda: %w", err)
	}

	log.L.WithFields(log.Fields{
		"sale_id":     record.ID,
		"sale_amount": utils.FormatAmount(record.Amount),
	}).Info("Venda registrada")

	return record, nil
}

// ListSales devolve as vendas na ordem em que foram registradas
func (s *Service) ListSales() []*domain.SaleRecord {
	records := make([]*domain.SaleRecord, len(s.ledger.Records))
	copy(records, s.ledger.Records)

	return records
}

// DailyTotal soma os valores das vendas registradas no dia informado.
// Dias sem vendas somam zero.
func (s *Service) DailyTotal(date time.Time) decimal.Decimal {
	total := decimal.Zero

	for _, record := range s.ledger.Records {
		if utils.EqualDate(record.Timestamp, date) {
			total = total.Add(record.Amount)
		}
	}

	return total
}
