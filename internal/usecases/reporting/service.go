package reporting

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/sales-tracker/internal/config"
	"github.com/vfg2006/sales-tracker/internal/domain"
	"github.com/vfg2006/sales-tracker/internal/usecases/selling"
	"github.com/vfg2006/sales-tracker/pkg/log"
	"github.com/vfg2006/sales-tracker/pkg/utils"
)

// ErrNoRecords indica que não há vendas para resumir
var ErrNoRecords = errors.New("nenhuma venda registrada para gerar o relatório")

// Reporter gera o resumo diário das vendas e o grava em arquivo de
// texto
type Reporter interface {
	Generate() (*domain.SalesReport, string, error)
}

type Service struct {
	tracker selling.SalesTracker
	cfg     *config.Config
}

func NewService(tracker selling.SalesTracker, cfg *config.Config) Reporter {
	return &Service{
		tracker: tracker,
		cfg:     cfg,
	}
}

// Generate monta o resumo das vendas agrupadas por dia e grava o
// relatório no diretório configurado. Devolve o relatório e o caminho
// do arquivo gerado.
func (s *Service) Generate() (*domain.SalesReport, string, error) {
	return s.generateAt(time.Now())
}

// generateAt gera o relatório com um momento de geração específico
func (s *Service) generateAt(generatedAt time.Time) (*domain.SalesReport, string, error) {
	records := s.tracker.ListSales()
	if len(records) == 0 {
		return nil, "", ErrNoRecords
	}

	report, err := buildReport(records, generatedAt)
	if err != nil {
		return nil, "", err
	}

	path, err := s.writeReport(report)
	if err != nil {
		return nil, "", err
	}

	log.L.WithFields(log.Fields{
		"records": report.TotalRecords,
		"days":    len(report.Days),
	}).Info("Relatório de vendas gerado")

	return report, path, nil
}

// buildReport agrupa as vendas por dia, na ordem em que cada dia
// aparece no livro-razão
func buildReport(records []*domain.SaleRecord, generatedAt time.Time) (*domain.SalesReport, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar o identificador do relatório: %w", err)
	}

	days := make([]*domain.DailyTotal, 0)
	index := make(map[string]*domain.DailyTotal)

	for _, record := range records {
		key := utils.FormatDay(record.Timestamp)

		day, exists := index[key]
		if !exists {
			day = &domain.DailyTotal{
				Day: time.Date(
					record.Timestamp.Year(),
					record.Timestamp.Month(),
					record.Timestamp.Day(),
					0, 0, 0, 0,
					record.Timestamp.Location(),
				),
				Total: decimal.Zero,
			}
			index[key] = day
			days = append(days, day)
		}

		day.Quantity++
		day.Total = day.Total.Add(record.Amount)
	}

	return &domain.SalesReport{
		ID:           id,
		GeneratedAt:  generatedAt,
		TotalRecords: len(records),
		Days:         days,
	}, nil
}

// writeReport grava o relatório em texto no diretório configurado
func (s *Service) writeReport(report *domain.SalesReport) (string, error) {
	if err := os.MkdirAll(s.cfg.Store.ReportsDir, 0o700); err != nil {
		return "", fmt.Errorf("erro ao criar o diretório de relatórios %s: %w", s.cfg.Store.ReportsDir, err)
	}

	filename := fmt.Sprintf("sales_report_%s.txt", report.GeneratedAt.Format("20060102_150405"))
	path := filepath.Join(s.cfg.Store.ReportsDir, filename)

	if err := os.WriteFile(path, []byte(renderReport(report)), 0o600); err != nil {
		return "", fmt.Errorf("erro ao gravar o relatório em %s: %w", path, err)
	}

	return path, nil
}

// renderReport formata o relatório em texto simples
func renderReport(report *domain.SalesReport) string {
	var b strings.Builder

	b.WriteString("=== Relatório de Vendas ===\n")
	b.WriteString(fmt.Sprintf("Código: %s\n", report.ID))
	b.WriteString(fmt.Sprintf("Gerado em: %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("Total de registros: %d\n", report.TotalRecords))
	b.WriteString("\nTotais diários:\n")

	for _, day := range report.Days {
		b.WriteString(fmt.Sprintf("- %s: %d venda(s), R$ %s\n",
			utils.FormatDay(day.Day), day.Quantity, utils.FormatAmount(day.Total)))
	}

	return b.String()
}
