package handler

import (
	"context"

	"github.com/pkg/errors"

	"github.com/vfg2006/sales-tracker/internal/dashboard/console"
	"github.com/vfg2006/sales-tracker/internal/usecases/reporting"
	"github.com/vfg2006/sales-tracker/pkg/middleware"
)

// GenerateReport gera o resumo diário das vendas e informa onde o
// arquivo foi gravado
func GenerateReport(c *console.Console, reporter reporting.Reporter) middleware.Action {
	return func(ctx context.Context) error {
		report, path, err := reporter.Generate()
		if err != nil {
			if errors.Is(err, reporting.ErrNoRecords) {
				c.Println("Nenhuma venda registrada. Registre vendas antes de gerar o relatório.")
			}

			return err
		}

		c.Printf("Relatório %s gerado com %d registro(s): %s\n",
			report.ID, report.TotalRecords, path)

		return nil
	}
}
