package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/sales-tracker/internal/dashboard/console"
	"github.com/vfg2006/sales-tracker/internal/usecases/selling"
	"github.com/vfg2006/sales-tracker/pkg/middleware"
	"github.com/vfg2006/sales-tracker/pkg/utils"
)

// AddSale conduz o registro de uma nova venda: pergunta a descrição e
// o valor, valida e confirma o registro
func AddSale(c *console.Console, tracker selling.SalesTracker) middleware.Action {
	return func(ctx context.Context) error {
		description, err := c.ReadLine("Descrição da venda: ")
		if err != nil {
			return fmt.Errorf("erro ao ler a descrição: %w", err)
		}

		amountInput, err := c.ReadLine("Valor da venda (R$): ")
		if err != nil {
			return fmt.Errorf("erro ao ler o valor: %w", err)
		}

		amount, err := utils.ParseAmount(amountInput)
		if err != nil {
			c.Println("Valor inválido. Use números com ponto ou vírgula, por exemplo: 3,50.")
			return selling.NewValidationError(selling.ErrInvalidAmountFormat, "amount", amountInput)
		}

		record, err := tracker.AddSale(description, amount)
		if err != nil {
			var validationErr *selling.ValidationError
			if errors.As(err, &validationErr) {
				c.Printf("Não foi possível registrar a venda: %s.\n", validationErr.Err.Error())
			}

			return err
		}

		c.Printf("Venda #%d registrada com sucesso.\n", record.ID)

		return nil
	}
}

// ListSales exibe as vendas na ordem em que foram registradas
func ListSales(c *console.Console, tracker selling.SalesTracker) middleware.Action {
	return func(ctx context.Context) error {
		records := tracker.ListSales()
		if len(records) == 0 {
			c.Println("Nenhuma venda registrada.")
			return nil
		}

		c.Println("=== Vendas Registradas ===")
		for _, record := range records {
			c.Printf("#%d | %s | R$ %s | %s\n",
				record.ID,
				record.Description,
				utils.FormatAmount(record.Amount),
				record.Timestamp.Format("2006-01-02 15:04:05"),
			)
		}

		return nil
	}
}

// ShowDailyTotal pergunta o dia desejado e exibe a soma das vendas.
// Uma data vazia usa o dia atual.
func ShowDailyTotal(c *console.Console, tracker selling.SalesTracker) middleware.Action {
	return func(ctx context.Context) error {
		input, err := c.ReadLine("Data (AAAA-MM-DD, vazio para hoje): ")
		if err != nil {
			return fmt.Errorf("erro ao ler a data: %w", err)
		}

		date := time.Now()

		if trimmed := strings.TrimSpace(input); trimmed != "" {
			date, err = utils.ParseDate(trimmed)
			if err != nil {
				c.Println("Data inválida. Use o formato AAAA-MM-DD, por exemplo: 2024-01-15.")
				return selling.NewValidationError(selling.ErrInvalidDateFormat, "date", input)
			}
		}

		total := tracker.DailyTotal(date)
		c.Printf("Total de vendas em %s: R$ %s\n", utils.FormatDay(date), utils.FormatAmount(total))

		return nil
	}
}
