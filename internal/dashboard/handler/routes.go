package handler

import (
	"context"

	"github.com/vfg2006/sales-tracker/internal/dashboard/console"
	"github.com/vfg2006/sales-tracker/internal/dashboard/handler/menu"
	"github.com/vfg2006/sales-tracker/internal/domain"
	"github.com/vfg2006/sales-tracker/internal/usecases/reporting"
	"github.com/vfg2006/sales-tracker/internal/usecases/selling"
	"github.com/vfg2006/sales-tracker/pkg/middleware"
)

// Sales monta as opções de venda do menu
func Sales(c *console.Console, tracker selling.SalesTracker, session *domain.Session) []menu.Option {
	return []menu.Option{
		{
			Key:     "1",
			Label:   "Registrar venda",
			Handler: AddSale(c, tracker),
			Middlewares: []middleware.Middleware{
				middleware.RequireSession(session),
			},
		},
		{
			Key:     "2",
			Label:   "Listar vendas",
			Handler: ListSales(c, tracker),
			Middlewares: []middleware.Middleware{
				middleware.RequireSession(session),
			},
		},
		{
			Key:     "3",
			Label:   "Total do dia",
			Handler: ShowDailyTotal(c, tracker),
			Middlewares: []middleware.Middleware{
				middleware.RequireSession(session),
			},
		},
	}
}

// Reports monta as opções de relatório do menu
func Reports(c *console.Console, reporter reporting.Reporter, session *domain.Session) []menu.Option {
	return []menu.Option{
		{
			Key:     "4",
			Label:   "Gerar relatório de vendas",
			Handler: GenerateReport(c, reporter),
			Middlewares: []middleware.Middleware{
				middleware.RequireSession(session),
			},
		},
	}
}

// Session monta a opção de encerramento do painel
func Session(c *console.Console, stop context.CancelFunc) []menu.Option {
	return []menu.Option{
		{
			Key:     "5",
			Label:   "Sair",
			Handler: Exit(c, stop),
		},
	}
}
