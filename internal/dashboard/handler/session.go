package handler

import (
	"context"

	"github.com/vfg2006/sales-tracker/internal/dashboard/console"
	"github.com/vfg2006/sales-tracker/pkg/middleware"
)

// Exit encerra o painel cancelando o contexto da sessão. O laço do
// menu percebe o cancelamento e finaliza com sucesso.
func Exit(c *console.Console, stop context.CancelFunc) middleware.Action {
	return func(ctx context.Context) error {
		c.Println("Até logo!")
		stop()

		return nil
	}
}
