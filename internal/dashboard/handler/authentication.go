package handler

import (
	"fmt"

	"github.com/vfg2006/sales-tracker/internal/dashboard/console"
	"github.com/vfg2006/sales-tracker/internal/domain"
	"github.com/vfg2006/sales-tracker/internal/usecases/authenticating"
	"github.com/vfg2006/sales-tracker/pkg/cliErrors"
	"github.com/vfg2006/sales-tracker/pkg/log"
)

// Login conduz o fluxo de autenticação do painel. O usuário tem um
// número limitado de tentativas; esgotá-las encerra a sessão com erro.
func Login(c *console.Console, authenticator authenticating.Authenticator, session *domain.Session, maxAttempts int) error {
	c.Println("=== Painel de Vendas ===")

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		candidate, err := c.ReadPassword("Senha de administrador: ")
		if err != nil {
			return fmt.Errorf("erro ao ler a senha: %w", err)
		}

		session.LoginAttempts = attempt

		if authenticator.Authenticate(candidate) {
			session.Authenticated = true

			c.Println("Login realizado com sucesso.")
			log.L.WithFields(log.Fields{
				"session_id": session.ID,
				"attempts":   attempt,
			}).Info("Sessão autenticada")

			return nil
		}

		if remaining := maxAttempts - attempt; remaining > 0 {
			c.Printf("Senha incorreta. Tentativas restantes: %d\n", remaining)
		}
	}

	c.Println("Número máximo de tentativas excedido. Encerrando.")

	return authenticating.NewSessionAuthError(
		authenticating.ErrTooManyAttempts,
		cliErrors.ErrTooManyAttempts,
		session.ID,
		fmt.Sprintf("%d tentativas de login sem sucesso", maxAttempts),
	)
}
