package dashboard

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/vfg2006/sales-tracker/infrastructure/repository"
	"github.com/vfg2006/sales-tracker/internal/config"
	"github.com/vfg2006/sales-tracker/internal/dashboard/console"
	"github.com/vfg2006/sales-tracker/internal/dashboard/handler"
	"github.com/vfg2006/sales-tracker/internal/dashboard/handler/menu"
	"github.com/vfg2006/sales-tracker/internal/domain"
	"github.com/vfg2006/sales-tracker/internal/usecases/authenticating"
	"github.com/vfg2006/sales-tracker/internal/usecases/reporting"
	"github.com/vfg2006/sales-tracker/internal/usecases/selling"
	"github.com/vfg2006/sales-tracker/pkg/cliErrors"
	"github.com/vfg2006/sales-tracker/pkg/log"
	"github.com/vfg2006/sales-tracker/pkg/middleware"
)

// Dashboard é a superfície interativa do painel: o fluxo de login
// seguido do laço do menu
type Dashboard struct {
	cfg           *config.Config
	authenticator authenticating.Authenticator
	tracker       selling.SalesTracker
	reporter      reporting.Reporter
	console       *console.Console
	session       *domain.Session
}

type Option func(*Dashboard)

// WithConsole substitui o console padrão, útil para sessões
// roteirizadas em testes
func WithConsole(c *console.Console) Option {
	return func(d *Dashboard) {
		d.console = c
	}
}

func New(
	cfg *config.Config,
	authenticator authenticating.Authenticator,
	tracker selling.SalesTracker,
	reporter reporting.Reporter,
	opts ...Option,
) (*Dashboard, error) {
	if cfg == nil || authenticator == nil || tracker == nil || reporter == nil {
		return nil, errors.New("dependências do painel incompletas")
	}

	d := &Dashboard{
		cfg:           cfg,
		authenticator: authenticator,
		tracker:       tracker,
		reporter:      reporter,
		console:       console.New(),
		session:       domain.NewSession(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

// Session expõe a sessão corrente do painel
func (d *Dashboard) Session() *domain.Session {
	return d.session
}

// Run executa o login e o laço do menu até o usuário sair ou o
// contexto ser cancelado
func (d *Dashboard) Run(ctx context.Context) error {
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	log.L.WithField("session_id", d.session.ID).Info("Painel iniciado")

	if err := handler.Login(d.console, d.authenticator, d.session, d.cfg.Auth.MaxLoginAttempts); err != nil {
		return err
	}

	m := menu.New(
		menu.WithOptions(handler.Sales(d.console, d.tracker, d.session)...),
		menu.WithOptions(handler.Reports(d.console, d.reporter, d.session)...),
		menu.WithOptions(handler.Session(d.console, stop)...),
		menu.WithMiddlewares(
			middleware.LogPanicMiddleware(),
			middleware.LoggingMiddleware(),
		),
	)

	for {
		select {
		case <-ctx.Done():
			log.L.WithField("session_id", d.session.ID).Info("Sessão encerrada")
			return nil
		default:
		}

		d.renderMenu(m)

		choice, err := d.console.ReadLine("Escolha uma opção: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				// O fim da entrada encerra a sessão como uma saída normal
				return nil
			}

			return fmt.Errorf("erro ao ler a opção do menu: %w", err)
		}

		if err := m.Dispatch(ctx, strings.TrimSpace(choice)); err != nil {
			d.handleDispatchError(err)
		}
	}
}

func (d *Dashboard) renderMenu(m menu.Menu) {
	d.console.Println()
	d.console.Println("=== Painel Administrativo ===")

	for _, option := range m.Options() {
		d.console.Printf("%s. %s\n", option.Key, option.Label)
	}
}

// handleDispatchError separa erros já comunicados ao usuário pelos
// handlers de falhas que precisam de destaque. Nenhum erro aqui
// derruba o laço do menu.
func (d *Dashboard) handleDispatchError(err error) {
	switch {
	case errors.Is(err, menu.ErrUnknownOption):
		d.console.Println("Opção inválida. Escolha uma das opções do menu.")

	case selling.IsValidationError(err), errors.Is(err, reporting.ErrNoRecords):
		// O handler já orientou o usuário

	case authenticating.IsSessionError(err):
		cliErrors.WriteError(d.console.Writer(), cliErrors.ErrNotAuthenticated,
			"Esta opção exige autenticação", nil)

	default:
		code := cliErrors.ErrInternal

		var authErr *authenticating.AuthError
		switch {
		case repository.IsCorruptStoreError(err):
			code = cliErrors.ErrCorruptStore
		case errors.As(err, &authErr):
			code = authErr.Code
		}

		cliErrors.WriteError(d.console.Writer(), code,
			"Não foi possível concluir a operação", err.Error())
	}
}
