package middleware

import (
	"context"

	"github.com/vfg2006/sales-tracker/internal/domain"
	"github.com/vfg2006/sales-tracker/internal/usecases/authenticating"
	"github.com/vfg2006/sales-tracker/pkg/cliErrors"
)

type contextKey string

const (
	ContextKeySession contextKey = "session"
	ContextKeyOption  contextKey = "option"
)

// RequireSession bloqueia ações protegidas enquanto a sessão não
// passou pelo portão de login. Sessões autenticadas são injetadas no
// contexto da ação.
func RequireSession(session *domain.Session) Middleware {
	return func(next Action) Action {
		return func(ctx context.Context) error {
			if session == nil {
				return authenticating.NewAuthError(
					authenticating.ErrNotAuthenticated,
					cliErrors.ErrNotAuthenticated,
					"nenhuma sessão ativa",
				)
			}

			if !session.Authenticated {
				return authenticating.NewSessionAuthError(
					authenticating.ErrNotAuthenticated,
					cliErrors.ErrNotAuthenticated,
					session.ID,
					"autentique-se para acessar esta opção",
				)
			}

			ctx = context.WithValue(ctx, ContextKeySession, session)
			return next(ctx)
		}
	}
}

// SessionFromContext devolve a sessão da ação atual, quando houver
func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(ContextKeySession).(*domain.Session)
	return session, ok
}

// WithOption anota o contexto com a opção do menu em execução
func WithOption(ctx context.Context, option string) context.Context {
	return context.WithValue(ctx, ContextKeyOption, option)
}

// OptionFromContext devolve o rótulo da opção do menu em execução
func OptionFromContext(ctx context.Context) string {
	if option, ok := ctx.Value(ContextKeyOption).(string); ok {
		return option
	}

	return ""
}
