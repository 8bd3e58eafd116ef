package middleware

import "context"

// Action é uma operação do painel disparada por uma opção do menu
type Action func(ctx context.Context) error

// Middleware envolve uma Action com comportamento adicional
type Middleware func(Action) Action

// Chain aplica os middlewares à ação do último para o primeiro, de
// modo que o primeiro da lista fique mais externo
func Chain(action Action, middlewares ...Middleware) Action {
	for i := len(middlewares) - 1; i >= 0; i-- {
		action = middlewares[i](action)
	}

	return action
}
