package menu

import (
	"context"
	"errors"

	"github.com/vfg2006/sales-tracker/pkg/middleware"
)

// ErrUnknownOption indica uma escolha fora das opções do menu
var ErrUnknownOption = errors.New("opção desconhecida")

var (
	// WithOptions registra opções no menu
	WithOptions = func(options ...Option) ConfigMenu {
		return func(menu *Menu) {
			menu.AddOptions(options...)
		}
	}

	// WithMiddlewares registra middlewares aplicados a todas as opções
	WithMiddlewares = func(middlewares ...middleware.Middleware) ConfigMenu {
		return func(menu *Menu) {
			menu.middlewares = append(menu.middlewares, middlewares...)
		}
	}
)

// Option é uma entrada do menu interativo
type Option struct {
	Key         string
	Label       string
	Handler     middleware.Action
	Middlewares []middleware.Middleware // Middlewares específicos desta opção
}

// Menu despacha as escolhas do usuário para os handlers registrados
type Menu struct {
	options     map[string]Option
	order       []string
	middlewares []middleware.Middleware
}

type ConfigMenu func(menu *Menu)

func New(configs ...ConfigMenu) Menu {
	menu := &Menu{
		options: make(map[string]Option),
	}

	for _, config := range configs {
		config(menu)
	}

	return *menu
}

// AddOptions registra opções preservando a ordem de chegada, que é a
// ordem de exibição
func (m *Menu) AddOptions(options ...Option) {
	for _, option := range options {
		if _, exists := m.options[option.Key]; !exists {
			m.order = append(m.order, option.Key)
		}

		m.options[option.Key] = option
	}
}

// Options devolve as opções na ordem de registro
func (m Menu) Options() []Option {
	options := make([]Option, 0, len(m.order))
	for _, key := range m.order {
		options = append(options, m.options[key])
	}

	return options
}

// Dispatch executa a opção identificada pela chave, aplicando os
// middlewares do menu por fora dos middlewares da própria opção
func (m Menu) Dispatch(ctx context.Context, key string) error {
	option, exists := m.options[key]
	if !exists {
		return ErrUnknownOption
	}

	ctx = middleware.WithOption(ctx, option.Label)

	action := middleware.Chain(option.Handler, option.Middlewares...)
	action = middleware.Chain(action, m.middlewares...)

	return action(ctx)
}
