package authenticating

import (
	"github.com/vfg2006/sales-tracker/internal/config"
	"github.com/vfg2006/sales-tracker/pkg/log"
)

// Authenticator é o portão de entrada do painel: compara a senha
// informada com o segredo configurado.
type Authenticator interface {
	Authenticate(candidate string) bool
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{cfg: cfg}
}

// Authenticate verifica a senha do administrador. A comparação é
// exata: espaços e diferenças de caixa fazem a senha ser recusada, e
// nada é normalizado antes da comparação.
func (s *Service) Authenticate(candidate string) bool {
	if s.cfg.Auth.AdminPassword == "" {
		log.L.Warn("Senha de administrador não configurada; acesso negado")
		return false
	}

	authenticated := candidate == s.cfg.Auth.AdminPassword
	if !authenticated {
		log.L.Debug("Tentativa de login com senha incorreta")
	}

	return authenticated
}
