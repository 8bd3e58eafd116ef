package dashboard

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sales-tracker/infrastructure/repository"
	"github.com/vfg2006/sales-tracker/infrastructure/storage/jsonfile"
	"github.com/vfg2006/sales-tracker/internal/config"
	"github.com/vfg2006/sales-tracker/internal/dashboard/console"
	"github.com/vfg2006/sales-tracker/internal/usecases/authenticating"
	"github.com/vfg2006/sales-tracker/internal/usecases/reporting"
	"github.com/vfg2006/sales-tracker/internal/usecases/selling"
	"github.com/vfg2006/sales-tracker/pkg/log"
)

func newTestDashboard(t *testing.T, script string) (*Dashboard, *bytes.Buffer, *config.Config) {
	t.Helper()
	log.SetupTestLogger()

	dir := t.TempDir()
	cfg := &config.Config{
		App: config.App{
			Environment: "test",
			LogLevel:    "error",
		},
		Auth: config.Auth{
			AdminPassword:    "segredo123",
			MaxLoginAttempts: 3,
		},
		Store: config.Store{
			DataFile:   filepath.Join(dir, "sales_data.json"),
			ReportsDir: filepath.Join(dir, "reports"),
		},
	}

	ledgerRepo := repository.NewLedgerRepository(jsonfile.New(cfg.Store.DataFile))
	tracker := selling.NewService(ledgerRepo)
	require.NoError(t, tracker.Load())

	out := &bytes.Buffer{}
	d, err := New(
		cfg,
		authenticating.NewService(cfg),
		tracker,
		reporting.NewService(tracker, cfg),
		WithConsole(console.NewWithStreams(strings.NewReader(script), out)),
	)
	require.NoError(t, err)

	return d, out, cfg
}

func TestRunFullSession(t *testing.T) {
	script := strings.Join([]string{
		"senha-errada",
		"segredo123",
		"1",
		"Caneta azul",
		"3,50",
		"1",
		"Caderno",
		"12.00",
		"2",
		"3",
		"",
		"4",
		"9",
		"5",
	}, "\n") + "\n"

	d, out, cfg := newTestDashboard(t, script)

	require.NoError(t, d.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "Senha incorreta. Tentativas restantes: 2")
	assert.Contains(t, output, "Login realizado com sucesso.")
	assert.Contains(t, output, "Venda #1 registrada com sucesso.")
	assert.Contains(t, output, "Venda #2 registrada com sucesso.")
	assert.Contains(t, output, "#1 | Caneta azul | R$ 3.50")
	assert.Contains(t, output, "#2 | Caderno | R$ 12.00")
	assert.Contains(t, output, "Total de vendas em")
	assert.Contains(t, output, "R$ 15.50")
	assert.Contains(t, output, "Relatório")
	assert.Contains(t, output, "Opção inválida. Escolha uma das opções do menu.")
	assert.Contains(t, output, "Até logo!")
	assert.True(t, d.Session().Authenticated)

	// As vendas sobrevivem a uma nova carga do arquivo
	reloaded := selling.NewService(repository.NewLedgerRepository(jsonfile.New(cfg.Store.DataFile)))
	require.NoError(t, reloaded.Load())

	records := reloaded.ListSales()
	require.Len(t, records, 2)
	assert.Equal(t, int64(1), records[0].ID)
	assert.Equal(t, "Caneta azul", records[0].Description)
	assert.Equal(t, int64(2), records[1].ID)
}

func TestRunRejectsInvalidSaleWithoutPersisting(t *testing.T) {
	script := strings.Join([]string{
		"segredo123",
		"1",
		"Caneta azul",
		"-1",
		"5",
	}, "\n") + "\n"

	d, out, cfg := newTestDashboard(t, script)

	require.NoError(t, d.Run(context.Background()))

	assert.Contains(t, out.String(), "Não foi possível registrar a venda")

	reloaded := selling.NewService(repository.NewLedgerRepository(jsonfile.New(cfg.Store.DataFile)))
	require.NoError(t, reloaded.Load())
	assert.Empty(t, reloaded.ListSales())
}

func TestRunFailsAfterLoginAttemptsExhausted(t *testing.T) {
	script := "errada1\nerrada2\nerrada3\n"

	d, out, _ := newTestDashboard(t, script)

	err := d.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, authenticating.ErrTooManyAttempts)
	assert.Contains(t, out.String(), "Número máximo de tentativas excedido")
	assert.False(t, d.Session().Authenticated)
}

func TestRunEndsCleanlyWhenInputEnds(t *testing.T) {
	d, _, _ := newTestDashboard(t, "segredo123\n")

	assert.NoError(t, d.Run(context.Background()))
}

func TestNewRequiresAllDependencies(t *testing.T) {
	_, err := New(nil, nil, nil, nil)

	assert.Error(t, err)
}
