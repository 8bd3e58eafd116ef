package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vfg2006/sales-tracker/infrastructure/repository"
	"github.com/vfg2006/sales-tracker/infrastructure/storage/jsonfile"
	"github.com/vfg2006/sales-tracker/internal/config"
	"github.com/vfg2006/sales-tracker/internal/dashboard"
	"github.com/vfg2006/sales-tracker/internal/usecases/authenticating"
	"github.com/vfg2006/sales-tracker/internal/usecases/reporting"
	"github.com/vfg2006/sales-tracker/internal/usecases/selling"
	"github.com/vfg2006/sales-tracker/pkg/cliErrors"
	"github.com/vfg2006/sales-tracker/pkg/log"
)

var dashboardCmd = &cobra.Command{ //nolint:gochecknoglobals
	Use:   "dashboard",
	Short: "Inicia o painel interativo de vendas.",
	RunE: func(_ *cobra.Command, _ []string) error {
		configureLogger()

		cfg, err := config.NewConfig()
		if err != nil {
			return cliErrors.FromError(err, cliErrors.ErrInternal)
		}

		applyLogLevel(cfg)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store := jsonfile.New(cfg.Store.DataFile)
		ledgerRepo := repository.NewLedgerRepository(store)

		tracker := selling.NewService(ledgerRepo)
		if err := tracker.Load(); err != nil {
			return translateStartupError(err)
		}

		authenticator := authenticating.NewService(cfg)
		reporter := reporting.NewService(tracker, cfg)

		d, err := dashboard.New(cfg, authenticator, tracker, reporter)
		if err != nil {
			return cliErrors.FromError(err, cliErrors.ErrInternal)
		}

		if err := d.Run(ctx); err != nil {
			return translateRunError(err)
		}

		return nil
	},
}

func init() { //nolint:gochecknoinits
	rootCmd.AddCommand(dashboardCmd)
}

// configureLogger configura o formato dos logs da aplicação
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.SetOutput(os.Stderr)
}

// applyLogLevel aplica o nível de log configurado, caindo para info
// quando o valor é inválido
func applyLogLevel(cfg *config.Config) {
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
	log.L.Debugf("Nível de log configurado para: %s", logLevel)
}

// translateStartupError converte falhas de carga do livro-razão em
// erros com código de saída próprio
func translateStartupError(err error) error {
	if repository.IsCorruptStoreError(err) {
		return &cliErrors.CLIError{
			Code:    cliErrors.ErrCorruptStore,
			Message: "O arquivo de dados está corrompido e não será sobrescrito",
			Details: err.Error(),
		}
	}

	return &cliErrors.CLIError{
		Code:    cliErrors.ErrStorageOperation,
		Message: "Não foi possível carregar o arquivo de dados",
		Details: err.Error(),
	}
}

// translateRunError preserva o código de erros de autenticação e
// padroniza o restante
func translateRunError(err error) error {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) && authErr.Code != "" {
		return cliErrors.FromError(err, authErr.Code)
	}

	return cliErrors.FromError(err, cliErrors.ErrInternal)
}
