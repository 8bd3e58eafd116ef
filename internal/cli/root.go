package cli

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vfg2006/sales-tracker/pkg/cliErrors"
)

const (
	Major  = "1"
	Minor  = "0"
	Fix    = "0"
	Verbal = "Inicial"
)

var rootCmd = &cobra.Command{ //nolint:gochecknoglobals
	Use:           "tracker",
	Long:          "Tracker - Painel de acompanhamento de vendas da loja",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Run executa o comando raiz e padroniza a exibição de erros
func Run() error {
	if err := rootCmd.Execute(); err != nil {
		var cliErr *cliErrors.CLIError
		if errors.As(err, &cliErr) {
			cliErrors.WriteError(os.Stderr, cliErr.Code, cliErr.Message, cliErr.Details)
		} else {
			fmt.Fprintln(os.Stderr, "Erro:", err)
		}

		return err
	}

	return nil
}

var versionCmd = &cobra.Command{ //nolint:gochecknoglobals
	Use:   "version",
	Short: "Exibe a versão do painel.",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("Versão: %s.%s.%s %s\n", Major, Minor, Fix, Verbal)
	},
}

func init() { //nolint:gochecknoinits
	rootCmd.AddCommand(versionCmd)
}
