package main

import (
	"os"

	"github.com/vfg2006/sales-tracker/internal/cli"
	"github.com/vfg2006/sales-tracker/pkg/cliErrors"
)

func main() {
	if err := cli.Run(); err != nil {
		os.Exit(cliErrors.ExitCode(err))
	}
}
