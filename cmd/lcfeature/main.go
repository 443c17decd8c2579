// Command lcfeature computes light curve feature descriptors and dm-dt
// density maps from CSV/XLSX/JSON light curves. Each subcommand is a
// newXxxCmd() constructor returning a *cobra.Command with its RunE closure
// over locally-bound flag variables.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"lightcurve/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lcfeature",
		Short: "Compute light curve features and dm-dt density maps",
	}

	rootCmd.AddCommand(
		newFeaturesCmd(),
		newDmDtCmd(),
		newServeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runLogger(runID uuid.UUID) *log.Logger {
	return log.New(os.Stderr, fmt.Sprintf("[lcfeature %s] ", runID.String()[:8]), log.LstdFlags)
}

func loadConfigOrExit() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
