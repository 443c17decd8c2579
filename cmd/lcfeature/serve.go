package main

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"lightcurve/adapters/httpapi"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server exposing the feature and dm-dt engines",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfigOrExit()
			logger := runLogger(uuid.New())

			addr := fmt.Sprintf(":%s", cfg.Server.Port)
			logger.Printf("listening on %s", addr)
			return http.ListenAndServe(addr, httpapi.Router(defaultExtractor()))
		},
	}
	return cmd
}
