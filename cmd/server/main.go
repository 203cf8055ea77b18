package main

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eligiorbautista/niyoghub-server/internal/config"
	"github.com/eligiorbautista/niyoghub-server/internal/repository/postgres"
)

func main() {
	root := &cobra.Command{
		Use:   "niyoghub-server",
		Short: "Community platform backend with realtime message and notification delivery",
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and websocket server",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := InitializeApp()
			if err != nil {
				return err
			}
			defer cleanup()

			app.Logger.Info("server starting", zap.String("addr", app.Config.ListenAddr))
			return http.ListenAndServe(app.Config.ListenAddr, app.Router)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			return postgres.RunMigrations(cfg.PostgresURL, cfg.MigrationsURL)
		},
	})

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
