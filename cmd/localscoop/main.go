// cmd/localscoop/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	app "localscoop/internal"
)

// main migrates the schema, checks the data layer end to end and exits.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Create and initialize the application
	application := app.NewApplication()
	if err := application.Initialize(ctx); err != nil {
		application.Logger.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	exitCode := 0
	categories, err := application.CatalogService.GetAllCategories(ctx)
	if err != nil {
		application.Logger.Error("Data layer check failed", "error", err)
		exitCode = 1
	} else {
		application.Logger.Info("Data layer ready", "categories", len(categories))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		application.Logger.Error("Application shutdown failed", "error", err)
		exitCode = 1
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
