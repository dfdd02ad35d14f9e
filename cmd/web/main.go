package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"gridview/internal/app"
)

func main() {
	configFile := flag.String("config", "config.yaml", "path to the YAML config file (optional)")
	flag.Parse()

	application, err := app.NewApplication(*configFile)
	if err != nil {
		slog.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}

	if err := application.Run(context.Background()); err != nil {
		application.Logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}
