package main

import (
	"context"
	"log"
	"os"

	"github.com/Gabrielparizet/book-my-gigs-cli/internal/buildinfo"
	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/cli"
	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/config"
	"github.com/Gabrielparizet/book-my-gigs-cli/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
