package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/gophtasks/internal/logging"
	"github.com/dmitrijs2005/gophtasks/internal/server"
	"github.com/dmitrijs2005/gophtasks/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(os.Stdout, cfg.LogLevel, true)

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	app.Run(ctx)

}
