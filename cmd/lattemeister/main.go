package main

import (
	"context"
	"log"

	"github.com/baristalab/lattemeister/internal/cli"
	"github.com/baristalab/lattemeister/internal/config"
	"github.com/baristalab/lattemeister/internal/logger"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	l, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer l.Sync()

	app, err := cli.NewApp(cfg, l)
	if err != nil {
		l.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
