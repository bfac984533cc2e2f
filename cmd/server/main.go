package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/gophposts/internal/server"
	"github.com/dmitrijs2005/gophposts/internal/server/config"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; anything else in it is not.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("error loading .env: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		os.Exit(1)
	}
}
