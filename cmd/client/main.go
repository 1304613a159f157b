package main

import (
	"context"
	"log"

	"github.com/balahero03/Zero-Trust-Share-sub000/internal/client/cli"
	"github.com/balahero03/Zero-Trust-Share-sub000/internal/client/config"
)

func main() {

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())

}
