package main

import (
	"context"
	"fmt"
	"log"

	"socialpulse/internal/client/cli"
	"socialpulse/internal/client/config"
)

func main() {
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)

	fmt.Println("SocialPulse dashboard (type 'help' for commands)")
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}
