//go:build term

package main

import (
	"flag"
	"log"

	"ashfall/internal/termview"
)

func main() {
	cfg := termview.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	app, err := termview.New(*cfg)
	if err != nil {
		log.Fatal(err)
	}
	app.Run()
}
