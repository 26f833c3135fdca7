// Command posterm is a command-line POS terminal for the restaurant API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-restaurant-pos/client"
	"go-restaurant-pos/config"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Restaurant POS terminal\n\n")
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  posterm tables\n")
	fmt.Fprintf(os.Stderr, "  posterm menu [-q TERM] [-category NAME|all] [-categories]\n")
	fmt.Fprintf(os.Stderr, "  posterm order -table ID [-add MENU_ID[:QTY]]... [-set MENU_ID:QTY]...\n")
	fmt.Fprintf(os.Stderr, "  posterm pay -order ID [-tax 0|5|10] [-method cash|card|digital]\n")
	fmt.Fprintf(os.Stderr, "  posterm bills\n")
	fmt.Fprintf(os.Stderr, "  posterm report -from YYYY-MM-DD -to YYYY-MM-DD\n\n")
	fmt.Fprintf(os.Stderr, "Environment:\n")
	fmt.Fprintf(os.Stderr, "  POS_API_URL   Backend base URL (default http://localhost:8000/api).\n")
	fmt.Fprintf(os.Stderr, "  POS_TOKEN     Staff token sent with every request.\n")
}

func main() {
	if len(os.Args) < 2 || os.Args[1] == "-h" || os.Args[1] == "--help" || os.Args[1] == "help" {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	t := &terminal{
		api:     client.New(cfg.APIURL, cfg.Token),
		profile: cfg.Profile,
		out:     os.Stdout,
	}
	if err := t.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
