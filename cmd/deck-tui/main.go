package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/handiism/deckdoctor/internal/app"
	"github.com/handiism/deckdoctor/internal/tui"
)

func run(ctx context.Context, cmd *cli.Command) error {
	a, err := app.FromCommand(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	return tui.Run(a)
}

func main() {
	cmd := &cli.Command{
		Name:   "deck-tui",
		Usage:  "Analyze a saved deck interactively",
		Action: run,
		Flags:  app.Flags(),
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
