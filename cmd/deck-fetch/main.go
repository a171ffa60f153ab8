package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/handiism/deckdoctor/internal/app"
	"github.com/handiism/deckdoctor/internal/deckstore"
	ioutils "github.com/handiism/deckdoctor/internal/io"
	"github.com/handiism/deckdoctor/internal/render"
)

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return errors.New("usage: deck-fetch <moxfield_id_or_url> <deck_name>")
	}
	identifier := cmd.Args().Get(0)
	deckName := cmd.Args().Get(1)

	a, err := app.FromCommand(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	out := render.NewPrinter(os.Stdout)

	decksDir := a.Settings.DecksDir
	if dir := cmd.String("output"); dir != "" {
		decksDir = dir
	}

	_ = out.Line("Fetching deck from Moxfield: %s", identifier)
	deck, err := a.Moxfield.FetchDeck(ctx, identifier)
	if err != nil {
		return err
	}
	_ = out.Line("Loaded: %s", deck)

	deckDir := filepath.Join(decksDir, ioutils.SanitizeFileName(deckName))
	if err := deckstore.Save(deck, deckDir); err != nil {
		return err
	}
	a.Logger.Info("saved deck", zap.String("dir", deckDir), zap.Int("cards", len(deck.Cards)))
	_ = out.Line("Saved to: %s/", deckDir)

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := &cli.Command{
		Name:      "deck-fetch",
		Usage:     "Fetch a deck from Moxfield and save it locally",
		ArgsUsage: "<moxfield_id_or_url> <deck_name>",
		Action:    run,
		Flags: append(app.Flags(),
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Directory to save decks under (overrides decks_dir)",
			},
		),
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
