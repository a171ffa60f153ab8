package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/handiism/deckdoctor/internal/app"
	"github.com/handiism/deckdoctor/internal/apperr"
	"github.com/handiism/deckdoctor/internal/deckstore"
	"github.com/handiism/deckdoctor/internal/render"
)

const usage = "usage: deck-guides <commander_name>\n       deck-guides --deck <deck_dir>"

func run(ctx context.Context, cmd *cli.Command) error {
	deckDir := cmd.String("deck")
	if (deckDir == "") == (cmd.Args().Len() == 0) || cmd.Args().Len() > 1 {
		return errors.New(usage)
	}

	a, err := app.FromCommand(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	commander := cmd.Args().First()
	if deckDir != "" {
		deck, err := deckstore.Load(deckDir)
		if err != nil {
			return err
		}
		if !deck.HasCommander() {
			return fmt.Errorf("%s: %w", deckDir, apperr.ErrNoCommander)
		}
		commander = deck.Commanders()[0].Name
	}

	out := render.NewPrinter(os.Stdout)
	_ = out.Line("Searching for guides: %s", commander)

	return out.Guides(a.Guides.AllGuides(ctx, commander))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := &cli.Command{
		Name:      "deck-guides",
		Usage:     "Find strategy guides for a commander",
		ArgsUsage: "<commander_name>",
		Action:    run,
		Flags: append(app.Flags(),
			&cli.StringFlag{
				Name:    "deck",
				Aliases: []string{"d"},
				Usage:   "Read the commander from a saved deck directory",
			},
		),
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
