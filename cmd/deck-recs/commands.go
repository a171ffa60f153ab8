package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/handiism/deckdoctor/internal/app"
	"github.com/handiism/deckdoctor/internal/deckstore"
	"github.com/handiism/deckdoctor/internal/model"
	"github.com/handiism/deckdoctor/internal/render"
)

const limitFlag = "limit"

func commandFlags() []cli.Flag {
	return append(app.Flags(),
		&cli.IntFlag{
			Name:    limitFlag,
			Aliases: []string{"n"},
			Usage:   "Maximum number of cards to print (0 uses the configured limit)",
		},
	)
}

// limit returns --limit, or fallback when the flag is not positive.
func limit(cmd *cli.Command, fallback int) int {
	if n := int(cmd.Int(limitFlag)); n > 0 {
		return n
	}
	return fallback
}

// singleArg returns the only positional argument or a usage error.
func singleArg(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() != 1 {
		return "", fmt.Errorf("usage: deck-recs %s %s", cmd.Name, cmd.ArgsUsage)
	}
	return cmd.Args().First(), nil
}

func synergyCommand() *cli.Command {
	return &cli.Command{
		Name:      "synergy",
		Usage:     "High synergy cards for a commander",
		ArgsUsage: "<commander_name>",
		Flags:     commandFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			commander, err := singleArg(cmd)
			if err != nil {
				return err
			}
			a, err := app.FromCommand(ctx, cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			recs, err := a.Engine().RecommendationsForCommander(ctx, commander, nil,
				limit(cmd, a.Settings.Recommendations.Limit))
			if err != nil {
				return err
			}
			return render.NewPrinter(os.Stdout).Recommendations(recs, "High synergy cards for "+commander)
		},
	}
}

func topCommand() *cli.Command {
	return &cli.Command{
		Name:      "top",
		Usage:     "Most played cards for a commander",
		ArgsUsage: "<commander_name>",
		Flags:     commandFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			commander, err := singleArg(cmd)
			if err != nil {
				return err
			}
			a, err := app.FromCommand(ctx, cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			recs, err := a.Engine().TopCardsForCommander(ctx, commander, nil,
				limit(cmd, a.Settings.Recommendations.Limit))
			if err != nil {
				return err
			}
			return render.NewPrinter(os.Stdout).Recommendations(recs, "Top cards for "+commander)
		},
	}
}

func additionsCommand() *cli.Command {
	return &cli.Command{
		Name:      "additions",
		Usage:     "Suggest cards to add to a saved deck",
		ArgsUsage: "<deck_dir>",
		Flags:     commandFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, deck, err := loadDeck(ctx, cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			out := render.NewPrinter(os.Stdout)
			_ = out.Line("Loaded deck: %s", deck)

			recs, err := a.Engine().SuggestAdditions(ctx, deck,
				limit(cmd, a.Settings.Recommendations.AdditionsLimit))
			if err != nil {
				return err
			}
			_ = out.Line("Commander: %s", deck.Commanders()[0].Name)
			return out.Recommendations(recs, "Suggested additions for "+deck.Name)
		},
	}
}

func analyzeCommand() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "Find low synergy and off-theme cards in a saved deck",
		ArgsUsage: "<deck_dir>",
		Flags:     app.Flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, deck, err := loadDeck(ctx, cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			out := render.NewPrinter(os.Stdout)
			_ = out.Line("Analyzing: %s\n", deck)

			analysis, err := a.Analyzer().AnalyzeDeck(ctx, deck)
			if err != nil {
				return err
			}
			return out.Analysis(analysis)
		},
	}
}

func cutsCommand() *cli.Command {
	return &cli.Command{
		Name:      "cuts",
		Usage:     "Suggest cards to cut from a saved deck",
		ArgsUsage: "<deck_dir>",
		Flags:     commandFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, deck, err := loadDeck(ctx, cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			cuts, err := a.Analyzer().SuggestCuts(ctx, deck,
				limit(cmd, a.Settings.Recommendations.CutsLimit))
			if err != nil {
				return err
			}
			return render.NewPrinter(os.Stdout).Cuts(cuts, "Suggested cuts for "+deck.Name)
		},
	}
}

func loadDeck(ctx context.Context, cmd *cli.Command) (*app.App, *model.Deck, error) {
	dir, err := singleArg(cmd)
	if err != nil {
		return nil, nil, err
	}
	a, err := app.FromCommand(ctx, cmd)
	if err != nil {
		return nil, nil, err
	}
	deck, err := deckstore.Load(dir)
	if err != nil {
		a.Close()
		return nil, nil, err
	}
	return a, deck, nil
}
