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
)

var errUsage = errors.New("usage: deck-recs <synergy|top|additions|analyze|cuts> <arg>")

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "deck-recs",
		Usage: "EDHREC recommendations and deck analysis",
		Commands: []*cli.Command{
			synergyCommand(),
			topCommand(),
			additionsCommand(),
			analyzeCommand(),
			cutsCommand(),
		},
		// reached only when no subcommand was given
		Action: func(_ context.Context, cmd *cli.Command) error {
			if err := cli.ShowAppHelp(cmd); err != nil {
				return err
			}
			return errUsage
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
