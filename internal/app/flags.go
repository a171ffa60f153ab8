package app

import (
	"context"

	"github.com/urfave/cli/v3"
)

// Flag names shared by every command.
const (
	ConfigFlag  = "config"
	VerboseFlag = "verbose"
)

// DefaultConfigPath is used when neither --config nor DECKDOCTOR_CONFIG is set.
const DefaultConfigPath = "deckdoctor.yaml"

// Flags returns the --config and --verbose flags.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        ConfigFlag,
			Aliases:     []string{"c"},
			Usage:       "Path to config file",
			DefaultText: DefaultConfigPath,
			Value:       DefaultConfigPath,
			Sources:     cli.EnvVars("DECKDOCTOR_CONFIG"),
		},
		&cli.BoolFlag{
			Name:    VerboseFlag,
			Aliases: []string{"v"},
			Usage:   "Log debug output to stderr",
			Sources: cli.EnvVars("DECKDOCTOR_VERBOSE"),
		},
	}
}

// FromCommand loads the App from the flags returned by Flags.
func FromCommand(_ context.Context, cmd *cli.Command) (*App, error) {
	return Load(cmd.String(ConfigFlag), cmd.Bool(VerboseFlag))
}
