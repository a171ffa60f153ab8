package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand_NoSubcommandIsUsageError(t *testing.T) {
	var out bytes.Buffer
	cmd := newCommand()
	cmd.Writer = &out

	err := cmd.Run(context.Background(), []string{"deck-recs"})
	require.ErrorIs(t, err, errUsage)
	assert.Contains(t, out.String(), "additions")
	assert.Contains(t, out.String(), "cuts")
}

func TestCommand_MissingArgument(t *testing.T) {
	var out bytes.Buffer
	cmd := newCommand()
	cmd.Writer = &out

	err := cmd.Run(context.Background(), []string{"deck-recs", "synergy"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage: deck-recs synergy <commander_name>")
}
