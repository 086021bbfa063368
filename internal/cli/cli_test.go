// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, exit, err := Parse([]string{"cards/"}, out)

	require.NoError(t, err)
	require.False(t, exit)
	assert.Equal(t, "cards/", cfg.CardPath)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 4, cfg.WorkerCount)
	assert.Equal(t, "drop", cfg.UnknownPolicy)
	assert.Equal(t, "json", cfg.Output)
	assert.False(t, cfg.ListTypes)
}

func TestParse_EnvDefaultsAndFlagOverrides(t *testing.T) {
	t.Setenv("CARDPARSE_LOG_LEVEL", "debug")
	t.Setenv("CARDPARSE_WORKERS", "8")
	t.Setenv("CARDPARSE_UNKNOWN", "keep")
	t.Setenv("CARDPARSE_OUTPUT", "yaml")

	cfg, exit, err := Parse([]string{"-workers", "2", "-unknown", "ERROR", "card.json"}, &bytes.Buffer{})

	require.NoError(t, err)
	require.False(t, exit)
	assert.Equal(t, "debug", cfg.LogLevel, "env default should apply")
	assert.Equal(t, "yaml", cfg.Output, "env default should apply")
	assert.Equal(t, 2, cfg.WorkerCount, "flag should override env")
	assert.Equal(t, "error", cfg.UnknownPolicy, "flag values are lower-cased")
}

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, exit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "-list-types")
}

func TestParse_NoPathPrintsUsage(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, exit, err := Parse(nil, out)

	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "CARD_PATH")
}

func TestParse_ListTypesWithoutPath(t *testing.T) {
	cfg, exit, err := Parse([]string{"-list-types"}, &bytes.Buffer{})

	require.NoError(t, err)
	require.False(t, exit)
	assert.True(t, cfg.ListTypes)
	assert.Empty(t, cfg.CardPath)
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"unknown flag", []string{"-nope", "card.json"}, "flag provided but not defined: -nope"},
		{"bad log format", []string{"-log-format", "xml", "card.json"}, "invalid log-format"},
		{"bad log level", []string{"-log-level", "trace", "card.json"}, "invalid log-level"},
		{"bad policy", []string{"-unknown", "ignore", "card.json"}, "invalid unknown-type policy"},
		{"bad output", []string{"-output", "toml", "card.json"}, "invalid output"},
		{"zero workers", []string{"-workers", "0", "card.json"}, "invalid workers"},
		{"two paths", []string{"a.json", "b.json"}, "expected a single CARD_PATH"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, exit, err := Parse(tc.args, &bytes.Buffer{})

			require.Error(t, err)
			assert.False(t, exit)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}

func TestParse_BadEnv(t *testing.T) {
	t.Setenv("CARDPARSE_WORKERS", "many")

	_, _, err := Parse([]string{"card.json"}, &bytes.Buffer{})

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "parse env")
}
