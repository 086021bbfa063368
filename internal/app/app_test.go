// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/specialistvlad/cardparse/internal/card"
	"github.com/specialistvlad/cardparse/internal/testutil"
	"github.com/specialistvlad/cardparse/modules/textblock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"
)

type parsedCard struct {
	Source  string `json:"source"`
	Version string `json:"version"`
	Body    []struct {
		Type   string `json:"type"`
		Text   string `json:"text"`
		Parser string `json:"parser"`
	} `json:"body"`
}

func testConfig(t *testing.T, path string, mutate ...func(*Config)) *Config {
	t.Helper()
	cfg := Config{
		CardPath:      path,
		LogFormat:     "text",
		LogLevel:      "debug",
		WorkerCount:   2,
		UnknownPolicy: "drop",
		Output:        "json",
	}
	for _, m := range mutate {
		m(&cfg)
	}
	validated, err := NewConfig(cfg)
	require.NoError(t, err)
	return validated
}

func runApp(t *testing.T, cfg *Config) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	testutil.LogOnFailure(t, logs)

	a, err := NewApp(out, logs, cfg)
	require.NoError(t, err)
	err = a.Run(context.Background())
	return out.String(), err
}

func TestRun_ParsesDirectoryInLoadOrder(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"b/second.yaml": "version: \"1.5\"\nbody:\n  - type: TextBlock\n    text: two\n",
		"a/first.json":  `{"type": "AdaptiveCard", "version": "1.4", "body": [{"type": "TextBlock", "text": "one"}]}`,
		"c/third.hcl":   "card {\n  version = \"1.6\"\n  element \"TextBlock\" {\n    text = \"three\"\n  }\n}\n",
		"notes.txt":     "ignored",
	})

	out, err := runApp(t, testConfig(t, root))
	require.NoError(t, err)

	var cards []parsedCard
	require.NoError(t, json.Unmarshal([]byte(out), &cards))
	require.Len(t, cards, 3)
	for i, want := range []struct{ file, version, text string }{
		{"a/first.json", "1.4", "one"},
		{"b/second.yaml", "1.5", "two"},
		{"c/third.hcl", "1.6", "three"},
	} {
		assert.Equal(t, filepath.Join(root, filepath.FromSlash(want.file)), cards[i].Source)
		assert.Equal(t, want.version, cards[i].Version)
		require.Len(t, cards[i].Body, 1)
		assert.Equal(t, want.text, cards[i].Body[0].Text)
	}
}

func TestRun_YAMLOutput(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"card.json": `{"version": "1.5", "body": [{"type": "TextBlock", "text": "hi"}]}`,
	})

	out, err := runApp(t, testConfig(t, filepath.Join(root, "card.json"), func(c *Config) { c.Output = "yaml" }))
	require.NoError(t, err)

	var cards []parsedCard
	require.NoError(t, yaml.Unmarshal([]byte(out), &cards))
	require.Len(t, cards, 1)
	assert.Equal(t, "1.5", cards[0].Version)
	assert.Equal(t, "hi", cards[0].Body[0].Text)
}

func TestRun_ErrorNamesDocument(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"card.json": `{"body": [{"type": "Carousel"}]}`,
	})
	path := filepath.Join(root, "card.json")

	_, err := runApp(t, testConfig(t, path, func(c *Config) { c.UnknownPolicy = "error" }))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse "+path)
	assert.Contains(t, err.Error(), `unknown element type "Carousel"`)
}

func TestRun_EmptyDirectory(t *testing.T) {
	out, err := runApp(t, testConfig(t, t.TempDir()))

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRun_ListTypes(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := testConfig(t, "", func(c *Config) { c.ListTypes = true })
	rating := &testutil.SimpleModule{Parsers: map[string]card.ElementParser{"Rating": testutil.NewStubParser("rating")}}

	a, err := NewApp(out, &bytes.Buffer{}, cfg, rating)
	require.NoError(t, err)
	require.NoError(t, a.Run(context.Background()))

	assert.Equal(t, []string{"Container", "FactSet", "Image", "Rating", "TextBlock"}, strings.Fields(out.String()))
}

func TestNewApp_ModulesOverrideBuiltIns(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"card.json": `{"body": [{"type": "TextBlock", "text": "hi"}]}`,
	})
	out := &bytes.Buffer{}
	override := testutil.NewStubParser("override")
	module := &testutil.SimpleModule{Parsers: map[string]card.ElementParser{textblock.TypeName: override}}

	a, err := NewApp(out, &bytes.Buffer{}, testConfig(t, root), module)
	require.NoError(t, err)
	require.NoError(t, a.Run(context.Background()))

	var cards []parsedCard
	require.NoError(t, json.Unmarshal(out.Bytes(), &cards))
	assert.Equal(t, "override", cards[0].Body[0].Parser)
	assert.EqualValues(t, 1, override.Calls())

	// Other applications still get the built-in parser.
	p, found, err := DefaultRegistry(nil).Get(textblock.TypeName)
	require.NoError(t, err)
	require.True(t, found)
	assert.NotSame(t, override, p)
}

func TestRun_WorkerLimit(t *testing.T) {
	files := map[string]string{}
	for i := range 8 {
		files[fmt.Sprintf("card%d.json", i)] = `{"body": [{"type": "Probe"}]}`
	}
	root := testutil.WriteFiles(t, files)
	probe := &testutil.ConcurrencyProbe{Delay: 20 * time.Millisecond}
	module := &testutil.SimpleModule{Parsers: map[string]card.ElementParser{"Probe": probe}}

	a, err := NewApp(&bytes.Buffer{}, &bytes.Buffer{}, testConfig(t, root, func(c *Config) { c.WorkerCount = 3 }), module)
	require.NoError(t, err)
	require.NoError(t, a.Run(context.Background()))

	assert.LessOrEqual(t, probe.Peak(), 3)
	assert.GreaterOrEqual(t, probe.Peak(), 1)
}

func TestRun_Canceled(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{"card.json": `{"body": []}`})
	a, err := NewApp(&bytes.Buffer{}, &bytes.Buffer{}, testConfig(t, root))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, a.Run(ctx), context.Canceled)
}

func TestRun_JSONLogsStayOffOutput(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{"card.json": `{"body": []}`})
	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}

	a, err := NewApp(out, logs, testConfig(t, root, func(c *Config) { c.LogFormat = "json" }))
	require.NoError(t, err)
	require.NoError(t, a.Run(context.Background()))

	assert.True(t, json.Valid(out.Bytes()))
	assert.Contains(t, logs.String(), `"msg":"Card parsed."`)
}

func TestApp_RegistryAcceptsExtensionsBeforeRun(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"card.json": `{"body": [{"type": "Rating", "id": "stars"}]}`,
	})
	out := &bytes.Buffer{}
	rating := testutil.NewStubParser("rating")

	a, err := NewApp(out, &bytes.Buffer{}, testConfig(t, root, func(c *Config) { c.UnknownPolicy = "error" }))
	require.NoError(t, err)
	require.NoError(t, a.Registry().Set("Rating", rating))
	require.NoError(t, a.Run(context.Background()))

	var cards []parsedCard
	require.NoError(t, json.Unmarshal(out.Bytes(), &cards))
	require.Len(t, cards[0].Body, 1)
	assert.Equal(t, "Rating", cards[0].Body[0].Type)
	assert.Equal(t, "rating", cards[0].Body[0].Parser)
	assert.EqualValues(t, 1, rating.Calls())
}
