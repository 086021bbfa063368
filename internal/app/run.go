// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/specialistvlad/cardparse/internal/card"
	"github.com/specialistvlad/cardparse/internal/ctxlog"
	"github.com/specialistvlad/cardparse/internal/source"
	"golang.org/x/sync/errgroup"
	"sigs.k8s.io/yaml"
)

// Run loads the configured card documents, parses them concurrently, and
// writes the parsed cards in load order.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.ListTypes {
		for _, typ := range a.registry.Types() {
			if _, err := fmt.Fprintln(a.outW, typ); err != nil {
				return err
			}
		}
		return nil
	}

	docs, err := source.Load(ctx, a.config.CardPath)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		a.logger.Warn("No card documents found, nothing to parse.", "path", a.config.CardPath)
		return nil
	}

	a.logger.Info("🚀 Parsing cards...", "documents", len(docs), "workers", a.config.WorkerCount)
	cards := make([]*card.Card, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.config.WorkerCount)
	for i, doc := range docs {
		g.Go(func() error {
			c, err := a.engine.ParseCard(gctx, doc.Raw)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", doc.Path, err)
			}
			c.Source = doc.Path
			cards[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	a.logger.Info("🏁 Parsing finished.", "documents", len(cards))

	return a.write(cards)
}

func (a *App) write(cards []*card.Card) error {
	var (
		out []byte
		err error
	)
	switch a.config.Output {
	case "yaml":
		out, err = yaml.Marshal(cards)
	default:
		out, err = json.MarshalIndent(cards, "", "  ")
		out = append(out, '\n')
	}
	if err != nil {
		return fmt.Errorf("failed to encode parsed cards: %w", err)
	}

	_, err = a.outW.Write(out)
	return err
}
