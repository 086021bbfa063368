// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/cardparse/internal/ctxlog"
	"github.com/specialistvlad/cardparse/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
)

// Extensions lists the file extensions Load picks up.
var Extensions = []string{".json", ".yaml", ".yml", ".hcl"}

// Document is one loaded card document.
type Document struct {
	Path string
	Raw  cty.Value
}

// Load reads the card document at path, or every card document below path
// when it is a directory. Documents are returned sorted by file path.
func Load(ctx context.Context, path string) ([]Document, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Resolving card path.", "path", path)

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("card path not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}
	if !info.IsDir() && !fsutil.HasExtension(path, Extensions...) {
		return nil, fmt.Errorf("unsupported card file %s: expected one of %s", path, strings.Join(Extensions, ", "))
	}

	files, err := fsutil.FindFilesByExtension(path, Extensions...)
	if err != nil {
		return nil, fmt.Errorf("failed to find card files in %s: %w", path, err)
	}
	if len(files) == 0 {
		logger.Warn("No card files found in path.", "path", path)
		return nil, nil
	}

	docs := make([]Document, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read card file %s: %w", file, err)
		}
		raw, err := Decode(file, data)
		if err != nil {
			return nil, fmt.Errorf("failed to load card file %s: %w", file, err)
		}
		docs = append(docs, Document{Path: file, Raw: raw})
		logger.Debug("Loaded card document.", "file", file)
	}

	logger.Info("Card documents loaded.", "count", len(docs), "path", path)
	return docs, nil
}

// Decode converts the content of a card file into a raw cty value, choosing
// the format from the file name's extension.
func Decode(filename string, data []byte) (cty.Value, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return DecodeJSON(data)
	case ".yaml", ".yml":
		return DecodeYAML(data)
	case ".hcl":
		return DecodeHCL(filename, data)
	default:
		return cty.NilVal, fmt.Errorf("unsupported card format %q", filepath.Ext(filename))
	}
}
