package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/harper-go/harper/internal/filesystem"
	"github.com/harper-go/harper/lint"
	"github.com/harper-go/harper/lint/rules"
)

// LintCmd defines the "lint" command: the primary entry point, checking
// one or more files for grammar and style issues.
type LintCmd struct {
	// Positional arguments
	Input string `arg:"" required:"" help:"Path to a file or directory"`

	// Flags
	JSON bool `help:"Output lints as JSON" short:"j" default:"false"`
}

func (c *LintCmd) Run(globals *Globals, ctx *context.Context, log *slog.Logger) error {
	log.InfoContext(*ctx, "Running lint command", slog.String("path", c.Input))

	fs := filesystem.NewFileSystem(log)

	exists, err := fs.Exists(c.Input)
	if err != nil {
		return fmt.Errorf("error checking input path: %w", err)
	}
	if !exists {
		return fmt.Errorf("input path does not exist: %s", c.Input)
	}

	isDir, err := fs.IsDir(c.Input)
	if err != nil {
		return fmt.Errorf("error checking if input is a directory: %w", err)
	}

	start := time.Now()
	totalLints := 0

	if isDir {
		files, err := fs.ListFilesWithExt(c.Input, globals.Recursive, harperExts...)
		if err != nil {
			return fmt.Errorf("error listing files: %w", err)
		}
		log.InfoContext(*ctx, "Found files", slog.Int("count", len(files)))
		for _, file := range files {
			n, err := lintFile(fs, file, c.JSON, log, *ctx)
			if err != nil {
				return err
			}
			totalLints += n
		}
	} else {
		n, err := lintFile(fs, c.Input, c.JSON, log, *ctx)
		if err != nil {
			return err
		}
		totalLints += n
	}

	log.InfoContext(*ctx, "Linting completed",
		slog.Duration("elapsed", time.Since(start)),
		slog.Int("lintCount", totalLints))

	if totalLints > 0 {
		return fmt.Errorf("found %d issue(s)", totalLints)
	}
	return nil
}

// jsonLint is the JSON-friendly projection of a lint.Lint.
type jsonLint struct {
	File     string `json:"file"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Kind     string `json:"kind"`
	Message  string `json:"message"`
	Priority uint8  `json:"priority"`
}

// lintFile reads path, tokenizes it, runs every registered rule, and
// prints the resulting lints (text or JSON). It returns the number of
// lints found.
func lintFile(fs filesystem.FileSystem, path string, asJSON bool, log *slog.Logger, ctx context.Context) (int, error) {
	log.DebugContext(ctx, "Linting file", slog.String("file", path))

	content, err := fs.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("error reading file %s: %w", path, err)
	}

	source := []rune(string(content))
	tokens := tokenize(path, content)

	var found []lint.Lint
	for _, rule := range rules.All() {
		found = append(found, lint.RunPatternLinter(rule, tokens, source)...)
	}

	if asJSON {
		out := make([]jsonLint, len(found))
		for i, l := range found {
			out[i] = jsonLint{
				File:     path,
				Start:    l.Span.Start,
				End:      l.Span.End,
				Kind:     l.Kind.String(),
				Message:  l.Message,
				Priority: l.Priority,
			}
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return 0, fmt.Errorf("error encoding lints as JSON: %w", err)
		}
		fmt.Println(string(data))
		return len(found), nil
	}

	for _, l := range found {
		fmt.Printf("%s:%d-%d: [%s] %s\n", path, l.Span.Start, l.Span.End, l.Kind, l.Message)
	}
	log.InfoContext(ctx, "Linted file", slog.String("file", path), slog.Int("lintCount", len(found)))

	return len(found), nil
}
