package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/harper-go/harper/internal/filesystem"
)

// ScanCmd defines the "scan" command which runs just the tokenizer
// and prints the tokens or writes them to a file.
type ScanCmd struct {
	// Positional arguments
	Input  string `arg:"" required:"" help:"Path to a file or directory"`
	Output string `arg:"" optional:"" help:"Output directory for token files (default: same as input)"`

	// Whether to write output files
	WriteTokens bool `help:"Write tokens to .tok files" short:"w" default:"false"`
}

// Run executes the scan command.
func (s *ScanCmd) Run(globals *Globals, ctx *context.Context, log *slog.Logger) error {
	log.InfoContext(*ctx, "Running scan command")

	fs := filesystem.NewFileSystem(log)

	exists, err := fs.Exists(s.Input)
	if err != nil {
		return fmt.Errorf("error checking input path: %w", err)
	}
	if !exists {
		return fmt.Errorf("input path does not exist: %s", s.Input)
	}

	isDir, err := fs.IsDir(s.Input)
	if err != nil {
		return fmt.Errorf("error determining if input is directory: %w", err)
	}

	start := time.Now()

	if isDir {
		sources, err := fs.ListFilesWithExt(s.Input, globals.Recursive, harperExts...)
		if err != nil {
			return fmt.Errorf("error listing files: %w", err)
		}

		log.InfoContext(*ctx, "Scanning files in directory", slog.Int("fileCount", len(sources)))
		for _, file := range sources {
			if err := scanFile(fs, file, s.Output, s.WriteTokens, log, *ctx); err != nil {
				return err
			}
		}
	} else {
		if err := scanFile(fs, s.Input, s.Output, s.WriteTokens, log, *ctx); err != nil {
			return err
		}
	}

	log.InfoContext(*ctx, "Scanning completed", slog.Duration("elapsed", time.Since(start)))
	return nil
}

// scanFile runs the tokenizer on a single file, prints tokens to console,
// and optionally writes tokens to a .tok file
func scanFile(fs filesystem.FileSystem, path, outputDir string, writeTokens bool, log *slog.Logger, ctx context.Context) error {
	log.DebugContext(ctx, "Scanning file", slog.String("file", path))

	content, err := fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading file %s: %w", path, err)
	}

	tokens := tokenize(path, content)

	filename := filepath.Base(path)
	var output strings.Builder

	output.WriteString(fmt.Sprintf("=== %s ===\n\n", filename))

	for i, tok := range tokens {
		output.WriteString(fmt.Sprintf("%d: %s @ %s\n", i, tok.String(), tok.Span.String()))
	}

	if !writeTokens {
		fmt.Println()
		fmt.Print(output.String())
	}

	if writeTokens {
		outputPath := getTokenOutputPath(path, outputDir)
		if err := fs.WriteFile(outputPath, []byte(output.String()), 0644); err != nil {
			return fmt.Errorf("error writing token file: %w", err)
		}
		log.InfoContext(ctx, "Wrote token file",
			slog.String("input", path),
			slog.String("output", outputPath))
	}

	return nil
}

// getTokenOutputPath determines the output path for a token file
func getTokenOutputPath(inputPath, outputDir string) string {
	baseName := filepath.Base(inputPath)
	tokName := strings.TrimSuffix(baseName, filepath.Ext(baseName)) + ".tok"

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), tokName)
	}
	return filepath.Join(outputDir, tokName)
}
