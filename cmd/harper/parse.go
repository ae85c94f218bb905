package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/harper-go/harper/internal/filesystem"
	"github.com/harper-go/harper/markup"
)

// ParseCmd defines the "parse" command which runs the markup parser and
// prints the resulting AST, or writes it to a file.
type ParseCmd struct {
	// Positional arguments
	Input  string `arg:"" required:"" help:"Path to a structured-document file or directory"`
	Output string `arg:"" optional:"" help:"Output directory for .ast files (default: same as input)"`

	WriteAST bool `help:"Write AST to .ast files" short:"w" default:"false"`
}

// Run executes the parse command.
func (p *ParseCmd) Run(globals *Globals, ctx *context.Context, log *slog.Logger) error {
	log.InfoContext(*ctx, "Running parse command")

	fs := filesystem.NewFileSystem(log)

	exists, err := fs.Exists(p.Input)
	if err != nil {
		return fmt.Errorf("error checking input path: %w", err)
	}
	if !exists {
		return fmt.Errorf("input path does not exist: %s", p.Input)
	}

	isDir, err := fs.IsDir(p.Input)
	if err != nil {
		return fmt.Errorf("error determining if input is directory: %w", err)
	}

	start := time.Now()

	if isDir {
		sources, err := fs.ListFilesWithExt(p.Input, globals.Recursive, ".typ", ".md")
		if err != nil {
			return fmt.Errorf("error listing files: %w", err)
		}

		log.InfoContext(*ctx, "Parsing files in directory", slog.Int("fileCount", len(sources)))
		for _, file := range sources {
			if err := parseFile(fs, file, p.Output, p.WriteAST, log, *ctx); err != nil {
				return err
			}
		}
	} else {
		if err := parseFile(fs, p.Input, p.Output, p.WriteAST, log, *ctx); err != nil {
			return err
		}
	}

	log.InfoContext(*ctx, "Parsing completed", slog.Duration("elapsed", time.Since(start)))
	return nil
}

// parseFile runs the markup parser on a single file, prints the AST to
// console, and optionally writes it to a .ast file.
func parseFile(fs filesystem.FileSystem, path, outputDir string, writeAST bool, log *slog.Logger, ctx context.Context) error {
	log.DebugContext(ctx, "Parsing file", slog.String("file", path))

	content, err := fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading file %s: %w", path, err)
	}

	root := markup.Parse(content)

	filename := filepath.Base(path)
	var output strings.Builder
	output.WriteString(fmt.Sprintf("=== %s ===\n\n", filename))
	printNode(&output, root, 0)

	if !writeAST {
		fmt.Println()
		fmt.Print(output.String())
	}

	if writeAST {
		outputPath := getASTOutputPath(path, outputDir)
		if err := fs.WriteFile(outputPath, []byte(output.String()), 0644); err != nil {
			return fmt.Errorf("error writing AST file: %w", err)
		}
		log.InfoContext(ctx, "Wrote AST file",
			slog.String("input", path),
			slog.String("output", outputPath))
	}

	return nil
}

// printNode writes a single indented line per node, in pre-order, the same
// one-line-per-node convention the token printer uses for scan output.
func printNode(sb *strings.Builder, n *markup.Node, depth int) {
	fmt.Fprintf(sb, "%s%s span=[%d,%d)", strings.Repeat("  ", depth), n.Kind, n.Span.Start, n.Span.End)
	if n.Text != "" {
		fmt.Fprintf(sb, " text=%q", n.Text)
	}
	sb.WriteString("\n")
	for _, c := range n.Children {
		printNode(sb, c, depth+1)
	}
}

// getASTOutputPath determines the output path for an AST file
func getASTOutputPath(inputPath, outputDir string) string {
	baseName := filepath.Base(inputPath)
	astName := strings.TrimSuffix(baseName, filepath.Ext(baseName)) + ".ast"

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), astName)
	}
	return filepath.Join(outputDir, astName)
}
