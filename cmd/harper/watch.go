package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/harper-go/harper/internal/filesystem"
	"github.com/harper-go/harper/lint"
	"github.com/harper-go/harper/lint/rules"
)

// WatchCmd defines the "watch" command.
type WatchCmd struct {
	// Positional argument
	Directory string `arg:"" required:"" help:"Directory to watch for changes"`

	// Options
	Delay int  `help:"Debounce delay in milliseconds" default:"300"`
	Clear bool `help:"Clear terminal on each lint pass" default:"false"`
}

func (w *WatchCmd) Run(globals *Globals, ctx *context.Context, log *slog.Logger) error {
	log.InfoContext(*ctx, "Watching directory",
		slog.String("directory", w.Directory),
		slog.Bool("recursive", globals.Recursive),
		slog.Int("delay", w.Delay))

	fs := filesystem.NewFileSystem(log)

	exists, err := fs.Exists(w.Directory)
	if err != nil {
		return fmt.Errorf("error checking directory: %w", err)
	}
	if !exists {
		return fmt.Errorf("directory does not exist: %s", w.Directory)
	}

	isDir, err := fs.IsDir(w.Directory)
	if err != nil {
		return fmt.Errorf("error checking if path is a directory: %w", err)
	}
	if !isDir {
		return fmt.Errorf("path is not a directory: %s", w.Directory)
	}

	log.InfoContext(*ctx, "Performing initial lint pass")
	if err := lintDirectory(fs, w.Directory, globals.Recursive, log, *ctx); err != nil {
		log.ErrorContext(*ctx, "Initial lint pass failed", slog.String("error", err.Error()))
	}

	log.InfoContext(*ctx, "Starting file watcher")

	watchCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := fs.WatchFiles(watchCtx, []string{w.Directory}, globals.Recursive)
	if err != nil {
		return fmt.Errorf("failed to start watching: %w", err)
	}

	timer := time.NewTimer(time.Duration(w.Delay) * time.Millisecond)
	timer.Stop()

	needsRelint := false

	fmt.Printf("Watching '%s' for changes...\n", w.Directory)

	for {
		select {
		case <-(*ctx).Done():
			log.InfoContext(*ctx, "Stopping watch due to context cancellation")
			return nil

		case event, ok := <-events:
			if !ok {
				log.InfoContext(*ctx, "Event channel closed, stopping watch")
				return nil
			}

			log.DebugContext(*ctx, "File change detected",
				slog.String("path", event.Path),
				slog.String("event", event.Type.String()),
				slog.Time("timestamp", event.Timestamp))

			if !isMarkupFile(event.Path) && filepath.Ext(event.Path) != ".txt" {
				log.DebugContext(*ctx, "Ignoring unrelated file", slog.String("path", event.Path))
				continue
			}

			timer.Reset(time.Duration(w.Delay) * time.Millisecond)
			needsRelint = true

		case <-timer.C:
			if needsRelint {
				if w.Clear {
					clearTerminal()
				}

				log.InfoContext(*ctx, "Relinting after file changes")
				if err := lintDirectory(fs, w.Directory, globals.Recursive, log, *ctx); err != nil {
					log.ErrorContext(*ctx, "Lint pass failed", slog.String("error", err.Error()))
					fmt.Printf("Lint error: %v\n", err)
				} else {
					log.InfoContext(*ctx, "Lint pass completed")
				}

				needsRelint = false
			}
		}
	}
}

// lintDirectory lints every recognized file under dir and prints each
// lint it finds; unlike LintCmd.Run it never returns an error purely
// because lints were found, since a nonzero issue count is the normal
// steady state while watching.
func lintDirectory(fs filesystem.FileSystem, dir string, recursive bool, log *slog.Logger, ctx context.Context) error {
	files, err := fs.ListFilesWithExt(dir, recursive, harperExts...)
	if err != nil {
		return fmt.Errorf("error listing files: %w", err)
	}

	startTime := time.Now()
	total := 0

	for _, file := range files {
		content, err := fs.ReadFile(file)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", file, err)
		}
		source := []rune(string(content))
		tokens := tokenize(file, content)

		var found []lint.Lint
		for _, rule := range rules.All() {
			found = append(found, lint.RunPatternLinter(rule, tokens, source)...)
		}
		for _, l := range found {
			fmt.Printf("%s:%d-%d: [%s] %s\n", file, l.Span.Start, l.Span.End, l.Kind, l.Message)
		}
		total += len(found)
	}

	log.InfoContext(ctx, "Directory lint pass completed",
		slog.Duration("elapsed", time.Since(startTime)),
		slog.Int("fileCount", len(files)),
		slog.Int("lintCount", total))

	return nil
}

// clearTerminal clears the terminal screen
func clearTerminal() {
	switch term := os.Getenv("TERM"); term {
	case "linux", "xterm", "xterm-256color", "screen":
		fmt.Print("\033[H\033[2J")
	default:
		fmt.Print("\n\n\n\n\n")
	}
}
