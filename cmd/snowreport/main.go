// Command snowreport extracts structured snow-status records from
// bergfex pages and prints them as JSON. It is an operator surface for
// inspecting what the extractors produce; the pages can be fetched live
// or read from saved HTML files with --file.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mbarbey/bergfex/goquery"
	bfxhttp "github.com/mbarbey/bergfex/http"
)

func main() {
	ctx := context.Background()

	if err := Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Run executes the CLI with the given arguments.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	parser, err := kong.New(cli,
		kong.Name("snowreport"),
		kong.Description("Extract bergfex snow-status records as JSON."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Extractor = goquery.NewExtractor(goquery.WithLogger(logger))
	deps.Fetcher = bfxhttp.NewClient(bfxhttp.WithBaseURL(cli.BaseURL))

	return kctx.Run(deps)
}
