package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mbarbey/bergfex"
	"github.com/mbarbey/bergfex/goquery"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Fetcher   bergfex.PageFetcher
	Extractor *goquery.Extractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug   bool   `help:"Enable debug logging."`
	BaseURL string `default:"https://www.bergfex.fr" help:"Site root to fetch from."`

	Resort   ResortCmd   `cmd:"" help:"Extract one resort's snow report"`
	Overview OverviewCmd `cmd:"" help:"Extract a country's snow-status listing"`
	Forecast ForecastCmd `cmd:"" help:"Extract a resort's forecast image links"`
}

// ResortCmd is the "resort" subcommand.
type ResortCmd struct {
	Path string `arg:"" optional:"" help:"Resort page path (e.g. /frankreich/lelex-crozet/schneebericht/)"`
	File string `short:"f" type:"existingfile" help:"Read page HTML from a local file instead of fetching"`
}

// Run executes the resort command.
func (c *ResortCmd) Run(deps *Dependencies) error {
	html, err := pageHTML(deps, c.File, c.Path, func(ctx context.Context) (*bergfex.Page, error) {
		return deps.Fetcher.ResortPage(ctx, c.Path)
	})
	if err != nil {
		return err
	}

	record, err := deps.Extractor.Resort(html)
	if err != nil {
		return err
	}

	return printJSON(deps.Stdout, record)
}

// OverviewCmd is the "overview" subcommand.
type OverviewCmd struct {
	Country string `arg:"" optional:"" help:"Country code (e.g. frankreich, oesterreich)"`
	File    string `short:"f" type:"existingfile" help:"Read page HTML from a local file instead of fetching"`
}

// Run executes the overview command.
func (c *OverviewCmd) Run(deps *Dependencies) error {
	html, err := pageHTML(deps, c.File, c.Country, func(ctx context.Context) (*bergfex.Page, error) {
		return deps.Fetcher.OverviewPage(ctx, c.Country)
	})
	if err != nil {
		return err
	}

	records, err := deps.Extractor.Overview(html)
	if err != nil {
		return err
	}

	return printJSON(deps.Stdout, records)
}

// ForecastCmd is the "forecast" subcommand.
type ForecastCmd struct {
	Path string `arg:"" optional:"" help:"Resort base path"`
	Page int    `default:"0" help:"0-based forecast page number"`
	File string `short:"f" type:"existingfile" help:"Read page HTML from a local file instead of fetching"`
}

// Run executes the forecast command.
func (c *ForecastCmd) Run(deps *Dependencies) error {
	html, err := pageHTML(deps, c.File, c.Path, func(ctx context.Context) (*bergfex.Page, error) {
		return deps.Fetcher.ForecastPage(ctx, c.Path, c.Page)
	})
	if err != nil {
		return err
	}

	images, err := deps.Extractor.ForecastImages(html, c.Page)
	if err != nil {
		return err
	}

	return printJSON(deps.Stdout, images)
}

// pageHTML returns the page HTML from a local file when one was given,
// otherwise via fetch. One of file or target must be set.
func pageHTML(deps *Dependencies, file, target string, fetch func(context.Context) (*bergfex.Page, error)) (string, error) {
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	if target == "" {
		return "", bergfex.Errorf(bergfex.EINVALID, "either an argument or --file is required")
	}

	page, err := fetch(deps.Ctx)
	if err != nil {
		return "", err
	}
	return page.HTML, nil
}

// printJSON writes v to w as indented JSON.
func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
