package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/wixbook"
	"github.com/fwojciec/wixbook/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Works     wixbook.WorkService
	Documents wixbook.DocumentService
	Loader    *crawl.Loader
	Converter wixbook.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log every fetch and strategy call to stderr"`

	Chapters ChaptersCmd `cmd:"" help:"List the chapters of a work"`
	Fetch    FetchCmd    `cmd:"" help:"Fetch a work's chapters to files and the library"`
	Works    WorksCmd    `cmd:"" help:"List works in the library"`
	Docs     DocsCmd     `cmd:"" help:"List chapters stored for a work"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a work and its chapters"`
}

// NetworkFlags configure how pages are fetched.
type NetworkFlags struct {
	Timeout   time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Browser   bool          `short:"b" help:"Render table of contents and pages in headless Chrome"`
	UserAgent string        `name:"user-agent" help:"User-Agent header for HTTP requests"`
	Rate      float64       `short:"r" default:"1" help:"Requests per second per host (0 disables limiting)"`
	Selector  string        `help:"CSS selector for chapter links on the table of contents page"`
}

// SelectionFlags pick a subset of chapters.
type SelectionFlags struct {
	Range string `help:"Chapter range, 1-based and inclusive, e.g. 5-12 or 5-"`
	List  string `help:"Comma-separated chapter numbers, e.g. 1,3,5"`
}

// ChaptersCmd is the "chapters" subcommand.
type ChaptersCmd struct {
	URL string `arg:"" help:"Table of contents URL"`

	Network   NetworkFlags   `embed:""`
	Selection SelectionFlags `embed:""`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL  string `arg:"" help:"Table of contents URL"`
	Name string `arg:"" optional:"" help:"Work name (defaults to the last URL path segment)"`

	Out         string `short:"o" default:"." help:"Parent directory for the output directory"`
	Format      string `short:"f" default:"html" enum:"html,markdown,md" help:"Output format (html, markdown)"`
	Concurrency int    `short:"c" default:"3" help:"Concurrent chapter fetches"`
	Force       bool   `help:"Replace an existing work with the same name"`

	Network   NetworkFlags   `embed:""`
	Selection SelectionFlags `embed:""`
}

// WorksCmd is the "works" subcommand.
type WorksCmd struct{}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	Name string `arg:"" help:"Work name"`
	Full bool   `help:"Show full chapter content"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Work name"`
	Force bool   `help:"Confirm deletion"`
}
