package main

import (
	"fmt"

	"github.com/fwojciec/wixbook"
	"github.com/fwojciec/wixbook/crawl"
)

// Run executes the chapters command.
func (c *ChaptersCmd) Run(deps *Dependencies) error {
	idx, err := deps.Loader.Index(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wixbook.ErrorMessage(err))
		return err
	}

	chapters := idx.Session.Chapters()
	positions, err := crawl.SelectChapters(len(chapters), c.Selection.Range, c.Selection.List)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wixbook.ErrorMessage(err))
		return err
	}

	if len(chapters) == 0 {
		fmt.Fprintln(deps.Stdout, "No chapters found.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%d chapters (%s strategy):\n\n", len(chapters), idx.Strategy.Name())
	for _, p := range positions {
		ch := chapters[p]
		title := ch.Title
		if title == "" {
			title = ch.SourceURL
		}
		fmt.Fprintf(deps.Stdout, "  %d. %s\n     %s\n", p+1, title, ch.SourceURL)
	}

	return nil
}
