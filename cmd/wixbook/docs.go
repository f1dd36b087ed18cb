package main

import (
	"fmt"

	"github.com/fwojciec/wixbook"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	work, err := findWork(deps, c.Name)
	if err != nil {
		return err
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, wixbook.DocumentFilter{
		WorkID: &work.ID,
		SortBy: wixbook.SortByPosition,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wixbook.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintf(deps.Stderr, "error: work %q has no chapters. Run 'wixbook fetch %s --force' to fetch it again.\n", c.Name, work.SourceURL)
		return wixbook.Errorf(wixbook.ENOTFOUND, "work %q has no chapters", c.Name)
	}

	if c.Full {
		fmt.Fprintln(deps.Stdout, wixbook.FormatDocuments(docs))
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Chapters of %s (%d total):\n\n", c.Name, len(docs))
	for _, doc := range docs {
		title := doc.Title
		if title == "" {
			title = doc.SourceURL
		}
		fmt.Fprintf(deps.Stdout, "  %d. %s\n     %s\n", doc.Position+1, title, doc.SourceURL)
	}

	return nil
}

// findWork looks a work up by name and reports a missing one on stderr.
func findWork(deps *Dependencies, name string) (*wixbook.Work, error) {
	works, err := deps.Works.FindWorks(deps.Ctx, wixbook.WorkFilter{Name: &name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wixbook.ErrorMessage(err))
		return nil, err
	}

	if len(works) == 0 {
		fmt.Fprintf(deps.Stderr, "error: work %q not found. Use 'wixbook works' to see available works.\n", name)
		return nil, wixbook.Errorf(wixbook.ENOTFOUND, "work %q not found", name)
	}

	return works[0], nil
}
