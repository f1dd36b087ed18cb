package main

import (
	"fmt"

	"github.com/fwojciec/wixbook"
)

// Run executes the works command.
func (c *WorksCmd) Run(deps *Dependencies) error {
	works, err := deps.Works.FindWorks(deps.Ctx, wixbook.WorkFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wixbook.ErrorMessage(err))
		return err
	}

	if len(works) == 0 {
		fmt.Fprintln(deps.Stdout, "No works found. Use 'wixbook fetch' to add one.")
		return nil
	}

	for _, w := range works {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  (%s)\n", w.ID, w.Name, w.SourceURL, w.Strategy)
	}

	return nil
}
