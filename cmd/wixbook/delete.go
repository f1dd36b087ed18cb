package main

import (
	"fmt"

	"github.com/fwojciec/wixbook"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return wixbook.Errorf(wixbook.EINVALID, "use --force to confirm deletion")
	}

	work, err := findWork(deps, c.Name)
	if err != nil {
		return err
	}

	if err := deps.Works.DeleteWork(deps.Ctx, work.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wixbook.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted work %q\n", work.Name)
	return nil
}
