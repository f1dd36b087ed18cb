package main

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/wixbook"
	"github.com/fwojciec/wixbook/crawl"
	"github.com/fwojciec/wixbook/fs"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	format, err := fs.ParseFormat(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wixbook.ErrorMessage(err))
		return err
	}

	name := c.Name
	if name == "" {
		name = workName(c.URL)
	}

	existing, err := deps.Works.FindWorks(deps.Ctx, wixbook.WorkFilter{Name: &name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wixbook.ErrorMessage(err))
		return err
	}
	if len(existing) > 0 && !c.Force {
		fmt.Fprintf(deps.Stderr, "error: work %q already exists. Use --force to replace it.\n", name)
		return wixbook.Errorf(wixbook.EINVALID, "work %q already exists", name)
	}

	idx, err := deps.Loader.Index(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wixbook.ErrorMessage(err))
		return err
	}

	positions, err := crawl.SelectChapters(idx.Session.Len(), c.Selection.Range, c.Selection.List)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wixbook.ErrorMessage(err))
		return err
	}

	if c.Concurrency > 0 {
		deps.Loader.Concurrency = c.Concurrency
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d chapters (%s strategy)\n", event.Total, idx.Strategy.Name())
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.URL, wixbook.ErrorMessage(event.Error))
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", event.Completed, event.Total, crawl.DisplayURL(event.URL, 60))
		}
	}

	result, err := deps.Loader.Load(deps.Ctx, idx, positions, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wixbook.ErrorMessage(err))
		return err
	}

	if len(result.Documents) == 0 {
		fmt.Fprintln(deps.Stderr, "error: no chapters could be fetched")
		return wixbook.Errorf(wixbook.ECONTENT, "no chapters could be fetched from %s", c.URL)
	}

	store := fs.NewFileStore(c.Out, name, format, deps.Converter)
	for _, doc := range result.Documents {
		if err := store.Save(deps.Ctx, doc); err != nil {
			_ = store.Abort()
			fmt.Fprintf(deps.Stderr, "error saving %s: %s\n", doc.SourceURL, wixbook.ErrorMessage(err))
			return err
		}
	}

	var old *wixbook.Work
	if len(existing) > 0 {
		old = existing[0]
	}
	if err := replaceWork(deps, old, &wixbook.Work{
		Name:      name,
		SourceURL: c.URL,
		Strategy:  idx.Strategy.Name(),
	}, result.Documents, store); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wixbook.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d chapters (%s) to %s\n",
		len(result.Documents), crawl.FormatBytes(result.Bytes), filepath.Join(c.Out, name))
	if len(result.Failed) > 0 {
		fmt.Fprintf(deps.Stdout, "%d chapters failed\n", len(result.Failed))
	}

	return nil
}

// replaceWork records work and its documents, commits the saved files and
// only then removes old. While old exists the new work is staged under a
// temporary name, so a failure at any step leaves old untouched.
func replaceWork(deps *Dependencies, old, work *wixbook.Work, docs []*wixbook.Document, store *fs.FileStore) error {
	name := work.Name
	if old != nil {
		work.Name = name + ".partial"
	}
	if err := deps.Works.CreateWork(deps.Ctx, work); err != nil {
		_ = store.Abort()
		return err
	}

	rollback := func(err error) error {
		_ = store.Abort()
		_ = deps.Works.DeleteWork(deps.Ctx, work.ID)
		return err
	}
	for _, doc := range docs {
		doc.WorkID = work.ID
		if err := deps.Documents.CreateDocument(deps.Ctx, doc); err != nil {
			return rollback(wixbook.WrapError(wixbook.ErrorCode(err), err, "saving %s: %s", doc.SourceURL, wixbook.ErrorMessage(err)))
		}
	}
	if err := store.Commit(); err != nil {
		return rollback(err)
	}

	if old == nil {
		return nil
	}
	if err := deps.Works.DeleteWork(deps.Ctx, old.ID); err != nil {
		return err
	}
	_, err := deps.Works.UpdateWork(deps.Ctx, work.ID, wixbook.WorkUpdate{Name: &name})
	return err
}

// workName derives a work name from the last path segment of the table
// of contents URL, or from its host.
func workName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "work"
	}
	if p := strings.TrimSuffix(u.Path, "/"); p != "" {
		if slug := fs.Slug(path.Base(p)); slug != "" {
			return slug
		}
	}
	if slug := fs.Slug(strings.SplitN(u.Hostname(), ".", 2)[0]); slug != "" {
		return slug
	}
	return "work"
}
