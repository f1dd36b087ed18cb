package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wixbook"
	"github.com/fwojciec/wixbook/crawl"
	"github.com/fwojciec/wixbook/generic"
	"github.com/fwojciec/wixbook/goquery"
	"github.com/fwojciec/wixbook/htmltomarkdown"
	wixhttp "github.com/fwojciec/wixbook/http"
	"github.com/fwojciec/wixbook/readability"
	"github.com/fwojciec/wixbook/rod"
	"github.com/fwojciec/wixbook/site"
	wixslog "github.com/fwojciec/wixbook/slog"
	"github.com/fwojciec/wixbook/sqlite"
	"github.com/fwojciec/wixbook/trafilatura"
	"github.com/fwojciec/wixbook/wix"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, wixbook.ErrorMessage(err))
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// closers release resources acquired while wiring, such as the browser.
	closers []func() error
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var firstErr error
	for i := len(m.closers) - 1; i >= 0; i-- {
		if err := m.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	m.closers = nil
	if m.DB != nil {
		if err := m.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wixbook"),
		kong.Description("Fetch multi-page works from sites that load their text through an API"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return wixbook.Errorf(wixbook.EINVALID, "no command specified. Run 'wixbook --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	defer m.Close()

	// Command() reads like "fetch <url> [<name>]".
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	if cli.Verbose {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	// Listing chapters needs the network but not the library.
	if cmd != "chapters" {
		if err := m.openDB(deps, stderr); err != nil {
			return err
		}
	}

	switch cmd {
	case "chapters":
		if deps.Loader, err = m.newLoader(cli.Chapters.Network, 1, deps.Logger); err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
			return err
		}
	case "fetch":
		if deps.Loader, err = m.newLoader(cli.Fetch.Network, cli.Fetch.Concurrency, deps.Logger); err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
			return err
		}
		deps.Converter = htmltomarkdown.NewConverter()
	}

	return kongCtx.Run(deps)
}

func (m *Main) openDB(deps *Dependencies, stderr io.Writer) error {
	if dir := filepath.Dir(m.DBPath); dir != "." {
		_ = os.MkdirAll(dir, 0755)
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set WIXBOOK_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}

	deps.Works = sqlite.NewWorkService(m.DB)
	deps.Documents = sqlite.NewDocumentService(m.DB)
	return nil
}

// newLoader wires the fetchers, the strategies and the site registry.
// Wix sites get the API strategy; anything else falls back to extracting
// text from chapter markup. With a logger every collaborator is wrapped
// in its logging decorator.
func (m *Main) newLoader(flags NetworkFlags, concurrency int, logger *slog.Logger) (*crawl.Loader, error) {
	httpOpts := []wixhttp.Option{wixhttp.WithTimeout(flags.Timeout)}
	if flags.UserAgent != "" {
		httpOpts = append(httpOpts, wixhttp.WithUserAgent(flags.UserAgent))
	}
	httpFetcher := wixhttp.NewFetcher(httpOpts...)

	var fetcher wixbook.Fetcher = httpFetcher
	var jsonFetcher wixbook.JSONFetcher = httpFetcher
	if flags.Browser {
		rodFetcher, err := rod.NewFetcher(rod.WithFetchTimeout(flags.Timeout))
		if err != nil {
			return nil, err
		}
		m.closers = append(m.closers, rodFetcher.Close)
		fetcher = rodFetcher
	}

	if logger != nil {
		fetcher = wixslog.NewLoggingFetcher(fetcher, logger)
		jsonFetcher = wixslog.NewLoggingJSONFetcher(jsonFetcher, logger)
	}

	chapters := goquery.NewChapterLister(flags.Selector)
	extractor := generic.NewFallbackExtractor(trafilatura.NewExtractor(), readability.NewExtractor(readability.WithMinTextLength(minChapterText)))

	registry := site.NewRegistry(generic.NewStrategy(chapters, fetcher, extractor))
	registry.Register(site.WixHosts(), wix.NewStrategy(goquery.NewScriptExtractor(), chapters, jsonFetcher))

	loader := &crawl.Loader{
		Strategies:  registry,
		Fetcher:     fetcher,
		RateLimiter: crawl.NewDomainLimiter(flags.Rate),
		Concurrency: concurrency,
	}
	if logger != nil {
		loader.Strategies = wixslog.NewLoggingRegistry(registry, logger)
		loader.Log = func(format string, args ...any) {
			logger.Warn(fmt.Sprintf(format, args...))
		}
	}
	return loader, nil
}

// minChapterText is the shortest body the readability stage accepts as a chapter.
const minChapterText = 20

func defaultDBPath() string {
	if path := os.Getenv("WIXBOOK_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "wixbook.db"
	}
	return filepath.Join(home, ".wixbook", "wixbook.db")
}
