package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wixbook"
)

// Ensure LoggingStrategy implements wixbook.Strategy.
var _ wixbook.Strategy = (*LoggingStrategy)(nil)

// LoggingStrategy wraps a Strategy with logging.
type LoggingStrategy struct {
	next   wixbook.Strategy
	logger *slog.Logger
}

// NewLoggingStrategy creates a new LoggingStrategy.
func NewLoggingStrategy(next wixbook.Strategy, logger *slog.Logger) *LoggingStrategy {
	return &LoggingStrategy{next: next, logger: logger.With("strategy", next.Name())}
}

// Name delegates to the wrapped strategy.
func (s *LoggingStrategy) Name() string {
	return s.next.Name()
}

// ChapterList delegates to the wrapped strategy and logs the chapter count.
func (s *LoggingStrategy) ChapterList(ctx context.Context, html string, pageURL string) (session *wixbook.Session, err error) {
	defer func(begin time.Time) {
		var chapters, endpoints int
		if session != nil {
			chapters, endpoints = session.Len(), session.Endpoints()
		}
		s.logger.Info("chapter list",
			"url", pageURL,
			"chapters", chapters,
			"endpoints", endpoints,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ChapterList(ctx, html, pageURL)
}

// FetchChapter delegates to the wrapped strategy and logs the result.
func (s *LoggingStrategy) FetchChapter(ctx context.Context, session *wixbook.Session, pageURL string) (doc *wixbook.Document, err error) {
	defer func(begin time.Time) {
		var size int
		if doc != nil {
			size = len(doc.Content)
		}
		s.logger.Info("fetch chapter",
			"url", pageURL,
			"bytes", size,
			"duration", time.Since(begin),
			"code", wixbook.ErrorCode(err),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchChapter(ctx, session, pageURL)
}
