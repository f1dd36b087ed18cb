package slog

import (
	"log/slog"

	"github.com/fwojciec/wixbook"
)

// Ensure LoggingRegistry implements wixbook.StrategyRegistry.
var _ wixbook.StrategyRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a StrategyRegistry, logs each dispatch and wraps
// the strategies it returns with LoggingStrategy.
type LoggingRegistry struct {
	next   wixbook.StrategyRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next wixbook.StrategyRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(match wixbook.Matcher, strategy wixbook.Strategy) {
	r.next.Register(match, strategy)
}

// Lookup delegates to the wrapped registry and logs the selected strategy.
func (r *LoggingRegistry) Lookup(url string) (wixbook.Strategy, error) {
	strategy, err := r.next.Lookup(url)
	if err != nil {
		r.logger.Info("strategy lookup", "url", url, "err", err)
		return nil, err
	}
	r.logger.Info("strategy lookup", "url", url, "strategy", strategy.Name())
	return NewLoggingStrategy(strategy, r.logger), nil
}
