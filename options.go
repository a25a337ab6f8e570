package lexgo

import "log/slog"

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	lenient          bool
}

// Option configures Lexgo constructor behavior.
type Option func(*options)

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := lexgo.NewJSONLogger(slog.LevelInfo)
//	lx, _ := lexgo.OpenFile(ctx, path, lexgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &lexgo.BasicMetricsCollector{}
//	lx, _ := lexgo.OpenFile(ctx, path, lexgo.WithMetricsCollector(metrics))
//	// ... run queries ...
//	stats := metrics.GetStats()
//	fmt.Printf("Evaluations: %d, Avg latency: %dns\n", stats.EvaluateCount, stats.EvaluateAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLenientLookup makes Compile tolerate literal values that do not
// occur in the corpus. An absent value behaves as an empty posting
// list, so an equality literal matches nothing and an inequality
// literal matches every token. The strict default reports
// ErrUnknownValue instead.
func WithLenientLookup() Option {
	return func(o *options) {
		o.lenient = true
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
