package tiercache

// LevelConfig describes one cache level for WithLevels.
type LevelConfig struct {
	Capacity int
	Policy   Policy
}

type options struct {
	logger  *Logger
	metrics MetricsCollector
	levels  []LevelConfig
}

// Option configures Chain constructor behavior.
type Option func(*options)

// WithLogger configures structured logging for chain operations.
//
// If nil is passed, NoopLogger() is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures operational metrics collection.
//
// If nil is passed, NoopMetricsCollector{} is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

// WithLevels configures the initial chain topology, fastest level first.
// Each config is validated exactly like AddLevel, so New fails on an
// invalid policy or capacity before any level is created.
func WithLevels(levels ...LevelConfig) Option {
	return func(o *options) {
		o.levels = levels
	}
}
