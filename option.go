package ingest

// Option configures a Service.
type Option interface {
	apply(*Service) error
}

type optionFunc func(*Service) error

func (f optionFunc) apply(s *Service) error {
	return f(s)
}

// WithPrettyLogging configures the Service to print human friendly logs.
func WithPrettyLogging() Option {
	return optionFunc(func(s *Service) error {
		s.prettyLogging = true
		return nil
	})
}

// WithLogLevel sets the log level, e.g. "debug".
func WithLogLevel(level string) Option {
	return optionFunc(func(s *Service) error {
		s.logLevel = level
		return nil
	})
}

// WithNotifier sets the notifier for load results.
func WithNotifier(n Notifier) Option {
	return optionFunc(func(s *Service) error {
		s.notifier = n
		return nil
	})
}
