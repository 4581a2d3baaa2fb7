package docsmark

import "github.com/charmbracelet/log"

// ConvertOptions holds options for conversion and rendering.
type ConvertOptions struct {
	Config *RenderConfig
	Logger *log.Logger
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithConfig sets a custom RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *ConvertOptions) {
		opts.Config = config
	}
}

// WithLogger sets the logger for a single call.
func WithLogger(logger *log.Logger) Option {
	return func(opts *ConvertOptions) {
		opts.Logger = logger
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Config: DefaultConfig(),
		Logger: Logger,
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.Config == nil {
		options.Config = DefaultConfig()
	}
	if options.Logger == nil {
		options.Logger = Logger
	}
	return options
}
