package openapi

// Defaults used when no option overrides them.
const (
	DefaultTitle   = "Form schema"
	DefaultVersion = "1.0.0"
	Version        = "3.0.3"

	// ExtensionKey namespaces form-only metadata on generated schemas.
	ExtensionKey = "x-formschema"
)

// Options controls document generation.
type Options struct {
	Title   string
	Version string
	// Operations adds a POST operation per runnable. When false only the
	// component schemas are emitted.
	Operations bool
}

// Option mutates Options.
type Option func(*Options)

// WithTitle sets info.title.
func WithTitle(title string) Option {
	return func(opts *Options) {
		if title != "" {
			opts.Title = title
		}
	}
}

// WithVersion sets info.version.
func WithVersion(version string) Option {
	return func(opts *Options) {
		if version != "" {
			opts.Version = version
		}
	}
}

// WithOperations toggles the per-runnable operations.
func WithOperations(enabled bool) Option {
	return func(opts *Options) {
		opts.Operations = enabled
	}
}

func resolveOptions(options []Option) Options {
	opts := Options{Title: DefaultTitle, Version: DefaultVersion, Operations: true}
	for _, opt := range options {
		if opt != nil {
			opt(&opts)
		}
	}
	return opts
}
