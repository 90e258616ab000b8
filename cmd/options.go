package cmd

// Options holds the shared command-line options for the sweep CLI.
type Options struct {
	Token      string
	ForkOnly   bool
	Visibility []string
	Owners     []string
	MaxStars   int
	DryRun     bool
	Verbosity  int
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// NewOptions creates a new Options with defaults and applies any provided options.
func NewOptions(opts ...Option) *Options {
	o := &Options{
		ForkOnly:   true,
		Visibility: []string{"public"},
		MaxStars:   0,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithToken sets the GitHub personal access token.
func WithToken(token string) Option {
	return func(o *Options) {
		o.Token = token
	}
}

// WithForkOnly restricts candidates to forks (or non-forks when false).
func WithForkOnly(forkOnly bool) Option {
	return func(o *Options) {
		o.ForkOnly = forkOnly
	}
}

// WithVisibility sets the visibility allowlist.
func WithVisibility(visibility ...string) Option {
	return func(o *Options) {
		o.Visibility = visibility
	}
}

// WithOwners sets the owner allowlist.
func WithOwners(owners ...string) Option {
	return func(o *Options) {
		o.Owners = owners
	}
}

// WithMaxStars sets the inclusive stargazer upper bound.
func WithMaxStars(stars int) Option {
	return func(o *Options) {
		o.MaxStars = stars
	}
}

// WithDryRun lists matching repositories without deleting.
func WithDryRun(dryRun bool) Option {
	return func(o *Options) {
		o.DryRun = dryRun
	}
}

// WithVerbosity sets the verbosity level.
func WithVerbosity(v int) Option {
	return func(o *Options) {
		o.Verbosity = v
	}
}
