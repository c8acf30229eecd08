package align

import "log/slog"

// Option configures an Aligner at construction.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

func defaultOptions() options {
	return options{logger: slog.New(slog.DiscardHandler)}
}

// WithLogger makes the Aligner emit one Debug record per completed alignment
// (variant, lengths, score, traceback steps). A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// RenderOption configures PrettyPrinted / Render.
type RenderOption func(*renderOptions)

// Rendering defaults.
const (
	DefaultGapRune    = '-'
	DefaultMarkerRune = '|'
)

type renderOptions struct {
	gap          rune
	marker       rune
	identityOnly bool
}

func defaultRenderOptions() renderOptions {
	return renderOptions{gap: DefaultGapRune, marker: DefaultMarkerRune}
}

// WithGapRune sets the rune printed opposite a gap.
func WithGapRune(r rune) RenderOption {
	return func(o *renderOptions) { o.gap = r }
}

// WithMarkerRune sets the rune printed on the connector line.
func WithMarkerRune(r rune) RenderOption {
	return func(o *renderOptions) { o.marker = r }
}

// WithIdentityOnly restricts connector markers to columns whose two symbols
// are identical; mismatched pairs render blank like gaps.
func WithIdentityOnly() RenderOption {
	return func(o *renderOptions) { o.identityOnly = true }
}
