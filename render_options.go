package mkd

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	html5 bool
}

// WithHTML5Tags selects HTML5 markup. Without it void elements are written
// XHTML style (<hr />, <br />) the way discount emits them.
func WithHTML5Tags(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.html5 = enabled
	}
}

func newRenderConfig(opts []RenderOption) renderConfig {
	cfg := renderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
