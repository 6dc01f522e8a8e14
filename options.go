package stopedit

// Default editor configuration.
const (
	DefaultWidth           = 220
	DefaultPaletteHeight   = 32
	DefaultStopRemovalDrop = 50
	DefaultMinStops        = 2
	DefaultMaxStops        = 5
)

// Option configures a Store during creation.
// Use functional options to customize the editor layout and bounds.
//
// Example:
//
//	// Default 220px track, 2 to 5 stops
//	s, err := stopedit.NewStore(palette, sink)
//
//	// Wider track that allows up to 8 stops
//	s, err := stopedit.NewStore(palette, sink,
//	    stopedit.WithWidth(400), stopedit.WithMaxStops(8))
type Option func(*options)

// options holds the editor configuration.
type options struct {
	width           float64
	paletteHeight   float64
	stopRemovalDrop float64
	minStops        int
	maxStops        int
	flatStyle       bool
}

// defaultOptions returns the default editor options.
func defaultOptions() options {
	return options{
		width:           DefaultWidth,
		paletteHeight:   DefaultPaletteHeight,
		stopRemovalDrop: DefaultStopRemovalDrop,
		minStops:        DefaultMinStops,
		maxStops:        DefaultMaxStops,
	}
}

// WithWidth sets the track width in pixels. Non-positive values are ignored.
func WithWidth(w float64) Option {
	return func(o *options) {
		if w > 0 {
			o.width = w
		}
	}
}

// WithPaletteHeight sets the height of the preview swatch in pixels.
func WithPaletteHeight(h float64) Option {
	return func(o *options) {
		if h > 0 {
			o.paletteHeight = h
		}
	}
}

// WithStopRemovalDrop sets the drag-to-remove distance reported in Limits.
func WithStopRemovalDrop(d float64) Option {
	return func(o *options) {
		o.stopRemovalDrop = d
	}
}

// WithMinStops sets the number of stops below which deletes are ignored.
func WithMinStops(n int) Option {
	return func(o *options) {
		o.minStops = n
	}
}

// WithMaxStops sets the number of stops at which adds are ignored.
func WithMaxStops(n int) Option {
	return func(o *options) {
		o.maxStops = n
	}
}

// WithFlatStyle asks the detail widget to render flat at track width.
// It affects layout only.
func WithFlatStyle(flat bool) Option {
	return func(o *options) {
		o.flatStyle = flat
	}
}
