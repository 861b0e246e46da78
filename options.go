package mage

// Option configures the engine during Run.
// Use functional options to customize window and rendering behavior.
//
// Example:
//
//	// Default 100x100 cell window
//	err := mage.Run(game)
//
//	// Custom title and size
//	err := mage.Run(game, mage.WithTitle("roguelike"), mage.WithInnerSize(120, 40))
type Option func(*options)

// options holds optional engine configuration.
type options struct {
	title  string
	width  int // columns
	height int // rows
	font   *Font
}

// defaultOptions returns the default engine options.
func defaultOptions() options {
	return options{
		title:  "mage window",
		width:  100,
		height: 100,
		font:   nil, // DefaultFont is baked lazily in Run
	}
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithInnerSize sets the initial grid size in cells. The window's
// pixel size is the grid size times the font's cell size. Values
// below 1 are clamped.
func WithInnerSize(width, height int) Option {
	return func(o *options) {
		o.width = max(width, 1)
		o.height = max(height, 1)
	}
}

// WithFont sets the glyph font. When unset, a font baked from the
// builtin 7x13 bitmap face is used.
func WithFont(f *Font) Option {
	return func(o *options) {
		o.font = f
	}
}
