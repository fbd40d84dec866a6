package pdfrender

// Option is a functional option for configuring a new Doc via New.
type Option func(*docConfig)

type docConfig struct {
	outDir   string
	pageSize string
	font     string
}

// WithOutputDir sets the directory Save writes artifacts into. Defaults to
// the current directory.
func WithOutputDir(dir string) Option {
	return func(c *docConfig) {
		c.outDir = dir
	}
}

// WithPageSize sets the page size by name: A3, A4, A5, Letter, Legal.
// Defaults to A4.
func WithPageSize(size string) Option {
	return func(c *docConfig) {
		c.pageSize = size
	}
}

// WithFont sets the font family used throughout the document. Defaults to
// Helvetica.
func WithFont(family string) Option {
	return func(c *docConfig) {
		c.font = family
	}
}
