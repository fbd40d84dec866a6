package routereport

// Layout constants, in renderer units (mm on the default PDF backend).
const (
	marginX = 14 // left edge for titles and tables

	titleY = 20 // report title baseline
	metaY  = 28 // generation timestamp baseline

	firstSectionY = 45 // cursor position of the first section title
	tableOffset   = 6  // distance from a section title to its table start
	sectionGap    = 10 // distance from a measured table end to the next title
)

// Default cursor positions used after each section when the renderer cannot
// report where its table ended. Kept fixed so the report stays visually
// stable for degenerate tables; do not retune without product input.
const (
	kpiDefaultY       = 100
	routesDefaultY    = 145
	pointsDefaultY    = 190
	temporalDefaultY  = 235
	proposalsDefaultY = 275
)

// cursor is the running vertical offset at which the next section title is
// drawn. One cursor belongs to exactly one Generate call.
type cursor struct {
	y float64
}

// advance moves the cursor below the section that was just rendered: past
// the measured table end when the renderer reported one, otherwise to the
// section's fixed default position.
func (c *cursor) advance(endY float64, measured bool, fallback float64) {
	if measured {
		c.y = endY + sectionGap
		return
	}
	c.y = fallback
}
