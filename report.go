package routereport

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lvillar/routereport/input"
	"github.com/lvillar/routereport/section"
)

// Text sizes in points, following the heading ladder of the PDF backend.
const (
	titleSize        = 18
	metaSize         = 10
	sectionTitleSize = 13
)

const defaultTitle = "Route Risk Report"

// sectionPlan pairs one report section with its title and the cursor
// position to fall back to when the renderer cannot measure the table end.
type sectionPlan struct {
	title    string
	body     section.Section
	defaultY float64
}

// plan lays out the five report sections in their fixed order.
func plan(in input.Input) []sectionPlan {
	return []sectionPlan{
		{title: "KPI Summary", body: section.BuildKPI(in.KPI), defaultY: kpiDefaultY},
		{title: "Analyzed Routes", body: section.BuildRoutes(in.Routes), defaultY: routesDefaultY},
		{title: "Critical Points", body: section.BuildPoints(in.Points), defaultY: pointsDefaultY},
		{title: "Temporal Analysis", body: section.BuildTemporal(in.Temporal), defaultY: temporalDefaultY},
		{title: "Improvement Proposals", body: section.BuildProposals(in.Proposals), defaultY: proposalsDefaultY},
	}
}

// Generate assembles the report from raw input and renders it through r,
// then persists the artifact as "reporte_rutas_<YYYY-MM-DD>.pdf".
//
// Generate is total over the input: any shape of raw, however malformed,
// produces a complete report with placeholders where data is missing. The
// only failure surface is the renderer itself, whose errors are returned
// unchanged. The context carries the logger; no cancellation applies.
func Generate(ctx context.Context, r Renderer, raw input.RawInput, opts ...Option) error {
	if r == nil {
		return ErrNilRenderer
	}

	cfg := reportConfig{
		title: defaultTitle,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	log := zerolog.Ctx(ctx)
	in := input.Normalize(raw)
	now := cfg.now()

	r.SetTextSize(titleSize)
	r.DrawText(cfg.title, marginX, titleY)
	r.SetTextSize(metaSize)
	r.DrawText("Generated: "+now.Format("2006-01-02 15:04"), marginX, metaY)

	cur := cursor{y: firstSectionY}
	for _, sp := range plan(in) {
		r.SetTextSize(sectionTitleSize)
		r.DrawText(sp.title, marginX, cur.y)
		endY, measured := r.DrawTable(TableSpec{
			StartY: cur.y + tableOffset,
			Header: sp.body.Header,
			Body:   sp.body.Body,
		})
		cur.advance(endY, measured, sp.defaultY)
		log.Debug().
			Str("section", sp.title).
			Int("rows", len(sp.body.Body)).
			Bool("measured", measured).
			Float64("next_y", cur.y).
			Msg("section rendered")
	}

	return r.Save(Filename(now))
}

// Filename returns the artifact name for a report generated at t.
func Filename(t time.Time) string {
	return fmt.Sprintf("reporte_rutas_%s.pdf", t.Format("2006-01-02"))
}
