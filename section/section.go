// Package section turns normalized report input into uniform tabular
// sections.
//
// Every builder is total: an empty collection yields a single row of
// placeholders rather than an empty table, so a section is never silently
// missing from the report. Every row a builder emits is exactly as wide as
// its section header.
package section

import "github.com/lvillar/routereport/input"

// Section is one titled table of the report: an ordered header and an
// ordered list of already-formatted rows.
type Section struct {
	Header []string
	Body   [][]string
}

var (
	kpiHeader      = []string{"Indicator", "Value", "Change"}
	routesHeader   = []string{"Route", "Risk", "Score"}
	pointsHeader   = []string{"Point", "Risk", "Probability", "Road type"}
	temporalHeader = []string{"Critical hours", "Main cause", "Share"}
	proposalHeader = []string{"Proposal", "Priority", "Impact", "Target date", "Cost"}
)

// placeholderRow builds the one-row fallback body for an empty collection.
func placeholderRow(width int) [][]string {
	row := make([]string, width)
	for i := range row {
		row[i] = Placeholder
	}
	return [][]string{row}
}

// BuildKPI builds the indicator summary. It always has exactly three rows,
// one per indicator, however sparse the input. The change column is already
// in percent units; when it resolves to the placeholder it is kept verbatim,
// without a "%" suffix.
func BuildKPI(k input.KPI) Section {
	return Section{
		Header: kpiHeader,
		Body: [][]string{
			{"Accidents", Display(k.Accidents.Value), percentDirect(k.Accidents.DeltaPct)},
			{"Victims", Display(k.Victims.Value), percentDirect(k.Victims.DeltaPct)},
			{"Improvements", Display(k.Improvements.Value), percentDirect(k.Improvements.DeltaPct)},
		},
	}
}

// BuildRoutes builds one row per analyzed route.
func BuildRoutes(routes []input.Route) Section {
	if len(routes) == 0 {
		return Section{Header: routesHeader, Body: placeholderRow(len(routesHeader))}
	}
	body := make([][]string, 0, len(routes))
	for _, r := range routes {
		body = append(body, []string{Display(r.Label), Display(r.Risk), Display(r.Score)})
	}
	return Section{Header: routesHeader, Body: body}
}

// BuildPoints builds one row per critical point. The point column combines
// name and city; each half degrades to the placeholder independently, so a
// missing city still shows the name. Probability is a 0-1 fraction rendered
// as a one-decimal percentage.
func BuildPoints(points []input.Point) Section {
	if len(points) == 0 {
		return Section{Header: pointsHeader, Body: placeholderRow(len(pointsHeader))}
	}
	body := make([][]string, 0, len(points))
	for _, p := range points {
		name := Display(p.Name) + " (" + Display(p.City) + ")"
		body = append(body, []string{name, Display(p.Risk), percentFromFraction(p.Probability), Display(p.RoadType)})
	}
	return Section{Header: pointsHeader, Body: body}
}

// BuildTemporal zips the critical-hours and causes sequences by index. The
// two sequences are independently sourced and may differ in length; the
// table is as long as the longer one, with the shorter side padded with
// placeholders. Cause shares are already in percent units.
func BuildTemporal(t input.Temporal) Section {
	n := len(t.CriticalHours)
	if len(t.Causes) > n {
		n = len(t.Causes)
	}
	if n == 0 {
		return Section{Header: temporalHeader, Body: placeholderRow(len(temporalHeader))}
	}
	body := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		hour, cause, share := Placeholder, Placeholder, Placeholder
		if i < len(t.CriticalHours) {
			hour = t.CriticalHours[i]
		}
		if i < len(t.Causes) {
			cause = Display(t.Causes[i].Label)
			share = percentDirect(t.Causes[i].Pct)
		}
		body = append(body, []string{hour, cause, share})
	}
	return Section{Header: temporalHeader, Body: body}
}

// BuildProposals builds one row per improvement proposal. Impact is already
// in percent units and is suffixed directly, unlike the points probability.
func BuildProposals(proposals []input.Proposal) Section {
	if len(proposals) == 0 {
		return Section{Header: proposalHeader, Body: placeholderRow(len(proposalHeader))}
	}
	body := make([][]string, 0, len(proposals))
	for _, p := range proposals {
		body = append(body, []string{
			Display(p.Title),
			Display(p.Priority),
			percentDirect(p.ImpactPct),
			Display(p.TargetDate),
			Display(p.Cost),
		})
	}
	return Section{Header: proposalHeader, Body: body}
}
