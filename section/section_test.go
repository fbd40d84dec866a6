package section

import (
	"math"
	"testing"

	"github.com/lvillar/routereport/input"
)

func strp(s string) *string   { return &s }
func numf(f float64) *float64 { return &f }

func TestDisplay(t *testing.T) {
	cases := []struct {
		name string
		v    any
		want string
	}{
		{"nil", nil, Placeholder},
		{"nil string pointer", (*string)(nil), Placeholder},
		{"nil float pointer", (*float64)(nil), Placeholder},
		{"nan", math.NaN(), Placeholder},
		{"nan pointer", numf(math.NaN()), Placeholder},
		{"string", "high", "high"},
		{"string pointer", strp("A-7"), "A-7"},
		{"whole float", 5.0, "5"},
		{"float pointer", numf(8.25), "8.25"},
		{"int", 3, "3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Display(tc.v); got != tc.want {
				t.Errorf("Display(%v) = %q, want %q", tc.v, got, tc.want)
			}
		})
	}
}

func TestDisplayOrCustomFallback(t *testing.T) {
	if got := DisplayOr(nil, "-"); got != "-" {
		t.Errorf("DisplayOr(nil, -) = %q, want -", got)
	}
	if got := DisplayOr("x", "-"); got != "x" {
		t.Errorf("DisplayOr(x, -) = %q, want x", got)
	}
}

func TestRowsMatchHeaderWidth(t *testing.T) {
	sections := map[string]Section{
		"kpi empty":       BuildKPI(input.KPI{}),
		"routes empty":    BuildRoutes(nil),
		"points empty":    BuildPoints(nil),
		"temporal empty":  BuildTemporal(input.Temporal{}),
		"proposals empty": BuildProposals(nil),
		"routes": BuildRoutes([]input.Route{
			{Label: strp("A-7"), Risk: strp("high"), Score: numf(8.2)},
		}),
		"points": BuildPoints([]input.Point{
			{Name: strp("Curva del Pino"), City: strp("Lorca"), Probability: numf(0.345)},
		}),
		"temporal": BuildTemporal(input.Temporal{
			CriticalHours: []string{"08:00-10:00"},
			Causes:        []input.Cause{{Label: strp("speeding"), Pct: numf(41)}, {Label: strp("weather")}},
		}),
		"proposals": BuildProposals([]input.Proposal{
			{Title: strp("Resurface km 12-18")},
		}),
	}
	for name, s := range sections {
		if len(s.Body) == 0 {
			t.Errorf("%s: body must never be empty", name)
		}
		for i, row := range s.Body {
			if len(row) != len(s.Header) {
				t.Errorf("%s: row %d has %d cells, header has %d", name, i, len(row), len(s.Header))
			}
		}
	}
}

func TestEmptyCollectionsYieldPlaceholderRow(t *testing.T) {
	for name, s := range map[string]Section{
		"routes":    BuildRoutes(nil),
		"points":    BuildPoints(nil),
		"temporal":  BuildTemporal(input.Temporal{}),
		"proposals": BuildProposals(nil),
	} {
		if len(s.Body) != 1 {
			t.Errorf("%s: expected exactly one fallback row, got %d", name, len(s.Body))
			continue
		}
		for i, cell := range s.Body[0] {
			if cell != Placeholder {
				t.Errorf("%s: cell %d = %q, want placeholder", name, i, cell)
			}
		}
	}
}

func TestBuildKPI(t *testing.T) {
	k := input.KPI{
		Accidents: input.Metric{Value: numf(math.NaN()), DeltaPct: numf(5)},
		Victims:   input.Metric{Value: numf(3)},
	}
	s := BuildKPI(k)

	if len(s.Body) != 3 {
		t.Fatalf("expected 3 KPI rows, got %d", len(s.Body))
	}
	if s.Body[0][0] != "Accidents" || s.Body[1][0] != "Victims" || s.Body[2][0] != "Improvements" {
		t.Errorf("unexpected indicator labels: %v", s.Body)
	}
	if s.Body[0][1] != Placeholder {
		t.Errorf("NaN value = %q, want placeholder", s.Body[0][1])
	}
	if s.Body[0][2] != "5%" {
		t.Errorf("delta = %q, want 5%%", s.Body[0][2])
	}
	if s.Body[1][1] != "3" {
		t.Errorf("victims value = %q, want 3", s.Body[1][1])
	}
	// A missing delta stays the bare placeholder, never "placeholder%".
	if s.Body[1][2] != Placeholder {
		t.Errorf("missing delta = %q, want placeholder", s.Body[1][2])
	}
}

func TestBuildPoints(t *testing.T) {
	s := BuildPoints([]input.Point{
		{Name: strp("Curva del Pino"), City: strp("Lorca"), Risk: strp("high"), Probability: numf(0.345), RoadType: strp("national")},
		{City: strp("Murcia")},
	})

	if s.Body[0][0] != "Curva del Pino (Lorca)" {
		t.Errorf("point name = %q", s.Body[0][0])
	}
	if s.Body[0][2] != "34.5%" {
		t.Errorf("probability = %q, want 34.5%%", s.Body[0][2])
	}

	// Name and city degrade independently.
	if want := Placeholder + " (Murcia)"; s.Body[1][0] != want {
		t.Errorf("point name = %q, want %q", s.Body[1][0], want)
	}
	if s.Body[1][2] != Placeholder {
		t.Errorf("missing probability = %q, want placeholder", s.Body[1][2])
	}
}

func TestBuildPointsProbabilityHasOneDecimal(t *testing.T) {
	s := BuildPoints([]input.Point{{Probability: numf(0.5)}})
	if s.Body[0][2] != "50.0%" {
		t.Errorf("probability = %q, want 50.0%%", s.Body[0][2])
	}
}

func TestBuildTemporalZipsByIndex(t *testing.T) {
	s := BuildTemporal(input.Temporal{
		CriticalHours: []string{"08:00-10:00"},
		Causes:        nil,
	})
	if len(s.Body) != 1 {
		t.Fatalf("expected 1 row, got %d", len(s.Body))
	}
	want := []string{"08:00-10:00", Placeholder, Placeholder}
	for i := range want {
		if s.Body[0][i] != want[i] {
			t.Errorf("cell %d = %q, want %q", i, s.Body[0][i], want[i])
		}
	}
}

func TestBuildTemporalLongerCauses(t *testing.T) {
	s := BuildTemporal(input.Temporal{
		CriticalHours: []string{"08:00-10:00"},
		Causes: []input.Cause{
			{Label: strp("speeding"), Pct: numf(41)},
			{Label: strp("weather")},
			{Pct: numf(12)},
		},
	})
	if len(s.Body) != 3 {
		t.Fatalf("expected 3 rows (max of both sequences), got %d", len(s.Body))
	}
	if s.Body[0][0] != "08:00-10:00" || s.Body[0][1] != "speeding" || s.Body[0][2] != "41%" {
		t.Errorf("row 0 = %v", s.Body[0])
	}
	if s.Body[1][0] != Placeholder || s.Body[1][1] != "weather" || s.Body[1][2] != Placeholder {
		t.Errorf("row 1 = %v", s.Body[1])
	}
	if s.Body[2][1] != Placeholder || s.Body[2][2] != "12%" {
		t.Errorf("row 2 = %v", s.Body[2])
	}
}

func TestBuildProposals(t *testing.T) {
	s := BuildProposals([]input.Proposal{
		{Title: strp("Resurface km 12-18"), Priority: strp("high"), ImpactPct: numf(12.5), TargetDate: strp("2026-Q2"), Cost: numf(240000)},
		{Title: strp("New signage")},
	})

	want := []string{"Resurface km 12-18", "high", "12.5%", "2026-Q2", "240000"}
	for i := range want {
		if s.Body[0][i] != want[i] {
			t.Errorf("cell %d = %q, want %q", i, s.Body[0][i], want[i])
		}
	}

	// Impact is already in percent units: suffixed directly, never rescaled.
	if s.Body[1][2] != Placeholder {
		t.Errorf("missing impact = %q, want placeholder", s.Body[1][2])
	}
}
