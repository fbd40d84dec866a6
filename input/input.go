// Package input defines the raw report input document and its normalization
// into fully-defaulted collections.
//
// Raw input is untrusted: every top-level field may be absent, null, or of
// the wrong type entirely. Normalization absorbs all of that once, at this
// boundary, so that downstream section builders only ever deal with concrete
// slices and records whose scalars are either present or nil.
package input

import "encoding/json"

// RawInput is the untrusted report input as supplied by the caller.
//
// Fields are kept as raw JSON so that wrong-typed values (a string where a
// list is expected, a number where an object is expected) survive decoding
// and can be discarded during normalization instead of failing it.
type RawInput struct {
	Points    json.RawMessage `json:"points,omitempty"`
	Routes    json.RawMessage `json:"routes,omitempty"`
	KPI       json.RawMessage `json:"kpi,omitempty"`
	Temporal  json.RawMessage `json:"temporal,omitempty"`
	Proposals json.RawMessage `json:"proposals,omitempty"`
}

// Input is the normalized form of RawInput. List fields are always valid
// slices (possibly empty), object fields are always valid records, and no
// field is ever re-checked for structural validity downstream.
type Input struct {
	Points    []Point
	Routes    []Route
	KPI       KPI
	Temporal  Temporal
	Proposals []Proposal
}

// Metric is one KPI entry: a current value and its percent change versus the
// previous period. DeltaPct is already expressed in percent units.
type Metric struct {
	Value    *float64 `json:"value"`
	DeltaPct *float64 `json:"deltaPct"`
}

// KPI groups the three report indicators.
type KPI struct {
	Accidents    Metric `json:"accidents"`
	Victims      Metric `json:"victims"`
	Improvements Metric `json:"improvements"`
}

// Route is one analyzed route entry.
type Route struct {
	Label *string  `json:"label"`
	Risk  *string  `json:"risk"`
	Score *float64 `json:"score"`
}

// Point is one critical point entry. Probability is a 0-1 fraction.
type Point struct {
	Name        *string  `json:"name"`
	City        *string  `json:"city"`
	Risk        *string  `json:"risk"`
	Probability *float64 `json:"probability"`
	RoadType    *string  `json:"roadType"`
}

// Cause is one accident cause with its share, already in percent units.
type Cause struct {
	Label *string  `json:"label"`
	Pct   *float64 `json:"pct"`
}

// Temporal holds the two independently-sized sequences behind the temporal
// analysis section. They are positionally correlated by report convention.
type Temporal struct {
	CriticalHours []string `json:"criticalHours"`
	Causes        []Cause  `json:"causes"`
}

// Proposal is one improvement proposal entry. ImpactPct is already in
// percent units.
type Proposal struct {
	Title      *string  `json:"title"`
	Priority   *string  `json:"priority"`
	ImpactPct  *float64 `json:"impactPct"`
	TargetDate *string  `json:"targetDate"`
	Cost       *float64 `json:"cost"`
}

// Parse decodes a JSON document into a RawInput. It is total: malformed or
// non-object JSON yields a zero RawInput rather than an error, so a broken
// input file still produces a (fully placeholder) report.
func Parse(data []byte) RawInput {
	var raw RawInput
	if err := json.Unmarshal(data, &raw); err != nil {
		return RawInput{}
	}
	return raw
}

// Normalize converts a RawInput into a fully-defaulted Input. Each field
// that fails to decode into its expected shape is replaced by its zero
// value: wrong-typed lists become empty slices, wrong-typed objects become
// empty records. Normalize never fails, whatever the input shape.
func Normalize(raw RawInput) Input {
	var in Input
	in.Points = decodeList[Point](raw.Points)
	in.Routes = decodeList[Route](raw.Routes)
	in.Proposals = decodeList[Proposal](raw.Proposals)
	decodeRecord(raw.KPI, &in.KPI)
	decodeRecord(raw.Temporal, &in.Temporal)
	return in
}

// decodeList returns the decoded slice, or an empty one when the raw value
// is absent, null, or not actually a list of the expected entries.
func decodeList[T any](raw json.RawMessage) []T {
	if len(raw) == 0 {
		return []T{}
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []T{}
	}
	return out
}

// decodeRecord fills dst from raw, leaving it zero-valued when the raw value
// is absent, null, or not an object of the expected shape.
func decodeRecord(raw json.RawMessage, dst any) {
	if len(raw) == 0 {
		return
	}
	_ = json.Unmarshal(raw, dst)
}
