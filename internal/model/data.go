package model

import (
	"encoding/json"
	"math"
	"time"
)

// StatusCount is one (group, status) cell of the principle overview.
type StatusCount struct {
	Group      string `json:"group"`
	Status     string `json:"status"`
	Count      int    `json:"count"`
	GroupTotal int    `json:"group_total"`
}

// GroupFulfillment is the recruited share of one group.
// Percentage is NaN when the group has no OPEN or RECRUIT rows.
type GroupFulfillment struct {
	Group      string  `json:"group"`
	Open       int     `json:"open"`
	Recruit    int     `json:"recruit"`
	Other      int     `json:"other"`
	Percentage float64 `json:"-"`
	Display    string  `json:"display,omitempty"`
}

// Defined reports whether the percentage is a number.
func (g GroupFulfillment) Defined() bool {
	return !math.IsNaN(g.Percentage)
}

// MarshalJSON encodes an undefined percentage as null.
func (g GroupFulfillment) MarshalJSON() ([]byte, error) {
	type alias GroupFulfillment
	var pct *float64
	if g.Defined() {
		v := g.Percentage
		pct = &v
	}
	return json.Marshal(struct {
		alias
		Percentage *float64 `json:"percentage"`
	}{alias: alias(g), Percentage: pct})
}

// KPI is one headline fulfillment figure.
type KPI struct {
	Label   string  `json:"label"`
	Agency  string  `json:"agency,omitempty"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
	Open    int     `json:"open"`
	Recruit int     `json:"recruit"`
}

// RegionPanel holds the regional fulfillment bars for one agency.
type RegionPanel struct {
	Agency  string             `json:"agency"`
	Title   string             `json:"title"`
	Regions []GroupFulfillment `json:"regions"`
}

// Dashboard is everything the presentation layer needs for one render.
type Dashboard struct {
	Selection         map[string]string `json:"selection"`
	TotalRecords      int               `json:"total_records"`
	FilteredRecords   int               `json:"filtered_records"`
	KPIs              []KPI             `json:"kpis"`
	PrincipleOverview []StatusCount     `json:"principle_overview"`
	PrincipleOrder    []string          `json:"principle_order"`
	Regions           []RegionPanel     `json:"regions"`
	GeneratedAt       time.Time         `json:"generated_at"`
}

// FilterOption lists the selectable values of one dimension, All first.
type FilterOption struct {
	Dimension string   `json:"dimension"`
	Key       string   `json:"key"`
	Values    []string `json:"values"`
}
