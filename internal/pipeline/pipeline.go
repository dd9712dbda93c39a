package pipeline

import (
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"

	"recruitment-dashboard/internal/model"
	"recruitment-dashboard/pkg/utils"
)

// DefaultKPIAgencies are the agencies with a dedicated KPI and region chart.
var DefaultKPIAgencies = []string{"AMK", "AKP"}

// OverallKPILabel is the label of the unsplit fulfillment KPI.
const OverallKPILabel = "FULFILLMENT %"

// Options tune a dashboard build.
type Options struct {
	// KPIAgencies defaults to DefaultKPIAgencies.
	KPIAgencies []string
	// KeepEmptyGroups seeds region groups from the full table so regions
	// emptied by a filter are still listed, with an undefined percentage.
	KeepEmptyGroups bool
	RegionSort      SortMode
	Logger          logrus.FieldLogger
	Now             func() time.Time
}

func (o Options) withDefaults() Options {
	if len(o.KPIAgencies) == 0 {
		o.KPIAgencies = DefaultKPIAgencies
	}
	if o.RegionSort == "" {
		o.RegionSort = SortFirstSeen
	}
	if o.Logger == nil {
		o.Logger = discardLogger()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// BuildDashboard recomputes every dashboard figure for one selection.
// The table is only read; each call derives fresh views.
func BuildDashboard(table *Table, sel model.Selection, opts Options) (*model.Dashboard, error) {
	if table == nil {
		return nil, errors.New("dashboard: table not loaded")
	}
	opts = opts.withDefaults()
	tracker := NewPipelineTracker(opts.Logger.WithField("selection", sel.Keyed()))

	done := tracker.StartStage("filter")
	filtered := ApplyFilters(table.records, sel)
	done(len(filtered))

	done = tracker.StartStage("kpi")
	kpis := BuildKPIs(filtered, opts.KPIAgencies)
	done(len(kpis))

	done = tracker.StartStage("principle_overview")
	overview := CountByGroupAndStatus(filtered, model.ColumnPrinciple)
	done(len(overview))

	done = tracker.StartStage("regions")
	var universe []model.Record
	if opts.KeepEmptyGroups {
		universe = table.records
	}
	panels := BuildRegionPanels(filtered, universe, opts.KPIAgencies, opts.RegionSort)
	done(len(panels))

	tracker.Complete(sel.Active() > 0)

	return &model.Dashboard{
		Selection:         sel.Keyed(),
		TotalRecords:      table.Len(),
		FilteredRecords:   len(filtered),
		KPIs:              kpis,
		PrincipleOverview: overview,
		PrincipleOrder:    GroupOrder(overview),
		Regions:           panels,
		GeneratedAt:       opts.Now().UTC(),
	}, nil
}

// BuildKPIs returns the overall fulfillment KPI followed by one per agency.
func BuildKPIs(records []model.Record, agencies []string) []model.KPI {
	kpis := make([]model.KPI, 0, len(agencies)+1)
	kpis = append(kpis, newKPI(OverallKPILabel, "", CountStatuses(records)))
	for _, ag := range agencies {
		subset := ApplyFilters(records, model.Selection{model.ColumnAgency: ag})
		kpis = append(kpis, newKPI(ag+" Fulfillment %", ag, CountStatuses(subset)))
	}
	return kpis
}

func newKPI(label, agency string, t StatusTally) model.KPI {
	v := t.Fulfillment()
	return model.KPI{
		Label:   label,
		Agency:  agency,
		Value:   v,
		Display: utils.FormatPercent(v),
		Open:    t.Open,
		Recruit: t.Recruit,
	}
}

// RegionTitle is the chart title of an agency's region panel.
func RegionTitle(agency string) string {
	return "REGION – " + strings.TrimSpace(agency)
}

// BuildRegionPanel computes regional fulfillment for one agency's
// sub-population of records. When universe is non-nil, every region the
// agency has in universe is listed even if records holds none of its rows.
func BuildRegionPanel(records, universe []model.Record, agency string, mode SortMode) model.RegionPanel {
	only := model.Selection{model.ColumnAgency: agency}
	subset := ApplyFilters(records, only)
	opts := []GroupOption{WithSort(mode)}
	if universe != nil {
		opts = append(opts, WithGroups(firstSeenValues(ApplyFilters(universe, only), model.ColumnRegional)))
	}
	return model.RegionPanel{
		Agency:  agency,
		Title:   RegionTitle(agency),
		Regions: FulfillmentByGroup(subset, model.ColumnRegional, opts...),
	}
}

// BuildRegionPanels builds one region panel per agency, in agency order.
func BuildRegionPanels(records, universe []model.Record, agencies []string, mode SortMode) []model.RegionPanel {
	panels := make([]model.RegionPanel, 0, len(agencies))
	for _, ag := range agencies {
		panels = append(panels, BuildRegionPanel(records, universe, ag, mode))
	}
	return panels
}

func firstSeenValues(records []model.Record, c model.Column) []string {
	var out []string
	seen := make(map[string]bool)
	for _, r := range records {
		if v := r.Value(c); !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
