package pipeline

import (
	"math"
	"sort"
	"strings"

	"recruitment-dashboard/internal/model"
	"recruitment-dashboard/pkg/utils"
)

// groupResult accumulates the rows of one group value.
type groupResult struct {
	key         string
	total       int
	tally       StatusTally
	statusOrder []string
	statuses    map[string]int
}

// groupAggregator is the first pass of every aggregation: it walks the
// records once, keeping per-group counts and the first-seen group order.
type groupAggregator struct {
	groupBy model.Column
	order   []string
	results map[string]*groupResult
}

func newGroupAggregator(groupBy model.Column) *groupAggregator {
	return &groupAggregator{
		groupBy: groupBy,
		results: make(map[string]*groupResult),
	}
}

// seed registers a group even if no record belongs to it.
func (a *groupAggregator) seed(key string) *groupResult {
	res, ok := a.results[key]
	if !ok {
		res = &groupResult{key: key, statuses: make(map[string]int)}
		a.results[key] = res
		a.order = append(a.order, key)
	}
	return res
}

func (a *groupAggregator) processRecord(rec model.Record) {
	res := a.seed(rec.Value(a.groupBy))
	status := rec.RecruitmentStatus
	if _, ok := res.statuses[status]; !ok {
		res.statusOrder = append(res.statusOrder, status)
	}
	res.statuses[status]++
	res.tally.add(status)
	res.total++
}

func (a *groupAggregator) processAll(records []model.Record) {
	for _, r := range records {
		a.processRecord(r)
	}
}

// groups returns the accumulated groups in first-seen order.
func (a *groupAggregator) groups() []*groupResult {
	out := make([]*groupResult, 0, len(a.order))
	for _, k := range a.order {
		out = append(out, a.results[k])
	}
	return out
}

// CountByGroupAndStatus counts records per (group, status) pair.
//
// Groups are ordered by descending total across statuses; equal totals
// keep first-seen order. Within a group, statuses appear in first-seen
// order. Pairs with no records are never emitted, so the counts always sum
// to len(records). Missing group values form the "" group.
func CountByGroupAndStatus(records []model.Record, groupBy model.Column) []model.StatusCount {
	agg := newGroupAggregator(groupBy)
	agg.processAll(records)

	groups := agg.groups()
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].total > groups[j].total
	})

	var out []model.StatusCount
	for _, g := range groups {
		for _, status := range g.statusOrder {
			out = append(out, model.StatusCount{
				Group:      g.key,
				Status:     status,
				Count:      g.statuses[status],
				GroupTotal: g.total,
			})
		}
	}
	return out
}

// GroupOrder returns the distinct groups of a CountByGroupAndStatus result
// in display order.
func GroupOrder(counts []model.StatusCount) []string {
	var order []string
	seen := make(map[string]bool)
	for _, c := range counts {
		if !seen[c.Group] {
			seen[c.Group] = true
			order = append(order, c.Group)
		}
	}
	return order
}

// SortMode orders FulfillmentByGroup results.
type SortMode string

const (
	SortFirstSeen SortMode = "first_seen"
	SortValueDesc SortMode = "value_desc"
	SortValueAsc  SortMode = "value_asc"
	SortLabelAsc  SortMode = "label_asc"
	SortLabelDesc SortMode = "label_desc"
)

// ParseSortMode accepts a sort mode name; "" is SortFirstSeen.
func ParseSortMode(s string) (SortMode, bool) {
	switch m := SortMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return SortFirstSeen, true
	case SortFirstSeen, SortValueDesc, SortValueAsc, SortLabelAsc, SortLabelDesc:
		return m, true
	default:
		return "", false
	}
}

type groupOptions struct {
	sort  SortMode
	seeds []string
}

// GroupOption configures FulfillmentByGroup.
type GroupOption func(*groupOptions)

// WithSort requests an explicit display order.
func WithSort(mode SortMode) GroupOption {
	return func(o *groupOptions) { o.sort = mode }
}

// WithGroups pre-registers group values, typically the distinct values of
// the full table, so groups emptied by a filter still appear (undefined).
// Seeded groups come first, in the given order.
func WithGroups(values []string) GroupOption {
	return func(o *groupOptions) { o.seeds = append(o.seeds, values...) }
}

// FulfillmentByGroup computes recruit/(open+recruit)*100 per group value.
// Groups whose OPEN+RECRUIT count is zero are kept with a NaN percentage.
// Without WithSort the result follows first-seen group order.
func FulfillmentByGroup(records []model.Record, groupBy model.Column, opts ...GroupOption) []model.GroupFulfillment {
	o := groupOptions{sort: SortFirstSeen}
	for _, opt := range opts {
		opt(&o)
	}

	agg := newGroupAggregator(groupBy)
	for _, s := range o.seeds {
		agg.seed(s)
	}
	agg.processAll(records)

	out := make([]model.GroupFulfillment, 0, len(agg.order))
	for _, g := range agg.groups() {
		pct := g.tally.RecruitedShare()
		out = append(out, model.GroupFulfillment{
			Group:      g.key,
			Open:       g.tally.Open,
			Recruit:    g.tally.Recruit,
			Other:      g.tally.Other,
			Percentage: pct,
			Display:    utils.FormatPercent(pct),
		})
	}
	SortGroups(out, o.sort)
	return out
}

// SortGroups orders fulfillment groups in place. Undefined percentages sort
// last for value modes; unknown modes keep the current order.
func SortGroups(groups []model.GroupFulfillment, mode SortMode) {
	switch mode {
	case SortValueDesc:
		sort.SliceStable(groups, byPercentage(groups, true))
	case SortValueAsc:
		sort.SliceStable(groups, byPercentage(groups, false))
	case SortLabelAsc:
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].Group < groups[j].Group })
	case SortLabelDesc:
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].Group > groups[j].Group })
	default:
		// keep grouping order
	}
}

func byPercentage(groups []model.GroupFulfillment, desc bool) func(i, j int) bool {
	return func(i, j int) bool {
		a, b := groups[i].Percentage, groups[j].Percentage
		switch {
		case math.IsNaN(a):
			return false
		case math.IsNaN(b):
			return true
		case desc:
			return a > b
		default:
			return a < b
		}
	}
}
