package pipeline

import (
	"github.com/go-faster/errors"

	"recruitment-dashboard/internal/model"
)

// ApplyFilters returns the records matching every non-All dimension of the
// selection. Matching is exact and case-sensitive; dimensions are
// AND-combined. Source order is preserved and the input is never modified.
// The result never shares a backing array with records, even when the
// selection has no constraints.
func ApplyFilters(records []model.Record, selection model.Selection) []model.Record {
	type constraint struct {
		column model.Column
		value  string
	}
	var constraints []constraint
	for _, c := range model.FilterDimensions {
		if v, ok := selection.Constraint(c); ok {
			constraints = append(constraints, constraint{column: c, value: v})
		}
	}
	if len(constraints) == 0 {
		return append([]model.Record(nil), records...)
	}

	// Single pass: a record survives only if it matches all constraints.
	out := make([]model.Record, 0, len(records))
	for _, r := range records {
		pass := true
		for _, c := range constraints {
			if r.Value(c.column) != c.value {
				pass = false
				break
			}
		}
		if pass {
			out = append(out, r)
		}
	}
	return out
}

// ParseSelection builds a selection from query keys or display names.
// Empty values and "All" impose no constraint.
func ParseSelection(values map[string]string) (model.Selection, error) {
	sel := model.NewSelection()
	for name, v := range values {
		c, ok := model.ParseColumn(name)
		if !ok || !model.IsFilterDimension(c) {
			return nil, errors.Wrapf(ErrUnknownDimension, "%q", name)
		}
		if v == "" {
			v = model.All
		}
		sel[c] = v
	}
	return sel, nil
}
