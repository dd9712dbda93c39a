package pipeline

import (
	"sort"
	"time"

	"recruitment-dashboard/internal/model"
)

// Table is the loaded recruitment sheet. It is built once at startup,
// never mutated afterwards and safe to share between goroutines.
type Table struct {
	source   Source
	columns  []string
	records  []model.Record
	loadedAt time.Time
}

// NewTable wraps already-parsed records. The slices are copied.
func NewTable(src Source, columns []string, records []model.Record) *Table {
	return &Table{
		source:   src,
		columns:  append([]string(nil), columns...),
		records:  append([]model.Record(nil), records...),
		loadedAt: time.Now().UTC(),
	}
}

func (t *Table) Len() int            { return len(t.records) }
func (t *Table) Source() Source      { return t.source }
func (t *Table) LoadedAt() time.Time { return t.loadedAt }

// Columns returns the source header row.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Records returns a copy of every row in source order.
func (t *Table) Records() []model.Record {
	return append([]model.Record(nil), t.records...)
}

// Info summarizes the table for health endpoints.
func (t *Table) Info() model.TableInfo {
	return model.TableInfo{
		Source:   t.source.Path,
		Type:     string(t.source.Type),
		Rows:     len(t.records),
		LoadedAt: t.loadedAt,
	}
}

// DistinctValues returns the non-missing values of a column, sorted ascending.
func (t *Table) DistinctValues(c model.Column) []string {
	return DistinctValues(t.records, c)
}

// FilterOptions lists the selectable values of every filter dimension:
// All followed by the sorted distinct values.
func (t *Table) FilterOptions() []model.FilterOption {
	out := make([]model.FilterOption, 0, len(model.FilterDimensions))
	for _, c := range model.FilterDimensions {
		values := append([]string{model.All}, t.DistinctValues(c)...)
		out = append(out, model.FilterOption{
			Dimension: string(c),
			Key:       c.Key(),
			Values:    values,
		})
	}
	return out
}

// DistinctValues returns the non-missing values of a column in records,
// sorted ascending.
func DistinctValues(records []model.Record, c model.Column) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range records {
		v := r.Value(c)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
