package pipeline

import (
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/require"

	"recruitment-dashboard/internal/model"
)

func TestApplyFiltersIdentity(t *testing.T) {
	records := sampleRecords()

	require.Equal(t, records, ApplyFilters(records, model.NewSelection()))
	require.Equal(t, records, ApplyFilters(records, nil))
}

func TestApplyFiltersUnconstrainedResultIsACopy(t *testing.T) {
	records := sampleRecords()
	want := sampleRecords()

	got := ApplyFilters(records, model.NewSelection())
	got[0].Agency = "XXX"
	got = append(got[:1], got[2:]...)

	require.Equal(t, want, records)
}

func TestApplyFiltersAgencyKeepsOrder(t *testing.T) {
	records := sampleRecords()

	got := ApplyFilters(records, model.Selection{model.ColumnAgency: "AMK"})
	require.Len(t, got, 7)

	var want []model.Record
	for _, r := range records {
		if r.Agency == "AMK" {
			want = append(want, r)
		}
	}
	require.Equal(t, want, got)
}

func TestApplyFiltersConjunctive(t *testing.T) {
	sel := model.NewSelection()
	sel[model.ColumnAgency] = "AMK"
	sel[model.ColumnPrinciple] = "Nestle"

	got := ApplyFilters(sampleRecords(), sel)
	require.Len(t, got, 2)
	for _, r := range got {
		require.Equal(t, "AMK", r.Agency)
		require.Equal(t, "Nestle", r.Principle)
	}
}

func TestApplyFiltersExactMatch(t *testing.T) {
	records := sampleRecords()

	require.Empty(t, ApplyFilters(records, model.Selection{model.ColumnAgency: "amk"}))
	require.Empty(t, ApplyFilters(records, model.Selection{model.ColumnAgency: "AMK "}))
	require.Empty(t, ApplyFilters(records, model.Selection{model.ColumnRegional: "Nowhere"}))
}

func TestApplyFiltersDoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	before := append([]model.Record(nil), records...)

	_ = ApplyFilters(records, model.Selection{model.ColumnAgency: "AKP"})
	require.Equal(t, before, records)
}

func TestParseSelection(t *testing.T) {
	sel, err := ParseSelection(map[string]string{
		"agency":    "AMK",
		"Job Title": "Sales Promotor",
		"regional":  "",
	})
	require.NoError(t, err)
	require.Equal(t, "AMK", sel[model.ColumnAgency])
	require.Equal(t, "Sales Promotor", sel[model.ColumnJobTitle])
	require.Equal(t, model.All, sel[model.ColumnRegional])
	require.Equal(t, model.All, sel[model.ColumnArea])
	require.Equal(t, 2, sel.Active())

	_, err = ParseSelection(map[string]string{"salary": "high"})
	require.True(t, errors.Is(err, ErrUnknownDimension))

	_, err = ParseSelection(map[string]string{"recruitment_status": "OPEN"})
	require.True(t, errors.Is(err, ErrUnknownDimension))
}
