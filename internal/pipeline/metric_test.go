package pipeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"recruitment-dashboard/internal/model"
)

func TestFulfillment(t *testing.T) {
	require.InDelta(t, 60.0, Fulfillment(withStatuses(6, 4)), 1e-9)
	require.Equal(t, 0.0, Fulfillment(withStatuses(0, 5)))
	require.Equal(t, 0.0, Fulfillment(nil))
	require.Equal(t, 100.0, Fulfillment(withStatuses(3, 0)))
}

func TestFulfillmentIgnoresOtherStatuses(t *testing.T) {
	records := withStatuses(6, 4)
	records = append(records, row("AMK", "P", "R", "HOLD"), row("AMK", "P", "R", ""))

	require.InDelta(t, 60.0, Fulfillment(records), 1e-9)

	tally := CountStatuses(records)
	require.Equal(t, StatusTally{Open: 6, Recruit: 4, Other: 2}, tally)
	require.Equal(t, len(records), tally.Total())
}

func TestFulfillmentDecreasesWithRecruit(t *testing.T) {
	prev := Fulfillment(withStatuses(5, 0))
	for r := 1; r <= 20; r++ {
		cur := Fulfillment(withStatuses(5, r))
		require.Less(t, cur, prev, "recruit=%d", r)
		prev = cur
	}
}

func TestRecruitedShare(t *testing.T) {
	require.InDelta(t, 40.0, RecruitedShare(withStatuses(6, 4)), 1e-9)
	require.True(t, math.IsNaN(RecruitedShare(nil)))
	require.True(t, math.IsNaN(RecruitedShare([]model.Record{row("AMK", "P", "R", "HOLD")})))
	require.Equal(t, 100.0, RecruitedShare(withStatuses(0, 5)))
}
