package pipeline

import (
	"math"

	"recruitment-dashboard/internal/model"
)

// StatusTally counts recruitment statuses. Other holds every status that is
// neither OPEN nor RECRUIT (including missing).
type StatusTally struct {
	Open    int `json:"open"`
	Recruit int `json:"recruit"`
	Other   int `json:"other"`
}

func (t *StatusTally) add(status string) {
	switch status {
	case model.StatusOpen:
		t.Open++
	case model.StatusRecruit:
		t.Recruit++
	default:
		t.Other++
	}
}

// Total is the number of records tallied.
func (t StatusTally) Total() int { return t.Open + t.Recruit + t.Other }

// Fulfillment is the headline KPI: 0 when there are no OPEN rows,
// otherwise (1 - recruit/(open+recruit)) * 100.
func (t StatusTally) Fulfillment() float64 {
	if t.Open == 0 {
		return 0
	}
	return (1 - float64(t.Recruit)/float64(t.Open+t.Recruit)) * 100
}

// RecruitedShare is the per-group chart figure: recruit/(open+recruit) * 100,
// NaN when the group has neither OPEN nor RECRUIT rows.
// It is the complement of Fulfillment.
func (t StatusTally) RecruitedShare() float64 {
	d := t.Open + t.Recruit
	if d == 0 {
		return math.NaN()
	}
	return float64(t.Recruit) / float64(d) * 100
}

// CountStatuses tallies the recruitment status of every record.
func CountStatuses(records []model.Record) StatusTally {
	var t StatusTally
	for _, r := range records {
		t.add(r.RecruitmentStatus)
	}
	return t
}

// Fulfillment computes the headline KPI over a subset.
func Fulfillment(records []model.Record) float64 {
	return CountStatuses(records).Fulfillment()
}

// RecruitedShare computes the per-group chart formula over a whole subset.
func RecruitedShare(records []model.Record) float64 {
	return CountStatuses(records).RecruitedShare()
}
