package pipeline

import "recruitment-dashboard/internal/model"

func row(agency, principle, regional, status string) model.Record {
	return model.Record{
		Agency:            agency,
		Principle:         principle,
		Area:              "Java",
		JobTitle:          "Sales Promotor",
		Regional:          regional,
		StatusQuota:       "Replacement",
		RecruitmentStatus: status,
	}
}

// sampleRecords has 7 AMK rows and 3 AKP rows, interleaved.
func sampleRecords() []model.Record {
	return []model.Record{
		row("AMK", "Unilever", "Region A", model.StatusOpen),
		row("AKP", "Nestle", "Region C", model.StatusRecruit),
		row("AMK", "Unilever", "Region A", model.StatusRecruit),
		row("AMK", "Nestle", "Region A", model.StatusOpen),
		row("AKP", "Danone", "Region C", model.StatusOpen),
		row("AMK", "Danone", "Region B", "CANCEL"),
		row("AMK", "Unilever", "Region A", model.StatusOpen),
		row("AKP", "Nestle", "Region D", model.StatusOpen),
		row("AMK", "Nestle", "Region A", model.StatusRecruit),
		row("AMK", "Unilever", "Region B", "HOLD"),
	}
}

func withStatuses(open, recruit int) []model.Record {
	var out []model.Record
	for i := 0; i < open; i++ {
		out = append(out, row("AMK", "P", "R", model.StatusOpen))
	}
	for i := 0; i < recruit; i++ {
		out = append(out, row("AMK", "P", "R", model.StatusRecruit))
	}
	return out
}
