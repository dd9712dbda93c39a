package model

import "strings"

// Column names a column of the recruitment sheet.
type Column string

const (
	ColumnAgency            Column = "Agency"
	ColumnPrinciple         Column = "Principle"
	ColumnArea              Column = "Area"
	ColumnJobTitle          Column = "Job Title"
	ColumnRegional          Column = "Regional"
	ColumnStatusQuota       Column = "Status Quota"
	ColumnRecruitmentStatus Column = "Recruitment Status"
)

// FilterDimensions are the columns a user can constrain, in sidebar order.
var FilterDimensions = []Column{
	ColumnAgency,
	ColumnPrinciple,
	ColumnArea,
	ColumnJobTitle,
	ColumnRegional,
	ColumnStatusQuota,
}

// RequiredColumns must all be present in a loaded sheet.
var RequiredColumns = append(append([]Column{}, FilterDimensions...), ColumnRecruitmentStatus)

// Key returns the query-string form of the column ("Job Title" -> "job_title").
func (c Column) Key() string {
	s := strings.ToLower(strings.TrimSpace(string(c)))
	s = strings.ReplaceAll(s, " ", "_")
	return strings.ReplaceAll(s, "-", "_")
}

// ParseColumn resolves a column from its display name, its query key or its
// sidebar label ("JOB TITLE", "PRINCIPLES").
func ParseColumn(name string) (Column, bool) {
	key := Column(name).Key()
	for _, c := range RequiredColumns {
		if c.Key() == key {
			return c, true
		}
	}
	if key == "principles" {
		return ColumnPrinciple, true
	}
	return "", false
}

// IsFilterDimension reports whether c can appear in a Selection.
func IsFilterDimension(c Column) bool {
	for _, d := range FilterDimensions {
		if d == c {
			return true
		}
	}
	return false
}

// Recruitment status values that take part in fulfillment math.
const (
	StatusOpen    = "OPEN"
	StatusRecruit = "RECRUIT"
)

// Record is one row of the recruitment sheet. Missing cells are "".
type Record struct {
	Agency            string `json:"agency"`
	Principle         string `json:"principle"`
	Area              string `json:"area"`
	JobTitle          string `json:"job_title"`
	Regional          string `json:"regional"`
	StatusQuota       string `json:"status_quota"`
	RecruitmentStatus string `json:"recruitment_status"`
}

// Value returns the cell for column c, or "" for an unknown column.
func (r Record) Value(c Column) string {
	switch c {
	case ColumnAgency:
		return r.Agency
	case ColumnPrinciple:
		return r.Principle
	case ColumnArea:
		return r.Area
	case ColumnJobTitle:
		return r.JobTitle
	case ColumnRegional:
		return r.Regional
	case ColumnStatusQuota:
		return r.StatusQuota
	case ColumnRecruitmentStatus:
		return r.RecruitmentStatus
	default:
		return ""
	}
}

// Set assigns the cell for column c. Unknown columns are ignored.
func (r *Record) Set(c Column, v string) {
	switch c {
	case ColumnAgency:
		r.Agency = v
	case ColumnPrinciple:
		r.Principle = v
	case ColumnArea:
		r.Area = v
	case ColumnJobTitle:
		r.JobTitle = v
	case ColumnRegional:
		r.Regional = v
	case ColumnStatusQuota:
		r.StatusQuota = v
	case ColumnRecruitmentStatus:
		r.RecruitmentStatus = v
	}
}

// All is the selection sentinel meaning "no constraint".
const All = "All"

// Selection maps filter dimensions to a selected value or All.
// A dimension absent from the map is treated as All.
type Selection map[Column]string

// NewSelection returns a selection with every dimension set to All.
func NewSelection() Selection {
	s := make(Selection, len(FilterDimensions))
	for _, c := range FilterDimensions {
		s[c] = All
	}
	return s
}

// Constraint returns the value a dimension is pinned to, if any.
func (s Selection) Constraint(c Column) (string, bool) {
	v, ok := s[c]
	if !ok || v == All {
		return "", false
	}
	return v, true
}

// Active counts the dimensions that carry a constraint.
func (s Selection) Active() int {
	n := 0
	for _, c := range FilterDimensions {
		if _, ok := s.Constraint(c); ok {
			n++
		}
	}
	return n
}

// Clone returns an independent copy with every dimension filled in.
func (s Selection) Clone() Selection {
	out := NewSelection()
	for c, v := range s {
		out[c] = v
	}
	return out
}

// Keyed renders the selection with query keys, for JSON payloads and logs.
func (s Selection) Keyed() map[string]string {
	out := make(map[string]string, len(FilterDimensions))
	for _, c := range FilterDimensions {
		v, ok := s[c]
		if !ok {
			v = All
		}
		out[c.Key()] = v
	}
	return out
}
