package pipeline

import (
	"strings"

	"recruitment-dashboard/internal/model"
)

// ValidateColumns checks that every required column is present in the
// header row of a source. Header names are compared after trimming.
func ValidateColumns(source string, headers []string) error {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[cleanHeader(h)] = true
	}

	var missing []string
	for _, c := range model.RequiredColumns {
		if !present[string(c)] {
			missing = append(missing, string(c))
		}
	}
	if len(missing) > 0 {
		return &MissingColumnsError{Source: source, Missing: missing}
	}
	return nil
}

// cleanHeader trims whitespace and strips quotes left behind by exporters.
func cleanHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.TrimSpace(h)
	return strings.ReplaceAll(h, `"`, "")
}
