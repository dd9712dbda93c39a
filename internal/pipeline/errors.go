package pipeline

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
)

var (
	ErrUnknownSourceType = errors.New("unknown source type")
	ErrMissingColumns    = errors.New("missing required columns")
	ErrUnknownDimension  = errors.New("unknown filter dimension")
	ErrEmptySource       = errors.New("source has no header row")
)

// MissingColumnsError lists the required columns absent from a source.
type MissingColumnsError struct {
	Source  string
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s: missing required columns: %s", e.Source, strings.Join(e.Missing, ", "))
}

func (e *MissingColumnsError) Is(target error) bool {
	return target == ErrMissingColumns
}
