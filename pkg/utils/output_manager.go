package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"
)

// OutputManager places rendered artifacts (chart SVGs, JSON summaries)
// under one base directory.
type OutputManager struct {
	BaseOutputDir string
}

func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{BaseOutputDir: baseOutputDir}
}

// EnsureOutputDirExists creates the base directory if needed.
func (om *OutputManager) EnsureOutputDirExists() error {
	if err := os.MkdirAll(om.BaseOutputDir, 0o755); err != nil {
		return errors.Wrapf(err, "create output directory %s", om.BaseOutputDir)
	}
	return nil
}

// OutputFilePath returns the path for fileName inside the base directory.
// Path separators are stripped from the name.
func (om *OutputManager) OutputFilePath(fileName string) string {
	return filepath.Join(om.BaseOutputDir, SafeFileName(fileName))
}

// WriteFile writes data to fileName inside the base directory and returns
// the full path.
func (om *OutputManager) WriteFile(fileName string, data []byte) (string, error) {
	if err := om.EnsureOutputDirExists(); err != nil {
		return "", err
	}
	path := om.OutputFilePath(fileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrapf(err, "write %s", path)
	}
	return path, nil
}

// FileType determines the artifact type based on extension
func (om *OutputManager) FileType(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".svg":
		return "svg"
	case ".json":
		return "json"
	case ".csv":
		return "csv"
	default:
		return "unknown"
	}
}

// SafeFileName replaces characters that cannot appear in a file name.
func SafeFileName(name string) string {
	name = strings.TrimSpace(name)
	r := strings.NewReplacer("/", "_", `\`, "_", ":", "_", " ", "_")
	return r.Replace(name)
}
