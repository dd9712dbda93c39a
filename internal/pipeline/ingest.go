package pipeline

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"recruitment-dashboard/internal/model"
	"recruitment-dashboard/internal/store"
	"recruitment-dashboard/pkg/utils"
)

// GenericRecord is one source row keyed by header name.
type GenericRecord map[string]interface{}

// SourceType selects how a source file is read.
type SourceType string

const (
	SourceXLSX   SourceType = "xlsx"
	SourceCSV    SourceType = "csv"
	SourceJSON   SourceType = "json"
	SourceSQLite SourceType = "sqlite"
)

// Source describes where the recruitment table lives.
type Source struct {
	Type  SourceType `json:"type"`
	Path  string     `json:"path"`
	Sheet string     `json:"sheet,omitempty"` // xlsx only, "" = first sheet
	Table string     `json:"table,omitempty"` // sqlite only
}

// DetectSourceType infers the source type from the file extension.
func DetectSourceType(path string) (SourceType, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx":
		return SourceXLSX, nil
	case ".csv":
		return SourceCSV, nil
	case ".json":
		return SourceJSON, nil
	case ".db", ".sqlite", ".sqlite3":
		return SourceSQLite, nil
	default:
		return "", errors.Wrapf(ErrUnknownSourceType, "extension %q", filepath.Ext(path))
	}
}

// ParseSourceType validates an explicit source type name.
func ParseSourceType(s string) (SourceType, error) {
	switch t := SourceType(strings.ToLower(strings.TrimSpace(s))); t {
	case SourceXLSX, SourceCSV, SourceJSON, SourceSQLite:
		return t, nil
	default:
		return "", errors.Wrapf(ErrUnknownSourceType, "%q", s)
	}
}

// LoadTable reads the source once and returns the immutable table.
// Any read failure or missing required column is returned as an error;
// callers treat it as fatal.
func LoadTable(ctx context.Context, src Source, logger logrus.FieldLogger) (*Table, error) {
	if src.Type == "" {
		t, err := DetectSourceType(src.Path)
		if err != nil {
			return nil, err
		}
		src.Type = t
	}
	if logger == nil {
		logger = discardLogger()
	}
	log := logger.WithFields(logrus.Fields{"component": "loader", "source": src.Path, "type": src.Type})
	start := time.Now()

	headers, rows, err := ingestSource(ctx, src)
	if err != nil {
		return nil, err
	}
	if err := ValidateColumns(src.Path, headers); err != nil {
		return nil, err
	}

	records := make([]model.Record, 0, len(rows))
	for i, row := range rows {
		if i%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, errors.Wrap(err, "load cancelled")
			}
		}
		records = append(records, toRecord(row))
	}

	table := NewTable(src, cleanHeaders(headers), records)
	tableRows.Set(float64(table.Len()))
	log.WithFields(logrus.Fields{
		"rows":        table.Len(),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("source table loaded")
	return table, nil
}

func ingestSource(ctx context.Context, src Source) ([]string, []GenericRecord, error) {
	switch src.Type {
	case SourceXLSX:
		return ingestXLSX(src.Path, src.Sheet)
	case SourceCSV:
		return ingestCSV(ctx, src.Path)
	case SourceJSON:
		return ingestJSON(src.Path)
	case SourceSQLite:
		return ingestSQLite(ctx, src.Path, src.Table)
	default:
		return nil, nil, errors.Wrapf(ErrUnknownSourceType, "%q", src.Type)
	}
}

// ------------------- XLSX -------------------

func ingestXLSX(path, sheet string) ([]string, []GenericRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open workbook %s", path)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil, errors.Wrapf(ErrEmptySource, "workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "read sheet %q", sheet)
	}
	if len(rows) == 0 {
		return nil, nil, errors.Wrapf(ErrEmptySource, "sheet %q", sheet)
	}
	headers, records := rowsToRecords(rows[0], rows[1:])
	return headers, records, nil
}

// ------------------- CSV -------------------

func ingestCSV(ctx context.Context, path string) ([]string, []GenericRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open csv %s", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, nil, errors.Wrapf(ErrEmptySource, "csv %s", path)
	}
	if err != nil {
		return nil, nil, errors.Wrapf(err, "read csv header %s", path)
	}

	var rows [][]string
	for {
		if err := ctx.Err(); err != nil {
			return nil, nil, errors.Wrap(err, "csv read cancelled")
		}
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, errors.Wrapf(err, "read csv %s", path)
		}
		rows = append(rows, row)
	}
	h, records := rowsToRecords(headers, rows)
	return h, records, nil
}

// ------------------- JSON -------------------

func ingestJSON(path string) ([]string, []GenericRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "read json %s", path)
	}

	var items []map[string]interface{}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, nil, errors.Wrapf(err, "decode json %s: expected an array of objects", path)
	}
	if len(items) == 0 {
		return nil, nil, errors.Wrapf(ErrEmptySource, "json %s", path)
	}

	var headers []string
	seen := make(map[string]bool)
	records := make([]GenericRecord, 0, len(items))
	for _, item := range items {
		rec := make(GenericRecord, len(item))
		for k, v := range item {
			key := cleanHeader(k)
			if !seen[key] {
				seen[key] = true
				headers = append(headers, key)
			}
			rec[key] = v
		}
		records = append(records, rec)
	}
	sort.Strings(headers)
	return headers, records, nil
}

// ------------------- SQLite -------------------

func ingestSQLite(ctx context.Context, path, table string) ([]string, []GenericRecord, error) {
	if table == "" {
		table = "recruitment"
	}
	db, err := store.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer db.Close()

	columns, rows, err := store.ReadTable(ctx, db, table)
	if err != nil {
		return nil, nil, err
	}

	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = cleanHeader(c)
	}
	records := make([]GenericRecord, 0, len(rows))
	for _, row := range rows {
		rec := make(GenericRecord, len(row))
		for i, c := range columns {
			rec[headers[i]] = row[c]
		}
		records = append(records, rec)
	}
	return headers, records, nil
}

// ------------------- helpers -------------------

// rowsToRecords keys positional rows by header. Short rows leave the
// trailing cells missing.
func rowsToRecords(header []string, rows [][]string) ([]string, []GenericRecord) {
	headers := cleanHeaders(header)
	records := make([]GenericRecord, 0, len(rows))
	for _, row := range rows {
		rec := make(GenericRecord, len(headers))
		for i, h := range headers {
			if i < len(row) {
				rec[h] = row[i]
			}
		}
		records = append(records, rec)
	}
	return headers, records
}

func cleanHeaders(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = cleanHeader(h)
	}
	return out
}

func toRecord(rec GenericRecord) model.Record {
	var r model.Record
	for _, c := range model.RequiredColumns {
		r.Set(c, utils.CellString(rec[string(c)]))
	}
	return r
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
