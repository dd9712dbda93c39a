package pipeline

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"recruitment-dashboard/internal/model"
)

var sheetHeader = []string{"Agency", "Principle", "Area", "Job Title", "Regional", "Status Quota", "Recruitment Status"}

func writeXLSX(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "DB_BI_AMK_AKP.xlsx")
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(sheetHeader))
	for i, h := range sheetHeader {
		header[i] = h
	}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		r := r
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadTableXLSX(t *testing.T) {
	path := writeXLSX(t, [][]interface{}{
		{"AMK", "Unilever", "Java", "Sales", "Region A", "New", "OPEN"},
		{"AKP", "Nestle", "Bali", "Driver", "Region C", "Replacement", "RECRUIT"},
		{"AMK", "Nestle", "Java", "Sales", "", "New", "OPEN"},
	})

	table, err := LoadTable(context.Background(), Source{Path: path}, nil)
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())
	require.Equal(t, SourceXLSX, table.Source().Type)

	records := table.Records()
	require.Equal(t, "Unilever", records[0].Principle)
	require.Equal(t, "Driver", records[1].JobTitle)
	require.Equal(t, "", records[2].Regional)
	require.Equal(t, []string{"Region A", "Region C"}, table.DistinctValues(model.ColumnRegional))
}

func TestLoadTableCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")
	content := "\ufeff Agency ,Principle,Area,Job Title,Regional,\"Status Quota\",Recruitment Status\n" +
		"AMK,Unilever,Java,Sales,Region A,New,OPEN\n" +
		"AKP,Nestle,Bali,Driver,Region C,Replacement\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	table, err := LoadTable(context.Background(), Source{Path: path}, nil)
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	records := table.Records()
	require.Equal(t, "AMK", records[0].Agency)
	require.Equal(t, model.StatusOpen, records[0].RecruitmentStatus)
	require.Equal(t, "", records[1].RecruitmentStatus)
}

func TestLoadTableJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	content := `[
		{"Agency":"AMK","Principle":"Unilever","Area":"Java","Job Title":"Sales","Regional":"Region A","Status Quota":12,"Recruitment Status":"OPEN"},
		{"Agency":"AKP","Principle":null,"Area":"Bali","Job Title":"Driver","Regional":"Region C","Status Quota":"New","Recruitment Status":"RECRUIT"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	table, err := LoadTable(context.Background(), Source{Path: path}, nil)
	require.NoError(t, err)

	records := table.Records()
	require.Equal(t, "12", records[0].StatusQuota)
	require.Equal(t, "", records[1].Principle)
}

func TestLoadTableSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recruitment.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE recruitment (
		"Agency" TEXT, "Principle" TEXT, "Area" TEXT, "Job Title" TEXT,
		"Regional" TEXT, "Status Quota" INTEGER, "Recruitment Status" TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO recruitment VALUES
		('AMK','Unilever','Java','Sales','Region A',3,'OPEN'),
		('AKP','Nestle','Bali','Driver',NULL,1,'RECRUIT')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	table, err := LoadTable(context.Background(), Source{Path: path}, nil)
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	records := table.Records()
	require.Equal(t, "3", records[0].StatusQuota)
	require.Equal(t, "", records[1].Regional)

	_, err = LoadTable(context.Background(), Source{Type: SourceSQLite, Path: path, Table: "missing"}, nil)
	require.Error(t, err)
}

func TestLoadTableMissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte("Agency,Principle,Area\nAMK,Unilever,Java\n"), 0o600))

	_, err := LoadTable(context.Background(), Source{Path: path}, nil)
	require.True(t, errors.Is(err, ErrMissingColumns))

	var mc *MissingColumnsError
	require.True(t, errors.As(err, &mc))
	require.Equal(t, []string{"Job Title", "Regional", "Status Quota", "Recruitment Status"}, mc.Missing)
}

func TestLoadTableErrors(t *testing.T) {
	_, err := LoadTable(context.Background(), Source{Path: "data.parquet"}, nil)
	require.True(t, errors.Is(err, ErrUnknownSourceType))

	_, err = LoadTable(context.Background(), Source{Path: filepath.Join(t.TempDir(), "absent.xlsx")}, nil)
	require.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	_, err = LoadTable(context.Background(), Source{Path: empty}, nil)
	require.True(t, errors.Is(err, ErrEmptySource))
}

func TestTableFilterOptions(t *testing.T) {
	table := NewTable(Source{Path: "mem"}, sheetHeader, sampleRecords())

	opts := table.FilterOptions()
	require.Len(t, opts, len(model.FilterDimensions))
	require.Equal(t, "Agency", opts[0].Dimension)
	require.Equal(t, []string{model.All, "AKP", "AMK"}, opts[0].Values)
	require.Equal(t, []string{model.All, "Danone", "Nestle", "Unilever"}, opts[1].Values)
	require.Equal(t, "job_title", opts[3].Key)
}
