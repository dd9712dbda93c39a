package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"recruitment-dashboard/internal/model"
)

const csvFixture = "Agency,Principle,Area,Job Title,Regional,Status Quota,Recruitment Status\n" +
	"AMK,Unilever,Java,Sales,Region A,New,OPEN\n" +
	"AMK,Unilever,Java,Sales,Region A,New,OPEN\n" +
	"AMK,Unilever,Java,Sales,Region A,New,RECRUIT\n" +
	"AKP,Nestle,Bali,Driver,Region C,New,RECRUIT\n"

func runCmd(t *testing.T, args ...string) []byte {
	t.Helper()
	dir := t.TempDir()
	data := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(data, []byte(csvFixture), 0o600))
	t.Setenv("LOG_LEVEL", "silent")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(dir, "none.env"), "--data", data}, args...))
	require.NoError(t, cmd.Execute())
	return out.Bytes()
}

func TestSummaryCommand(t *testing.T) {
	chartsDir := filepath.Join(t.TempDir(), "charts")
	raw := runCmd(t, "summary", "--agency", "AMK", "--charts", chartsDir)

	var out struct {
		Charts []chartArtifact `json:"charts"`
		Result struct {
			FilteredRecords int         `json:"filtered_records"`
			KPIs            []model.KPI `json:"kpis"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Equal(t, 3, out.Result.FilteredRecords)
	require.Equal(t, "66.7%", out.Result.KPIs[0].Display)

	require.FileExists(t, filepath.Join(chartsDir, "principles.svg"))
	require.FileExists(t, filepath.Join(chartsDir, "region_AMK.svg"))
	require.NoFileExists(t, filepath.Join(chartsDir, "region_AKP.svg"))

	require.Equal(t, []chartArtifact{
		{Path: filepath.Join(chartsDir, "principles.svg"), Type: "svg"},
		{Path: filepath.Join(chartsDir, "region_AMK.svg"), Type: "svg"},
	}, out.Charts)
}

func TestOptionsCommand(t *testing.T) {
	var opts []model.FilterOption
	require.NoError(t, json.Unmarshal(runCmd(t, "options"), &opts))
	require.Equal(t, []string{model.All, "AKP", "AMK"}, opts[0].Values)
}

func TestFlagName(t *testing.T) {
	require.Equal(t, "job-title", flagName(model.ColumnJobTitle))
	require.Equal(t, "status-quota", flagName(model.ColumnStatusQuota))
}

func TestSweepInterval(t *testing.T) {
	require.Equal(t, time.Second, sweepInterval(time.Second))
	require.Equal(t, 5*time.Minute, sweepInterval(20*time.Minute))
}
