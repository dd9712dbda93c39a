package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"recruitment-dashboard/internal/pipeline"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	require.Equal(t, "data/DB_BI_AMK_AKP.xlsx", cfg.Data.Path)
	require.Equal(t, []string{"AMK", "AKP"}, cfg.KPIAgencies())
	require.Equal(t, 8080, cfg.ServerPort)
	require.Equal(t, ":8080", cfg.Address())
	require.Equal(t, 30*time.Minute, cfg.SessionTTL)
	require.True(t, cfg.Prometheus.Enabled)
	require.Equal(t, "/metrics", cfg.Prometheus.Path)
	require.Equal(t, logrus.InfoLevel, cfg.Logger().GetLevel())

	src, err := cfg.Data.Source()
	require.NoError(t, err)
	require.Equal(t, pipeline.SourceXLSX, src.Type)
}

func TestLoadFromEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "DASHBOARD_DATA_PATH=export.csv\nDASHBOARD_KPI_AGENCIES= AMK , ,XYZ\nLOG_LEVEL=debug\nLOG_FORMAT=json\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))
	t.Cleanup(func() {
		for _, k := range []string{"DASHBOARD_DATA_PATH", "DASHBOARD_KPI_AGENCIES", "LOG_LEVEL", "LOG_FORMAT"} {
			os.Unsetenv(k)
		}
	})

	cfg, err := Load([]string{envFile, filepath.Join(dir, ".env.local")})
	require.NoError(t, err)

	require.Equal(t, []string{"AMK", "XYZ"}, cfg.KPIAgencies())
	require.Equal(t, logrus.DebugLevel, cfg.Logger().GetLevel())
	require.IsType(t, &logrus.JSONFormatter{}, cfg.Logger().Formatter)

	opts := cfg.DashboardOptions()
	require.Equal(t, []string{"AMK", "XYZ"}, opts.KPIAgencies)
	require.Equal(t, pipeline.SortFirstSeen, opts.RegionSort)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown extension": {"DASHBOARD_DATA_PATH": "data.parquet"},
		"unknown type":      {"DASHBOARD_SOURCE_TYPE": "parquet"},
		"no agencies":       {"DASHBOARD_KPI_AGENCIES": " , "},
		"zero ttl":          {"SESSION_TTL": "0s"},
		"bad log format":    {"LOG_FORMAT": "xml"},
		"bad region sort":   {"DASHBOARD_REGION_SORT": "random"},
	}
	for name, vars := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range vars {
				t.Setenv(k, v)
			}
			_, err := Load(nil)
			require.Error(t, err)
		})
	}
}

func TestLoadEnvSkipsMissingFiles(t *testing.T) {
	n, err := LoadEnv([]string{filepath.Join(t.TempDir(), "nope.env")})
	require.NoError(t, err)
	require.Zero(t, n)
}
