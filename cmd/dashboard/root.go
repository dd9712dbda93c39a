package main

import (
	"github.com/spf13/cobra"

	"recruitment-dashboard/internal/config"
	"recruitment-dashboard/internal/pipeline"
)

type rootOptions struct {
	envFiles []string
	dataPath string
	sheet    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "dashboard",
		Short:        "Recruitment fulfillment dashboard",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", config.DefaultEnvFiles, "Env files to load when present")
	cmd.PersistentFlags().StringVar(&opts.dataPath, "data", "", "Source file (overrides DASHBOARD_DATA_PATH)")
	cmd.PersistentFlags().StringVar(&opts.sheet, "sheet", "", "Workbook sheet (overrides DASHBOARD_SHEET)")

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newSummaryCmd(opts))
	cmd.AddCommand(newOptionsCmd(opts))
	return cmd
}

// load reads the configuration and the source table. A table that cannot
// be loaded ends the command.
func (o *rootOptions) load(cmd *cobra.Command) (*config.Configuration, *pipeline.Table, error) {
	cfg, err := config.Load(o.envFiles)
	if err != nil {
		return nil, nil, err
	}
	if o.dataPath != "" {
		cfg.Data.Path = o.dataPath
		cfg.Data.SourceType = ""
	}
	if o.sheet != "" {
		cfg.Data.Sheet = o.sheet
	}
	src, err := cfg.Data.Source()
	if err != nil {
		return nil, nil, err
	}
	table, err := pipeline.LoadTable(cmd.Context(), src, cfg.Logger())
	if err != nil {
		return nil, nil, err
	}
	return cfg, table, nil
}
