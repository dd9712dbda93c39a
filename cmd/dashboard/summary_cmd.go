package main

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"recruitment-dashboard/internal/model"
	"recruitment-dashboard/internal/pipeline"
	"recruitment-dashboard/internal/render"
	"recruitment-dashboard/pkg/utils"
)

type chartArtifact struct {
	Path string `json:"path"`
	Type string `json:"type"`
}

type summaryOutput struct {
	Command    string           `json:"command"`
	DurationMS int64            `json:"duration_ms"`
	Charts     []chartArtifact  `json:"charts,omitempty"`
	Result     *model.Dashboard `json:"result"`
}

func newSummaryCmd(root *rootOptions) *cobra.Command {
	var (
		filters   = make(map[model.Column]*string, len(model.FilterDimensions))
		sortMode  string
		chartsDir string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Compute the dashboard for a filter selection and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, table, err := root.load(cmd)
			if err != nil {
				return err
			}

			values := make(map[string]string, len(filters))
			for c, v := range filters {
				values[c.Key()] = *v
			}
			sel, err := pipeline.ParseSelection(values)
			if err != nil {
				return err
			}

			opts := cfg.DashboardOptions()
			if sortMode != "" {
				mode, ok := pipeline.ParseSortMode(sortMode)
				if !ok {
					return errors.Errorf("invalid --sort %q", sortMode)
				}
				opts.RegionSort = mode
			}

			start := time.Now()
			d, err := pipeline.BuildDashboard(table, sel, opts)
			if err != nil {
				return err
			}

			out := summaryOutput{Command: "summary", Result: d}
			if chartsDir != "" {
				out.Charts, err = writeCharts(chartsDir, d, cfg.Logger())
				if err != nil {
					return err
				}
			}
			out.DurationMS = time.Since(start).Milliseconds()
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}

	for _, c := range model.FilterDimensions {
		v := model.All
		filters[c] = &v
		cmd.Flags().StringVar(filters[c], flagName(c), model.All, "Filter on "+string(c))
	}
	cmd.Flags().StringVar(&sortMode, "sort", "", "Region order: first_seen, value_desc, value_asc, label_asc, label_desc")
	cmd.Flags().StringVar(&chartsDir, "charts", "", "Also write SVG charts into this directory")
	return cmd
}

// flagName turns "Job Title" into "job-title".
func flagName(c model.Column) string {
	b := []byte(c.Key())
	for i := range b {
		if b[i] == '_' {
			b[i] = '-'
		}
	}
	return string(b)
}

func writeCharts(dir string, d *model.Dashboard, logger logrus.FieldLogger) ([]chartArtifact, error) {
	om := utils.NewOutputManager(dir)
	var written []chartArtifact

	svg, err := render.PrincipleOverviewSVG(d.PrincipleOverview)
	switch {
	case errors.Is(err, render.ErrNoData):
		logger.Warn("principle overview is empty, chart skipped")
	case err != nil:
		return nil, err
	default:
		path, err := om.WriteFile("principles.svg", svg)
		if err != nil {
			return nil, err
		}
		written = append(written, chartArtifact{Path: path, Type: om.FileType(path)})
	}

	for _, panel := range d.Regions {
		svg, err := render.RegionFulfillmentSVG(panel)
		if errors.Is(err, render.ErrNoData) {
			logger.WithField("agency", panel.Agency).Warn("no regions, chart skipped")
			continue
		}
		if err != nil {
			return nil, err
		}
		path, err := om.WriteFile("region_"+panel.Agency+".svg", svg)
		if err != nil {
			return nil, err
		}
		written = append(written, chartArtifact{Path: path, Type: om.FileType(path)})
	}
	return written, nil
}
