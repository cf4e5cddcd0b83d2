package cli

import (
	"github.com/spf13/cobra"

	"github.com/Calebjackson-photonics/structured-light-education/internal/domain"
	"github.com/Calebjackson-photonics/structured-light-education/internal/infra/logger"
	"github.com/Calebjackson-photonics/structured-light-education/internal/infra/render"
)

const defaultPhaseOut = "phase_basics.png"

func phaseCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "phase",
		Short: "Render the basic optical phase map arctan2(y, x)",
		Args:  cobra.NoArgs,
		RunE:  runPhase,
	}

	f := c.Flags()
	f.Int("grid", domain.DefaultPhaseGridSize, "samples per axis")
	f.Float64("extent", domain.DefaultPhaseExtent, "half-width of the square window")
	f.StringP("out", "o", defaultPhaseOut, "output PNG path")
	f.Bool("show", false, "open the figure in a window after saving")
	f.String("config", "", "YAML config file")
	f.Int("workers", 0, "rows computed concurrently (0 = one per CPU)")
	f.String("output-dir", "", "directory for figures given by bare name")
	f.String("format", formatPretty, "Output format: pretty|json")
	return c
}

func runPhase(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	format, _ := flags.GetString("format")
	if err := checkFormat(format); err != nil {
		return err
	}

	cfg, err := resolveConfig(flags, sectionPhase)
	if err != nil {
		return err
	}

	out, _ := flags.GetString("out")
	show, _ := flags.GetBool("show")

	uc, err := newFigureUseCase(cfg, render.Viridis, show)
	if err != nil {
		return err
	}

	report, err := uc.PhaseBasics(cmd.Context(), cfg.Phase.GridSize, cfg.Phase.Extent, out)
	if err != nil {
		logger.L().Error("phase.failed", "err", err)
		return err
	}
	logger.L().Info("phase.done",
		"grid", report.GridSize,
		"extent", report.Extent,
		"path", report.OutputPath,
		"duration", report.Duration(),
	)

	return printReport(cmd.OutOrStdout(), report, format)
}
