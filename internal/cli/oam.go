package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Calebjackson-photonics/structured-light-education/internal/domain"
	"github.com/Calebjackson-photonics/structured-light-education/internal/infra/logger"
	"github.com/Calebjackson-photonics/structured-light-education/internal/infra/render"
)

func oamCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "oam",
		Short: "Render the phase and intensity of an OAM vortex beam",
		Args:  cobra.NoArgs,
		RunE:  runOAM,
	}
	addOAMFlags(c)
	return c
}

func addOAMFlags(c *cobra.Command) {
	f := c.Flags()
	f.IntP("charge", "l", domain.DefaultCharge, "topological charge l (any integer)")
	f.Int("grid", domain.DefaultGridSize, "samples per axis")
	f.Float64("extent", domain.DefaultExtent, "half-width of the square window")
	f.StringP("out", "o", "", "output PNG path (default: oam_l<charge>.png)")
	f.Bool("show", false, "open the figure in a window after saving")
	f.String("config", "", "YAML config file")
	f.Int("workers", 0, "rows computed concurrently (0 = one per CPU)")
	f.String("output-dir", "", "directory for figures given by bare name")
	f.String("cmap", render.Viridis, "phase colormap: viridis|twilight|hsv")
	f.String("format", formatPretty, "Output format: pretty|json")
}

func runOAM(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	format, _ := flags.GetString("format")
	if err := checkFormat(format); err != nil {
		return err
	}

	cfg, err := resolveConfig(flags, sectionVortex)
	if err != nil {
		return err
	}

	out, _ := flags.GetString("out")
	if out == "" {
		out = fmt.Sprintf("oam_l%d.png", cfg.Vortex.Charge)
	}
	show, _ := flags.GetBool("show")
	cmapName, _ := flags.GetString("cmap")

	uc, err := newFigureUseCase(cfg, cmapName, show)
	if err != nil {
		return err
	}

	report, err := uc.Vortex(cmd.Context(), cfg.Vortex, out)
	if err != nil {
		logger.L().Error("oam.failed", "err", err)
		return err
	}
	logger.L().Info("oam.done",
		"charge", report.Charge,
		"grid", report.GridSize,
		"extent", report.Extent,
		"path", report.OutputPath,
		"duration", report.Duration(),
	)

	return printReport(cmd.OutOrStdout(), report, format)
}
