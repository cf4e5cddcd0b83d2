package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Calebjackson-photonics/structured-light-education/internal/infra/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var logDir string
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "vortex",
		Short:        "vortex: optical phase singularity visualizer",
		Long:         "Render the phase and intensity of a textbook OAM vortex beam.\nWithout a subcommand, vortex behaves like `vortex oam`.",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			root := logDir
			if root == "" {
				wd, err := os.Getwd()
				if err != nil {
					wd = "."
				}
				root = wd
			}
			root, _ = filepath.Abs(root)

			// Logging is best effort; a read-only directory must not block rendering.
			c, _ := logger.Setup(logger.Config{
				Root:  root,
				Debug: debug,
			})
			cleanup = c
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if cleanup != nil {
				return cleanup()
			}
			return nil
		},
		RunE: runOAM,
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .vortex/logs/vortex.log")
	cmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "directory that receives .vortex/logs (default: current directory)")
	addOAMFlags(cmd)

	cmd.AddCommand(oamCmd())
	cmd.AddCommand(phaseCmd())
	cmd.AddCommand(initCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}
