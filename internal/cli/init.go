package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Calebjackson-photonics/structured-light-education/internal/infra/fsproject"
	"github.com/Calebjackson-photonics/structured-light-education/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a starter vortex.yaml and figures/ directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := filepath.Abs(path)
			if err != nil {
				return err
			}

			uc := usecase.NewInitProject(fsproject.NewInitializer())
			if err := uc.Execute(root, force); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Initialized vortex project in %s\n", root)
			return err
		},
	}

	c.Flags().StringVarP(&path, "path", "p", ".", "Target directory")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	return c
}
