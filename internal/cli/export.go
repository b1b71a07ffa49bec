package cli

import (
	"github.com/spf13/cobra"

	"github.com/osse101/craftlab/internal/catalog"
)

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	var ext string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active catalog as a catalog file",
		Long: `Write the active catalog (CATALOG_PATH or the built-in set) to stdout as a
catalog file that validate and --catalog accept. Discovery progress is not exported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := rootOpts.App(cmd)
			if err != nil {
				return err
			}

			data, err := catalog.Marshal(app.Catalog, ext, "exported by craftlab")
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to export catalog", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&ext, "as", catalog.ExtYAML, "file format (.json|.yaml)")
	return cmd
}
