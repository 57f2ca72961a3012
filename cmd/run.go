package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/careerfit/internal/app"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	d, err := setup(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	return app.Run(cmd.Context(), app.Options{
		Catalog:   d.catalog,
		Logger:    d.logger,
		ReportDir: d.cfg.ReportDir,
	})
}
