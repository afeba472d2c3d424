package main

import (
	"fmt"
	"text/tabwriter"

	"cv-builder/internal/templates"
	"cv-builder/pkg/logger"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available templates",
	RunE: func(cmd *cobra.Command, _ []string) error {
		registry := templates.Load(templatesDir, logger.NewNop())

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSOURCE\tDEFAULT")
		for _, info := range registry.List() {
			def := ""
			if info.Default {
				def = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.ID, info.Name, info.Source, def)
		}
		fmt.Fprintf(w, "\nregistry: %s\n", registry.State())
		return w.Flush()
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(templatesCmd)
}
