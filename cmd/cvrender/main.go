package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var templatesDir string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "cvrender",
	Short: "Render CV documents to HTML or PDF",
	Long: `Render a CV JSON document locally with the same templates and
rasterizers the server uses.`,
	SilenceUsage: true,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().StringVar(&templatesDir, "templates-dir", "templates", "Directory with <id>.html template overrides")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
