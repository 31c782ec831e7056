package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// versionCmd prints build information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("Version: %s\n", version)
		cmd.Printf("Commit: %s\n", commit)
		cmd.Printf("Built: %s\n", date)
		cmd.Printf("Runtime: %s\n", fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH))
	},
}
