package docstrip

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the docstrip version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println("docstrip", buildVersion())
		},
	}
	rootCmd.AddCommand(cmd)
}

// buildVersion appends the short VCS revision from build info when present,
// so unstamped dev builds are still identifiable.
func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 7 {
				return version + " (" + s.Value[:7] + ")"
			}
		}
	}
	return version
}
