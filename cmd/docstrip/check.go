package docstrip

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sceneryeditorx/docstrip/internal/banner"
	"github.com/sceneryeditorx/docstrip/internal/report"
	"github.com/sceneryeditorx/docstrip/internal/source"
)

var (
	flagYAML   bool
	flagStrict bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Report which files carry the license banner",
		Long: "check inspects each listed file's banner window and reports whether it holds\n" +
			"a recognized license banner, with the first failing condition when it does not.\n" +
			"Files are named explicitly; check never walks directories.",
		Args: cobra.MinimumNArgs(1),
		RunE: runCheck,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().BoolVar(&flagYAML, "yaml", false, "emit a YAML document instead of text columns")
	cmd.Flags().BoolVar(&flagStrict, "strict", false, "exit 1 when any file lacks a banner")
}

func runCheck(_ *cobra.Command, args []string) error {
	results := checkPaths(args)

	if flagYAML {
		if err := report.WriteYAML(os.Stdout, results); err != nil {
			return err
		}
	} else {
		report.PrintText(os.Stdout, results)
	}

	if flagStrict && report.AnyMissing(results) {
		os.Exit(1)
	}
	return nil
}

// checkPaths inspects each explicitly named file. An unreadable file cannot
// demonstrate a header, so it reports as such and counts as missing.
func checkPaths(paths []string) []report.Result {
	results := make([]report.Result, 0, len(paths))
	for _, path := range paths {
		b, err := os.ReadFile(path)
		if err != nil {
			results = append(results, report.Result{Path: path, Reason: "unreadable"})
			continue
		}
		d := banner.Detect(source.Lossy(b))
		results = append(results, report.Result{Path: path, Banner: d.Strip, Reason: string(d.Reason)})
	}
	return results
}
