package docstrip

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sceneryeditorx/docstrip/internal/banner"
	"github.com/sceneryeditorx/docstrip/internal/source"
)

var version = "0.1.0"

// rootCmd is both the base Cobra command and the filter itself: the
// documentation generator invokes `docstrip <file>` per source file.
var rootCmd = &cobra.Command{
	Use:   "docstrip [file]",
	Short: "Strip Scenery Editor X license banners for doc generation",
	Long: "docstrip is the documentation-generator input filter for the Scenery Editor X\n" +
		"source tree. It reads one file (or stdin), removes the fixed 12-line license\n" +
		"banner when present, and writes the rest to stdout byte-for-byte.",
	Args:          cobra.MaximumNArgs(1),
	RunE:          runFilter,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the docstrip CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func runFilter(_ *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	} else if term.IsTerminal(int(os.Stdin.Fd())) {
		// Hint goes to stderr; stdout stays reserved for the document.
		fmt.Fprintln(os.Stderr, "docstrip: reading from stdin (pass a file path or pipe a source file)")
	}
	filter(os.Stdout, os.Stdin, path)
	return nil
}

// filter reads one document from path or from the stream and writes the
// filtered result. It never fails: unreadable input degrades to an empty
// document so the calling toolchain is not aborted.
func filter(w io.Writer, stdin io.Reader, path string) {
	var input string
	if path != "" {
		input = source.ReadFile(path)
	} else {
		input = source.ReadAll(stdin)
	}
	_, _ = io.WriteString(w, banner.Process(input))
}
