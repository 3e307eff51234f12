package docstrip

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// gendocs regenerates the CLI reference at docs/cli.md from the command
// tree. Maintainer-only; hidden from help output.
func init() {
	cmd := &cobra.Command{
		Use:    "gendocs",
		Short:  "Regenerate docs/cli.md",
		Hidden: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			var out bytes.Buffer
			out.WriteString("# docstrip CLI reference\n")
			writeCommandDoc(&out, rootCmd)
			for _, c := range rootCmd.Commands() {
				if c.Hidden || c.Name() == "help" {
					continue
				}
				writeCommandDoc(&out, c)
			}
			if err := os.MkdirAll("docs", 0755); err != nil {
				return err
			}
			return os.WriteFile(filepath.Join("docs", "cli.md"), out.Bytes(), 0644)
		},
	}
	rootCmd.AddCommand(cmd)
}

func writeCommandDoc(out *bytes.Buffer, c *cobra.Command) {
	out.WriteString("\n## " + c.CommandPath() + "\n\n")
	if c.Long != "" {
		out.WriteString(c.Long + "\n")
	} else if c.Short != "" {
		out.WriteString(c.Short + "\n")
	}
	out.WriteString("\n```\n" + strings.TrimRight(c.UseLine(), " ") + "\n```\n")
	if flags := c.Flags().FlagUsages(); strings.TrimSpace(flags) != "" {
		out.WriteString("\nFlags:\n\n```\n" + strings.TrimRight(flags, "\n") + "\n```\n")
	}
}
