// Package report renders banner-check results for the check subcommand.
package report

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// Result describes the banner state of one checked file.
type Result struct {
	Path   string `yaml:"path"`
	Banner bool   `yaml:"banner"`
	Reason string `yaml:"reason"`
}

// Summary aggregates results for the report footer.
type Summary struct {
	Checked int `yaml:"checked"`
	With    int `yaml:"with_banner"`
	Without int `yaml:"without_banner"`
}

// Document is the YAML output shape of the check subcommand.
type Document struct {
	Files   []Result `yaml:"files"`
	Summary Summary  `yaml:"summary"`
}

func summarize(results []Result) Summary {
	s := Summary{Checked: len(results)}
	for _, r := range results {
		if r.Banner {
			s.With++
		} else {
			s.Without++
		}
	}
	return s
}

// PrintText writes results as aligned columns, one file per line, with a
// count footer.
func PrintText(w io.Writer, results []Result) {
	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	maxPath := 4
	for _, r := range results {
		if l := len(r.Path); l > maxPath {
			maxPath = l
		}
	}
	for _, r := range results {
		status := "missing"
		if r.Banner {
			status = "banner"
		}
		fmt.Fprintf(w, "%-7s %-*s %s\n", status, maxPath, r.Path, r.Reason)
	}
	s := summarize(results)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Checked: %d (with banner: %d, without: %d)\n", s.Checked, s.With, s.Without)
}

// WriteYAML writes results as a single YAML document.
func WriteYAML(w io.Writer, results []Result) error {
	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	doc := Document{Files: results, Summary: summarize(results)}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(doc)
}

// AnyMissing reports whether any checked file lacks a recognized banner.
func AnyMissing(results []Result) bool {
	for _, r := range results {
		if !r.Banner {
			return true
		}
	}
	return false
}
