package docfilter

import "github.com/sceneryeditorx/docstrip/internal/banner"

// Re-export the filter types as aliases so external consumers can depend on
// a stable import path without reaching into internal packages.
type (
	Decision = banner.Decision
	Reason   = banner.Reason
)

// WindowLines is the fixed size of the banner region.
const WindowLines = banner.WindowLines

const (
	ReasonMatched      = banner.ReasonMatched
	ReasonTooShort     = banner.ReasonTooShort
	ReasonNoOpen       = banner.ReasonNoOpen
	ReasonNoProjectTag = banner.ReasonNoProjectTag
	ReasonNoClose      = banner.ReasonNoClose
)

// Process returns input unchanged, or with its first WindowLines lines
// removed when they form a recognized license banner.
func Process(input string) string { return banner.Process(input) }

// Detect reports the strip decision for input without applying it.
func Detect(input string) Decision { return banner.Detect(input) }
