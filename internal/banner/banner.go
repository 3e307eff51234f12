package banner

import "strings"

// WindowLines is the fixed size of the banner region. Project license headers
// are always emitted as a twelve-line block, so the check never scans further.
const WindowLines = 12

const (
	commentOpen  = "/**"
	commentClose = "*/"
	projectTag   = "Scenery Editor X"
)

// Reason explains a Detect outcome. ReasonMatched means the window is a
// recognized banner; every other value names the first condition that failed.
type Reason string

const (
	ReasonMatched      Reason = "matched"
	ReasonTooShort     Reason = "too short"
	ReasonNoOpen       Reason = "no comment open"
	ReasonNoProjectTag Reason = "no project tag"
	ReasonNoClose      Reason = "no comment close"
)

// Decision is the outcome of inspecting an input's banner window.
type Decision struct {
	Strip  bool
	Reason Reason
}

// SplitLines splits s into lines, each retaining its trailing terminator
// bytes. A final segment with no newline is returned as its own line, so
// joining any suffix of the result reproduces the original bytes exactly.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	var lines []string
	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			lines = append(lines, s)
			return lines
		}
		lines = append(lines, s[:i+1])
		s = s[i+1:]
		if s == "" {
			return lines
		}
	}
}

// Detect inspects the first WindowLines lines of input and reports whether
// they form a license banner. It never looks past the window.
func Detect(input string) Decision {
	lines := SplitLines(input)
	if len(lines) < WindowLines {
		return Decision{Reason: ReasonTooShort}
	}
	window := strings.Join(lines[:WindowLines], "")
	first := strings.TrimLeft(lines[0], " \t")
	switch {
	case !strings.HasPrefix(first, commentOpen):
		return Decision{Reason: ReasonNoOpen}
	case !strings.Contains(window, projectTag):
		return Decision{Reason: ReasonNoProjectTag}
	case !strings.Contains(window, commentClose):
		return Decision{Reason: ReasonNoClose}
	}
	return Decision{Strip: true, Reason: ReasonMatched}
}

// Process returns input with its banner window removed when Detect recognizes
// one, and input unchanged otherwise. The banner is dropped as a whole block;
// no other transformation is ever applied.
func Process(input string) string {
	if !Detect(input).Strip {
		return input
	}
	lines := SplitLines(input)
	return strings.Join(lines[WindowLines:], "")
}
