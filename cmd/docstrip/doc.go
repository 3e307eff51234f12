// Package docstrip provides the command-line interface for the docstrip
// tool. The root command is the documentation-generator input filter; the
// subcommands (check, version, completion) support CI and maintenance.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/sceneryeditorx/docstrip/cmd/docstrip"
//	func main() { docstrip.Execute() }
package docstrip
