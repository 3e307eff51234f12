// Package docfilter provides a small, stable facade over the banner filter
// for other toolchain programs. Documentation builders that embed the filter
// instead of shelling out to the docstrip binary should depend on this path
// rather than on internal packages.
//
// Example:
//
//	out := docfilter.Process(input)
//	if docfilter.Detect(input).Strip {
//		// input opened with the project license banner
//	}
package docfilter
