// Package banner implements the license-banner strip transformation applied
// to Scenery Editor X sources before they reach the documentation generator.
// The transformation is a pure function over text: the output is always either
// the input unchanged or the input with exactly its first twelve lines removed.
package banner
