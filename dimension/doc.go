// Package dimension synthesizes dimension geometry and formats measurement
// text.
//
// Build turns a DIMENSION entity and its resolved Settings into lines,
// arrowheads and a text label. Each subtype has a fixed recipe deciding
// which definition points are extension-line origins, dimension-line
// endpoints and arrow tips, and which point pair yields the measured value.
//
// The formatting functions are pure: FormatLinear, FormatAngular and
// Settings.Measurement depend only on their arguments.
package dimension
