package anki

import "regexp"

// markerPattern matches a brace-delimited marker name: a letter, digit or
// underscore followed by word characters and hyphens.
var markerPattern = regexp.MustCompile(`\{[0-9A-Za-z_][0-9A-Za-z_-]*\}`)

// Render substitutes every {marker} placeholder in template with its
// value from markers. Unknown marker names resolve to the empty string.
// Substitution is a single pass: replaced text is not re-scanned, so
// marker values containing braces come through literally.
func Render(template string, markers MarkerMap) string {
	return markerPattern.ReplaceAllStringFunc(template, func(match string) string {
		return markers[Marker(match[1:len(match)-1])]
	})
}
