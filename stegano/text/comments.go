package text

import "regexp"

// block comments first, then everything after "//" up to the line end.
var commentsRegexp = regexp.MustCompile(`(/\*([^*]|[\r\n]|(\*+([^*/]|[\r\n])))*\*+/)|(//.*)`)

// RemoveComments strips C style comments from source text before encoding.
// Comment markers inside string literals are not special cased.
func RemoveComments(s string) string {
	return commentsRegexp.ReplaceAllString(s, "")
}
