package sanitize

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// maxLogLength caps client supplied values written to logs
const maxLogLength = 128

var controlPattern = regexp.MustCompile(`[\r\n\t\x00-\x1f]`)

// LogString makes a client supplied value safe to log on one line
func LogString(s string) string {
	s = controlPattern.ReplaceAllString(s, " ")
	if len(s) > maxLogLength {
		cut := maxLogLength
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut] + "..."
	}
	return s
}

// Query trims a search term and folds it to lower case
func Query(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
