package log

import (
	"github.com/umisama/go-regexpcache"
)

// SanitizeFilename keeps letters, digits, "-" and "." and replaces every
// other rune with "_". The output has the same rune length as the input.
func SanitizeFilename(in string) string {
	return regexpcache.MustCompile(`[^\p{L}\p{N}.-]`).ReplaceAllString(in, "_")
}
