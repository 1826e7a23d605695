package transcript

import (
	"regexp"
	"strings"
)

var reVideoID = regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})`)

// ExtractVideoID returns the 11-character identifier that follows "v=" or a
// path separator in s.
func ExtractVideoID(s string) (string, bool) {
	m := reVideoID.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", false
	}
	return m[1], true
}
