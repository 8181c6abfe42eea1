package forum

import (
	"regexp"
	"strings"
)

// Each of the four MBTI positions is a fixed letter pair plus X as a
// wildcard, e.g. INTP, XNTP, XXXX.
var mbtiPattern = regexp.MustCompile(`^[IEX][SNX][TFX][PJX]$`)

// The list filter only accepts fully concrete types (no X wildcard); an
// input that fails this check is silently ignored rather than rejected.
var mbtiFilterPattern = regexp.MustCompile(`^[EeIi][SsNn][TtFf][PpJj]`)

// NormalizeMBTI upper-cases the tag and checks it against the full
// four-position pattern.
func NormalizeMBTI(raw string) (string, bool) {
	mbti := strings.ToUpper(raw)
	return mbti, mbtiPattern.MatchString(mbti)
}

// NormalizeMBTIFilter validates a list-filter value. The empty string and
// non-matching inputs return ok=false, which drops the filter.
func NormalizeMBTIFilter(raw string) (string, bool) {
	if !mbtiFilterPattern.MatchString(raw) {
		return "", false
	}
	return strings.ToUpper(raw), true
}
