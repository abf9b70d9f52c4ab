package naming

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// FallbackStem replaces names whose sanitized stem comes out empty.
const FallbackStem = "unnamed"

// Normalize rewrites name so that it only contains ASCII letters, digits and
// underscores, with the extension lowercased. A positive counter is appended
// to the stem as a zero-padded 3-digit suffix for sibling uniqueness; the
// caller owns counter assignment (one counter per directory level).
//
// The result always matches ^[a-zA-Z0-9_]+(\.[a-z0-9]+)?$ and is never empty.
func Normalize(name string, counter int) string {
	stem, ext := splitExt(name)

	// NFKD splits base letters from combining marks, so accented Latin
	// degrades to plain Latin while non-Latin scripts get filtered out below.
	stem = sanitizeStem(norm.NFKD.String(stem))
	if stem == "" {
		stem = FallbackStem
	}

	if counter > 0 {
		stem = fmt.Sprintf("%s_%03d", stem, counter)
	}

	if ext != "" {
		return stem + "." + ext
	}
	return stem
}

// splitExt separates the extension after the last dot, lowercased and
// reduced to [a-z0-9]. A leading dot (dotfiles) belongs to the stem, and an
// extension that sanitizes to nothing is dropped.
func splitExt(name string) (stem, ext string) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name, ""
	}

	var b strings.Builder
	for _, r := range strings.ToLower(name[i+1:]) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return name[:i], b.String()
}

// sanitizeStem keeps [a-zA-Z0-9_], turns whitespace runs into single
// underscores, collapses underscore runs and trims them from both ends.
func sanitizeStem(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		var c byte
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			c = byte(r)
		case r == '_', unicode.IsSpace(r):
			c = '_'
		default:
			continue
		}
		if c == '_' && (len(out) == 0 || out[len(out)-1] == '_') {
			continue // collapses runs and trims the leading edge
		}
		out = append(out, c)
	}
	if n := len(out); n > 0 && out[n-1] == '_' {
		out = out[:n-1]
	}
	return string(out)
}
