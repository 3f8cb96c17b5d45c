package logic

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Segment is a run of title text that either matched a query term or not.
// The renderer styles matched runs; splitting is kept separate from
// styling so it stays testable without a terminal.
type Segment struct {
	Text  string
	Match bool
}

// HighlightSegments splits title into segments, marking every
// case-insensitive occurrence of each whitespace-delimited query term.
// Overlapping matches are merged left-to-right, earliest match first.
// Matching works on runes: lowering can change a rune's UTF-8 width, so
// byte offsets into a lowered copy must never index the original title.
func HighlightSegments(title, query string) []Segment {
	fields := strings.Fields(strings.ToLower(query))
	if title == "" || len(fields) == 0 {
		return []Segment{{Text: title}}
	}

	runes := []rune(title)
	lower := make([]rune, len(runes))
	for i, r := range runes {
		lower[i] = unicode.ToLower(r)
	}
	terms := make([][]rune, 0, len(fields))
	for _, f := range fields {
		terms = append(terms, []rune(f))
	}

	var segs []Segment
	pos := 0
	for pos < len(runes) {
		// Earliest term occurrence at or after pos
		best, bestLen := -1, 0
		for _, term := range terms {
			if i := indexRunes(lower[pos:], term); i >= 0 {
				if best == -1 || pos+i < best || (pos+i == best && len(term) > bestLen) {
					best = pos + i
					bestLen = len(term)
				}
			}
		}
		if best == -1 {
			segs = append(segs, Segment{Text: string(runes[pos:])})
			break
		}
		if best > pos {
			segs = append(segs, Segment{Text: string(runes[pos:best])})
		}
		segs = append(segs, Segment{Text: string(runes[best : best+bestLen]), Match: true})
		pos = best + bestLen
	}
	return segs
}

func indexRunes(haystack, needle []rune) int {
	if len(needle) == 0 {
		return -1
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j, r := range needle {
			if haystack[i+j] != r {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// Sanitize strips ANSI escape sequences and control characters from
// backend-provided text. Suggestion payloads are untrusted; without this a
// hostile title could restyle or clear the host terminal. Control runes
// are checked across the full range: C1 controls (U+0080-U+009F) act as
// escapes on terminals that honor them in UTF-8 mode.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] == 0x1b { // ESC: skip the escape sequence that follows
			i++
			if i < len(s) {
				switch s[i] {
				case '[': // CSI, ends on a final byte 0x40-0x7e
					i++
					for i < len(s) && !(s[i] >= 0x40 && s[i] <= 0x7e) {
						i++
					}
					if i < len(s) {
						i++
					}
				case ']': // OSC, ends on BEL or ESC-backslash
					i++
					for i < len(s) && s[i] != 0x07 && s[i] != 0x1b {
						i++
					}
					if i < len(s) && s[i] == 0x07 {
						i++
					}
				default:
					i++
				}
			}
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsControl(r) && r != '\t' {
			i += size
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}
