// Package cells measures and fits strings in terminal cells.
package cells

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Width returns the number of terminal cells text occupies.
func Width(text string) int {
	if text == "" {
		return 0
	}
	w := runewidth.StringWidth(text)
	if w <= 0 {
		// Some clusters (e.g. emoji ZWJ sequences) report zero in runewidth.
		w = uniseg.StringWidth(text)
	}
	if w < 0 {
		w = 0
	}
	return w
}

// Fit returns text repeated or cut by grapheme cluster so that it spans
// exactly n cells. Clusters that would overflow are replaced by spaces.
func Fit(text string, n int) string {
	if n <= 0 {
		return ""
	}
	clusters := Split(text)
	if len(clusters) == 0 {
		return strings.Repeat(" ", n)
	}

	var sb strings.Builder
	used := 0
	for used < n {
		progressed := false
		for _, c := range clusters {
			w := Width(c)
			if w == 0 {
				continue
			}
			if used+w > n {
				sb.WriteString(strings.Repeat(" ", n-used))
				return sb.String()
			}
			sb.WriteString(c)
			used += w
			progressed = true
			if used == n {
				return sb.String()
			}
		}
		if !progressed {
			sb.WriteString(strings.Repeat(" ", n-used))
			break
		}
	}
	return sb.String()
}

// Truncate cuts text to at most n cells, ending with tail when cut.
func Truncate(text string, n int, tail string) string {
	if n <= 0 {
		return ""
	}
	return runewidth.Truncate(text, n, tail)
}

// PadRight pads text with spaces to n cells.
func PadRight(text string, n int) string {
	if w := Width(text); w < n {
		return text + strings.Repeat(" ", n-w)
	}
	return text
}
