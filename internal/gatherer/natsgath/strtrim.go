package natsgath

import "strings"

// trimStrToRect fits a string into a maxHeight x maxWidth rectangle,
// marking truncation with ellipses. Keeps progress messages small.
func trimStrToRect(s string, maxHeight int, maxWidth int) string {
	res := ""
	lines := strings.Split(s, "\n")
	if len(lines) > maxHeight {
		lines = lines[:maxHeight]
		lines = append(lines, "...")
	}
	for i, line := range lines {
		if i > 0 {
			res += "\n"
		}
		if len(line) > maxWidth {
			res += line[:maxWidth] + "..."
		} else {
			res += line
		}
	}
	return res
}
