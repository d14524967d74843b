package cleaner

import (
	"regexp"
	"strings"
)

var (
	// longtablePattern captures the column spec and body of one longtable
	// environment. Non-greedy, so the body runs to the nearest \end.
	longtablePattern = regexp.MustCompile(`(?s)\\begin\{longtable\}\{([^}]*)\}(.*?)\\end\{longtable\}`)

	// minipagePattern matches the minipage boxes converters wrap around
	// cell content: \begin{minipage}[pos]{width} ... \end{minipage}.
	minipagePattern = regexp.MustCompile(`(?s)\\begin\{minipage\}\[[^\]]*\]\{[^}]*\}(.*?)\\end\{minipage\}`)
)

// stripMinipages unwraps every minipage box in a table body, keeping the
// trimmed cell content.
func stripMinipages(body string) string {
	return minipagePattern.ReplaceAllStringFunc(body, func(m string) string {
		inner := minipagePattern.FindStringSubmatch(m)[1]
		return strings.TrimSpace(inner)
	})
}

// SimplifyLongtables removes minipage wrappers from the bodies of all
// longtable environments, preserving each table's column spec verbatim.
// Returns the rewritten text and the number of tables that lost at least
// one wrapper; tables without minipages are reconstructed unchanged and
// not counted.
func SimplifyLongtables(text string) (string, int) {
	simplified := 0
	out := longtablePattern.ReplaceAllStringFunc(text, func(m string) string {
		groups := longtablePattern.FindStringSubmatch(m)
		cols, body := groups[1], groups[2]
		newBody := stripMinipages(body)
		if newBody != body {
			simplified++
		}
		return `\begin{longtable}{` + cols + `}` + newBody + `\end{longtable}`
	})
	return out, simplified
}
