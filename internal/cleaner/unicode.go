package cleaner

import "strings"

// unicodeReplacement maps one raw Unicode math symbol to the ASCII macro
// a DOCX exporter should have emitted instead.
type unicodeReplacement struct {
	symbol string
	macro  string
}

// unicodeMathReplacements is the fixed symbol table, applied in order.
// A slice rather than a map keeps iteration deterministic. The symbols are
// pairwise disjoint and every macro is pure ASCII, so one replacement can
// never create a match for a later entry.
var unicodeMathReplacements = []unicodeReplacement{
	{"Ʈ", `\tau`},
	{"𝒵", `\mathcal{Z}`},
	{"ℤ", `\mathbb{Z}`},
	{"ℝ", `\mathbb{R}`},
	{"ℚ", `\mathbb{Q}`},
	{"ℕ", `\mathbb{N}`},
}

// NormalizeUnicodeMath replaces every occurrence of each table symbol with
// its ASCII macro. Returns the rewritten text and the total number of
// symbols replaced across all table entries.
func NormalizeUnicodeMath(text string) (string, int) {
	count := 0
	for _, r := range unicodeMathReplacements {
		if n := strings.Count(text, r.symbol); n > 0 {
			count += n
			text = strings.ReplaceAll(text, r.symbol, r.macro)
		}
	}
	return text, count
}
