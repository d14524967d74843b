package cleaner

import "regexp"

// bibItemQuotePattern matches an \item immediately followed by a quote
// environment, as emitted for bibliography entries by some converters.
var bibItemQuotePattern = regexp.MustCompile(`(?s)(\\item)\s*\\begin\{quote\}\s*(.*?)\s*\\end\{quote\}`)

// NormalizeBibliographyItems collapses each \item followed by a quote
// environment into the item marker, a single space and the trimmed quote
// content. Returns the rewritten text and the number of items collapsed.
//
// The pattern requires the quote wrapper to still be present, so this
// reports 0 when run after RemoveQuoteBlocks (as the Cleanup pipeline
// does); see the ordering note on Cleanup.
func NormalizeBibliographyItems(text string) (string, int) {
	count := len(bibItemQuotePattern.FindAllStringIndex(text, -1))
	if count == 0 {
		return text, 0
	}
	return bibItemQuotePattern.ReplaceAllString(text, "$1 $2"), count
}
