package cleaner

import "regexp"

// quoteBlockPattern matches one quote environment and captures its inner
// content with the whitespace next to the markers stripped. Non-greedy, so
// each \begin{quote} pairs with the nearest following \end{quote}; an
// unterminated \begin{quote} never matches and is left untouched.
var quoteBlockPattern = regexp.MustCompile(`(?s)\\begin\{quote\}\s*(.*?)\s*\\end\{quote\}`)

// RemoveQuoteBlocks unwraps every quote environment, replacing the wrapper
// with its trimmed content. Returns the rewritten text and the number of
// wrappers removed. Nested quote environments are unwrapped one level per
// call: the outer \begin pairs with the inner \end.
func RemoveQuoteBlocks(text string) (string, int) {
	count := len(quoteBlockPattern.FindAllStringIndex(text, -1))
	if count == 0 {
		return text, 0
	}
	return quoteBlockPattern.ReplaceAllString(text, "$1"), count
}
