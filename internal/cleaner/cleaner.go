// Package cleaner normalizes LaTeX documents produced by DOCX/Pandoc
// exporters. Converters emit syntactically valid but noisy constructs:
// quotation wrappers around plain paragraphs, minipage boxes inside
// longtable cells, raw Unicode math symbols, and bibliography items
// wrapped in quote environments. Each pass here is a pure function over
// the document text returning the rewritten text and a change count.
package cleaner

import (
	"latex-cleanup/internal/logger"
)

// Stats aggregates the change counts of one cleanup run.
type Stats struct {
	RemovedQuoteBlocks          int `json:"removed_quote_blocks"`
	UnicodeReplacements         int `json:"unicode_replacements"`
	SimplifiedLongtables        int `json:"simplified_longtables"`
	NormalizedBibliographyItems int `json:"normalized_bibliography_items"`
}

// Total returns the sum of all change counts.
func (s Stats) Total() int {
	return s.RemovedQuoteBlocks + s.UnicodeReplacements +
		s.SimplifiedLongtables + s.NormalizedBibliographyItems
}

// Add accumulates counts from another run, for batch processing.
func (s *Stats) Add(other Stats) {
	s.RemovedQuoteBlocks += other.RemovedQuoteBlocks
	s.UnicodeReplacements += other.UnicodeReplacements
	s.SimplifiedLongtables += other.SimplifiedLongtables
	s.NormalizedBibliographyItems += other.NormalizedBibliographyItems
}

// Cleanup runs all passes over text in a fixed order and returns the
// cleaned document together with the per-pass counts.
//
// The order is quote removal, unicode normalization, longtable
// simplification, bibliography normalization. Because quote removal runs
// first, the bibliography pass never sees an \item followed by a quote
// environment in a full pipeline run and its count is always 0 there; it
// only reports nonzero counts when invoked standalone. The order is kept
// for output compatibility with the tooling this replaces.
func Cleanup(text string) (string, Stats) {
	var stats Stats

	text, stats.RemovedQuoteBlocks = RemoveQuoteBlocks(text)
	text, stats.UnicodeReplacements = NormalizeUnicodeMath(text)
	text, stats.SimplifiedLongtables = SimplifyLongtables(text)
	text, stats.NormalizedBibliographyItems = NormalizeBibliographyItems(text)

	logger.Debug("cleanup pipeline finished",
		logger.Int("quoteBlocks", stats.RemovedQuoteBlocks),
		logger.Int("unicodeReplacements", stats.UnicodeReplacements),
		logger.Int("longtables", stats.SimplifiedLongtables),
		logger.Int("bibItems", stats.NormalizedBibliographyItems))

	return text, stats
}
