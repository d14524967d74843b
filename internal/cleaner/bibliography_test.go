package cleaner

import "testing"

func TestNormalizeBibliographyItems(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		wantCount int
	}{
		{
			name:      "item with quote collapsed to one line",
			input:     "\\item\n\\begin{quote}\nDoe, J. (2020). A paper.\n\\end{quote}",
			want:      "\\item Doe, J. (2020). A paper.",
			wantCount: 1,
		},
		{
			name:      "item without quote untouched",
			input:     "\\item Plain entry",
			want:      "\\item Plain entry",
			wantCount: 0,
		},
		{
			name: "two entries",
			input: "\\item \\begin{quote}first\\end{quote}\n" +
				"\\item \\begin{quote}second\\end{quote}",
			want:      "\\item first\n\\item second",
			wantCount: 2,
		},
		{
			name:      "quote not adjacent to item untouched",
			input:     "\\item entry\ntext\n\\begin{quote}q\\end{quote}",
			want:      "\\item entry\ntext\n\\begin{quote}q\\end{quote}",
			wantCount: 0,
		},
		{
			name:      "unterminated quote after item untouched",
			input:     "\\item \\begin{quote}dangling",
			want:      "\\item \\begin{quote}dangling",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, count := NormalizeBibliographyItems(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeBibliographyItems() = %q, want %q", got, tt.want)
			}
			if count != tt.wantCount {
				t.Errorf("NormalizeBibliographyItems() count = %d, want %d", count, tt.wantCount)
			}
		})
	}
}
