package engine

import "sort"

// Edit replaces text[From:To] with Text.
type Edit struct {
	From int
	To   int
	Text string
}

// ApplyEdits splices non-overlapping edits into text. Edits are applied from
// the rightmost region to the leftmost so offsets taken from the original text
// stay valid for every edit not yet applied.
func ApplyEdits(text string, edits []Edit) string {
	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].From > sorted[j].From
	})

	for _, e := range sorted {
		text = text[:e.From] + e.Text + text[e.To:]
	}
	return text
}
