package model

// Word is a single positioned word from the extraction layer.
// X and Y are the word's origin in page coordinates; W is its width.
type Word struct {
	Text string
	X    float64
	Y    float64
	W    float64
}

// Line is one visual text line: its assembled text plus the positioned
// words it was built from. Words may be empty when the extraction layer
// supplied flattened text only.
type Line struct {
	Text  string
	Words []Word
}

// PageText is the extraction layer's product for one page: the page's
// 1-indexed number and its text lines in top-to-bottom order.
type PageText struct {
	Number int
	Lines  []Line
}

// LineStrings returns just the text of each line.
func (p PageText) LineStrings() []string {
	out := make([]string, len(p.Lines))
	for i, ln := range p.Lines {
		out[i] = ln.Text
	}
	return out
}
