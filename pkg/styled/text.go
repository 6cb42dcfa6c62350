// Package styled models rich text as an ordered sequence of styled runs.
//
// A Text is conceptually a rope of runs: its plain text is the concatenation
// of all run texts, in order, with no gaps and no overlaps. Runs are kept
// behind pointers so that operations which leave part of a Text untouched
// preserve the untouched runs by object identity, which rendering
// collaborators can exploit for caching.
package styled

import (
	"bytes"
	"strings"
)

// Text is an ordered sequence of styled runs. The zero value represents an
// empty document; Empty returns the canonical single-empty-run form.
type Text []*Run

// Plain constructs a Text with a single unstyled run holding the given
// string.
func Plain(s string) Text {
	return Text{&Run{Text: s}}
}

// T constructs a Text with a single run holding the given string and style.
func T(s string, style Style) Text {
	return Text{&Run{Style: style, Text: s}}
}

// Empty returns the canonical empty document: a single empty unstyled run.
func Empty() Text {
	return Text{&Run{}}
}

// String returns the plain text of t, the concatenation of all run texts in
// order.
func (t Text) String() string {
	var sb strings.Builder
	for _, r := range t {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Len returns the length of the plain text of t in bytes.
func (t Text) Len() int {
	n := 0
	for _, r := range t {
		n += len(r.Text)
	}
	return n
}

// Clone returns a deep copy of t.
func (t Text) Clone() Text {
	newt := make(Text, len(t))
	for i, r := range t {
		newt[i] = r.Clone()
	}
	return newt
}

// ConcatText returns a new Text with t2 appended to the end of t.
func (t Text) ConcatText(t2 Text) Text {
	return Text(append(append(Text(nil), t...), t2...))
}

// Partition partitions the Text at n indices into n+1 Text values. A run
// fully inside one partition is carried over as the same pointer; runs
// crossing a boundary are split into fresh runs.
func (t Text) Partition(indices ...int) []Text {
	out := make([]Text, len(indices)+1)
	segs := append(Text(nil), t...)
	for i, idx := range indices {
		toConsume := idx
		if i > 0 {
			toConsume -= indices[i-1]
		}
		for len(segs) > 0 && toConsume > 0 {
			if len(segs[0].Text) <= toConsume {
				out[i] = append(out[i], segs[0])
				toConsume -= len(segs[0].Text)
				segs = segs[1:]
			} else {
				out[i] = append(out[i], &Run{segs[0].Style, segs[0].Text[:toConsume]})
				segs[0] = &Run{segs[0].Style, segs[0].Text[toConsume:]}
				toConsume = 0
			}
		}
	}
	if len(segs) > 0 {
		// Don't use segs directly to avoid aliasing the input slice.
		out[len(indices)] = append(Text(nil), segs...)
	}
	return out
}

// StyleAt returns the style of the run containing the given byte offset. An
// offset at a run boundary belongs to the run that ends there, so the caret
// inherits the style of the text just typed. Out-of-range offsets and the
// empty document yield the default style.
func (t Text) StyleAt(offset int) Style {
	if offset < 0 {
		return Style{}
	}
	pos := 0
	last := Style{}
	for _, r := range t {
		if r.Text == "" {
			continue
		}
		end := pos + len(r.Text)
		if offset <= end && (offset > pos || pos == 0) {
			return r.Style
		}
		pos = end
		last = r.Style
	}
	// Past the end of the document, or the document is empty.
	return last
}

// Normalize returns an equivalent Text with empty runs dropped and adjacent
// runs of equal style merged. An empty document normalizes to the canonical
// single-empty-run form.
func (t Text) Normalize() Text {
	var out Text
	for _, r := range t {
		if r.Text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Style == r.Style {
			out[n-1] = &Run{r.Style, out[n-1].Text + r.Text}
		} else {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return Empty()
	}
	return out
}

// VTString renders the styled text using VT-style escape sequences, for
// debugging output.
func (t Text) VTString() string {
	var buf bytes.Buffer
	for _, r := range t {
		buf.WriteString(r.VTString())
	}
	return buf.String()
}
