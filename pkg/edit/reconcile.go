package edit

import (
	"github.com/TimWhiting/rich-code-editor/pkg/highlight"
	"github.com/TimWhiting/rich-code-editor/pkg/styled"
)

// Reconciler turns plain-text deltas from the platform input channel into
// editing value transitions, re-tokenizing only the affected region of the
// document.
type Reconciler struct {
	Tokenizer highlight.Tokenizer
}

// Reconcile computes the editing value after applying the platform delta to
// the old value. Texts are compared exactly; if the text is unchanged the
// document is reused as is and the tokenizer is not consulted. Otherwise the
// minimal changed span is located with a common-prefix/common-suffix scan,
// expanded to the tokenizer's safe boundaries, re-tokenized, and spliced into
// the old document, leaving unaffected runs untouched.
//
// The active style is applied to freshly inserted text that the tokenizer
// leaves unstyled. Delta offsets are clamped defensively, never reported: the
// platform channel is asynchronous and must not be able to crash the editor.
func (r Reconciler) Reconcile(old EditingValue, delta PlainValue, active styled.Style) EditingValue {
	oldText := old.Document.String()
	if delta.Text == oldText {
		// Pure selection/composing move. Skipping tokenization here keeps
		// caret movement over large documents cheap.
		return EditingValue{
			Document:       old.Document,
			Selection:      delta.Selection.clamp(len(oldText)),
			Composing:      delta.Composing.clamp(len(oldText)),
			RemotelyEdited: true,
		}
	}
	if delta.Text == "" {
		// Deleting everything collapses to the canonical empty value.
		v := Empty()
		v.RemotelyEdited = true
		return v
	}

	newText := delta.Text
	from, oldEnd, newEnd := changedSpan(oldText, newText)

	begin, end := r.Tokenizer.SafeRegion(newText, from, newEnd)
	regionRuns, _ := r.Tokenizer.Tokenize(newText[begin:end])
	regionRuns = applyActive(regionRuns, active, from-begin, newEnd-begin)

	// Map the region back into the old text. The prefix before begin and the
	// suffix after end are identical in both texts.
	oldRegionEnd := oldEnd + (end - newEnd)
	parts := old.Document.Partition(begin, oldRegionEnd)
	doc := dropEmptyRuns(parts[0].ConcatText(regionRuns).ConcatText(parts[2]))

	composing := delta.Composing
	if composing.Valid() {
		composing = composing.clamp(len(newText))
	} else if old.Composing.Valid() {
		// The platform did not supply a composing range; carry the old one
		// through the edit.
		composing = old.Composing.translate(from, oldEnd, newEnd).clamp(len(newText))
	} else {
		composing = InvalidComposing()
	}

	return EditingValue{
		Document:       doc,
		Selection:      delta.Selection.clamp(len(newText)),
		Composing:      composing,
		RemotelyEdited: true,
	}
}

// Rehighlight tokenizes text from scratch and returns the resulting
// document. It is used for programmatic assignment, where no previous
// styling survives.
func (r Reconciler) Rehighlight(text string) styled.Text {
	doc, _ := r.Tokenizer.Tokenize(text)
	return doc
}

// changedSpan locates the minimal span that differs between the two texts.
// It returns the start of the span and its (exclusive) ends in the old and
// new text. A common-prefix/common-suffix scan bounds the cost to O(length),
// which suffices because platform deltas are localized edits.
func changedSpan(oldText, newText string) (from, oldEnd, newEnd int) {
	from = 0
	for from < len(oldText) && from < len(newText) && oldText[from] == newText[from] {
		from++
	}
	suffix := 0
	for suffix < len(oldText)-from && suffix < len(newText)-from &&
		oldText[len(oldText)-1-suffix] == newText[len(newText)-1-suffix] {
		suffix++
	}
	return from, len(oldText) - suffix, len(newText) - suffix
}

// applyActive styles the unstyled parts of the freshly inserted span
// [from, to) with the active style. Runs already styled by the tokenizer are
// kept.
func applyActive(runs styled.Text, active styled.Style, from, to int) styled.Text {
	if active.IsDefault() || to <= from {
		return runs
	}
	parts := runs.Partition(from, to)
	inserted := parts[1]
	for i, run := range inserted {
		if run.IsDefault() {
			inserted[i] = &styled.Run{Style: active, Text: run.Text}
		}
	}
	return parts[0].ConcatText(inserted).ConcatText(parts[2])
}

// dropEmptyRuns removes empty runs left over by splicing at span boundaries.
// An empty document keeps its canonical single empty run.
func dropEmptyRuns(t styled.Text) styled.Text {
	out := t[:0:0]
	for _, run := range t {
		if run.Text != "" {
			out = append(out, run)
		}
	}
	if len(out) == 0 {
		return styled.Empty()
	}
	return out
}
