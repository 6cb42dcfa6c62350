// Package edit implements the editing-value core of the rich code editor:
// the immutable editing value, the reconciler that applies plain-text deltas
// from the platform input channel, and the observable store holding the
// current value.
//
// All offsets are byte indices into the document's plain text, following the
// convention of terminal line editors. An offset of -1 marks a selection or
// composing range as unset.
package edit

import "github.com/TimWhiting/rich-code-editor/pkg/styled"

// Affinity disambiguates a caret position that sits at a rendering boundary,
// such as the end of a soft-wrapped line.
type Affinity uint8

const (
	// Downstream associates the caret with the text after it. This is the
	// default.
	Downstream Affinity = iota
	// Upstream associates the caret with the text before it.
	Upstream
)

// SelectionRange is a text selection. Base is where the selection started and
// Extent is where the caret is; they are equal for a collapsed selection. A
// negative offset marks the selection as unset.
type SelectionRange struct {
	Base        int
	Extent      int
	Affinity    Affinity
	Directional bool
}

// InvalidSelection returns the unset selection.
func InvalidSelection() SelectionRange {
	return SelectionRange{Base: -1, Extent: -1}
}

// Valid reports whether both offsets are set.
func (r SelectionRange) Valid() bool { return r.Base >= 0 && r.Extent >= 0 }

// clamp bounds both offsets into [0, length]. A selection with any unset
// offset clamps to the unset selection.
func (r SelectionRange) clamp(length int) SelectionRange {
	if !r.Valid() {
		return InvalidSelection()
	}
	r.Base = clampOffset(r.Base, length)
	r.Extent = clampOffset(r.Extent, length)
	return r
}

// ComposingRange is the span currently under IME composition, not yet
// committed. From == To == -1 (or any other invalid combination) means "not
// composing".
type ComposingRange struct {
	From int
	To   int
}

// InvalidComposing returns the "not composing" range.
func InvalidComposing() ComposingRange {
	return ComposingRange{From: -1, To: -1}
}

// Valid reports whether the range denotes an actual composing span.
func (r ComposingRange) Valid() bool { return r.From >= 0 && r.To >= r.From }

// clamp bounds the range into [0, length], or resets it to the invalid range
// if it cannot denote a span of the document.
func (r ComposingRange) clamp(length int) ComposingRange {
	if !r.Valid() || r.From > length {
		return InvalidComposing()
	}
	r.To = clampOffset(r.To, length)
	return r
}

// translate maps the range through an edit that replaced [from, oldTo) with
// a span ending at newTo. Offsets before the replaced span are unaffected,
// offsets after it shift by the length delta, and offsets inside it collapse
// into the new span. A range that collapses to zero width no longer denotes
// composed text and resets to the invalid range.
func (r ComposingRange) translate(from, oldTo, newTo int) ComposingRange {
	r.From = translateOffset(r.From, from, oldTo, newTo)
	r.To = translateOffset(r.To, from, oldTo, newTo)
	if r.From >= r.To {
		return InvalidComposing()
	}
	return r
}

func translateOffset(pos, from, oldTo, newTo int) int {
	switch {
	case pos < from:
		return pos
	case pos >= oldTo:
		return pos + newTo - oldTo
	case pos > newTo:
		return newTo
	default:
		return pos
	}
}

func clampOffset(pos, length int) int {
	if pos < 0 {
		return 0
	}
	if pos > length {
		return length
	}
	return pos
}

// EditingValue is the immutable editor state: a styled document plus the
// selection and composing ranges. Every transition produces a new value.
type EditingValue struct {
	Document  styled.Text
	Selection SelectionRange
	Composing ComposingRange

	// RemotelyEdited flags whether the transition that produced this value
	// was caused by a platform-originated delta, as opposed to a
	// programmatic assignment. Consumers use it to decide whether an echo to
	// the platform channel can carry new information, and whether existing
	// per-character styling should be preserved.
	RemotelyEdited bool
}

// Empty returns the editing value that seeds a new editor: an empty document
// with unset selection and composing ranges.
func Empty() EditingValue {
	return EditingValue{
		Document:  styled.Empty(),
		Selection: InvalidSelection(),
		Composing: InvalidComposing(),
	}
}

// PlainValue is the unstyled editing state delivered by the platform input
// channel: the full text after the edit plus the new selection and composing
// ranges.
type PlainValue struct {
	Text      string
	Selection SelectionRange
	Composing ComposingRange
}
