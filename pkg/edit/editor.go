package edit

import (
	"github.com/TimWhiting/rich-code-editor/pkg/errs"
	"github.com/TimWhiting/rich-code-editor/pkg/highlight"
	"github.com/TimWhiting/rich-code-editor/pkg/styled"
)

// Editor binds a Store, a Tokenizer and the active style into the editing
// state machine. Platform deltas enter through HandleDelta; programmatic
// changes enter through SetText, SetSelection and Clear. Each entry point
// produces exactly one value transition, processed synchronously to
// completion.
type Editor struct {
	store      *Store
	reconciler Reconciler
	active     styled.Style
}

// NewEditor creates an Editor seeded with the empty editing value.
func NewEditor(tokenizer highlight.Tokenizer) *Editor {
	return &Editor{
		store:      NewStore(Empty()),
		reconciler: Reconciler{Tokenizer: tokenizer},
	}
}

// Value returns the current editing value.
func (ed *Editor) Value() EditingValue { return ed.store.Get() }

// Subscribe registers an observer for value transitions and returns a
// function that removes it.
func (ed *Editor) Subscribe(observer func(EditingValue)) (cancel func()) {
	return ed.store.Subscribe(observer)
}

// HandleDelta applies a platform-originated delta. Out-of-range offsets in
// the delta are clamped, not reported; the resulting value has
// RemotelyEdited set. When the delta only moves the caret, the active style
// is re-seeded from the run under the new caret position.
func (ed *Editor) HandleDelta(delta PlainValue) {
	old := ed.store.Get()
	value := ed.reconciler.Reconcile(old, delta, ed.active)
	if delta.Text == old.Document.String() && value.Selection.Valid() {
		ed.active = value.Document.StyleAt(value.Selection.Extent)
	}
	ed.store.Set(value)
}

// SetText replaces the document programmatically. The whole text is
// re-tokenized, the selection collapses to unset, composing resets, and the
// transition is local (RemotelyEdited false).
func (ed *Editor) SetText(text string) {
	ed.store.Set(EditingValue{
		Document:  ed.reconciler.Rehighlight(text),
		Selection: InvalidSelection(),
		Composing: InvalidComposing(),
	})
}

// Clear resets the editor to the empty editing value.
func (ed *Editor) Clear() {
	ed.store.Set(Empty())
}

// SetSelection assigns the selection programmatically. Each offset must be -1
// (unset) or within [0, length]; anything else is a caller contract
// violation, reported as errs.OutOfRange with the state left untouched.
func (ed *Editor) SetSelection(sel SelectionRange) error {
	old := ed.store.Get()
	length := old.Document.Len()
	if err := checkOffset("selection base offset", sel.Base, length); err != nil {
		return err
	}
	if err := checkOffset("selection extent offset", sel.Extent, length); err != nil {
		return err
	}
	if sel.Valid() {
		ed.active = old.Document.StyleAt(sel.Extent)
	}
	ed.store.Set(EditingValue{
		Document:  old.Document,
		Selection: sel,
		Composing: old.Composing,
	})
	return nil
}

// StyleAt returns the style of the run containing the given offset, or the
// default style for an empty document.
func (ed *Editor) StyleAt(offset int) styled.Style {
	return ed.store.Get().Document.StyleAt(offset)
}

// ActiveStyle returns the style applied to freshly typed, unstyled text. It
// is re-seeded from the caret position on selection moves.
func (ed *Editor) ActiveStyle() styled.Style { return ed.active }

// SetActiveStyle overrides the style applied to freshly typed text, e.g.
// when the user toggles a formatting control.
func (ed *Editor) SetActiveStyle(style styled.Style) { ed.active = style }

func checkOffset(what string, offset, length int) error {
	if offset < -1 || offset > length {
		return errs.OutOfRange{What: what, ValidLow: -1, ValidHigh: length, Actual: offset}
	}
	return nil
}
