// Package channel bridges the editor core to the platform text-input channel
// over JSON-RPC 2.0. The platform delivers plain-text editing deltas through
// editor/updateState; the bridge publishes changed editing values back
// through editor/stateChanged notifications, suppressing echoes of values
// the platform already knows.
package channel

import (
	"github.com/TimWhiting/rich-code-editor/pkg/edit"
	"github.com/TimWhiting/rich-code-editor/pkg/styled"
)

// Selection is the wire form of a selection range.
type Selection struct {
	Base        int    `json:"base"`
	Extent      int    `json:"extent"`
	Affinity    string `json:"affinity,omitempty"`
	Directional bool   `json:"directional,omitempty"`
}

// Composing is the wire form of a composing range.
type Composing struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// EditingState is the {text, selection, composing} triple exchanged with the
// platform, in both directions. It carries no styling: styling never crosses
// the channel.
type EditingState struct {
	Text      string    `json:"text"`
	Selection Selection `json:"selection"`
	Composing Composing `json:"composing"`
}

const (
	affinityDownstream = "downstream"
	affinityUpstream   = "upstream"
)

// plainValue converts the wire state to the reconciler's input form.
func (s EditingState) plainValue() edit.PlainValue {
	affinity := edit.Downstream
	if s.Selection.Affinity == affinityUpstream {
		affinity = edit.Upstream
	}
	return edit.PlainValue{
		Text: s.Text,
		Selection: edit.SelectionRange{
			Base:        s.Selection.Base,
			Extent:      s.Selection.Extent,
			Affinity:    affinity,
			Directional: s.Selection.Directional,
		},
		Composing: edit.ComposingRange{From: s.Composing.From, To: s.Composing.To},
	}
}

// stateOf projects an editing value onto the wire triple.
func stateOf(v edit.EditingValue) EditingState {
	affinity := affinityDownstream
	if v.Selection.Affinity == edit.Upstream {
		affinity = affinityUpstream
	}
	sel := v.Selection
	if !sel.Valid() {
		sel = edit.InvalidSelection()
	}
	comp := v.Composing
	if !comp.Valid() {
		comp = edit.InvalidComposing()
	}
	return EditingState{
		Text: v.Document.String(),
		Selection: Selection{
			Base:        sel.Base,
			Extent:      sel.Extent,
			Affinity:    affinity,
			Directional: sel.Directional,
		},
		Composing: Composing{From: comp.From, To: comp.To},
	}
}

// styleOptions renders a style as the option map accepted by
// styled.Style.MergeFromOptions, for the editor/styleAt reply.
func styleOptions(st styled.Style) map[string]interface{} {
	options := map[string]interface{}{}
	if st.Fg != styled.ColorDefault {
		options["fg-color"] = st.Fg.String()
	}
	if st.Bg != styled.ColorDefault {
		options["bg-color"] = st.Bg.String()
	}
	addIf := func(b bool, key string) {
		if b {
			options[key] = true
		}
	}
	addIf(st.Bold, "bold")
	addIf(st.Dim, "dim")
	addIf(st.Italic, "italic")
	addIf(st.Underlined, "underlined")
	addIf(st.Blink, "blink")
	addIf(st.Inverse, "inverse")
	return options
}
