package channel

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/TimWhiting/rich-code-editor/pkg/edit"
	"github.com/TimWhiting/rich-code-editor/pkg/styled"
)

func TestPlainValueConversion(t *testing.T) {
	state := EditingState{
		Text:      "hello",
		Selection: Selection{Base: 1, Extent: 4, Affinity: affinityUpstream, Directional: true},
		Composing: Composing{From: 0, To: 5},
	}
	want := edit.PlainValue{
		Text: "hello",
		Selection: edit.SelectionRange{
			Base: 1, Extent: 4, Affinity: edit.Upstream, Directional: true,
		},
		Composing: edit.ComposingRange{From: 0, To: 5},
	}
	if diff := cmp.Diff(want, state.plainValue()); diff != "" {
		t.Errorf("plainValue diff (-want +got):\n%s", diff)
	}
}

func TestStateOfStripsStyling(t *testing.T) {
	value := edit.EditingValue{
		Document: styled.Text{
			&styled.Run{Style: styled.Style{Bold: true}, Text: "func"},
			&styled.Run{Text: " f"},
		},
		Selection: edit.SelectionRange{Base: 6, Extent: 6},
		Composing: edit.InvalidComposing(),
	}
	got := stateOf(value)
	want := EditingState{
		Text:      "func f",
		Selection: Selection{Base: 6, Extent: 6, Affinity: affinityDownstream},
		Composing: Composing{From: -1, To: -1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stateOf diff (-want +got):\n%s", diff)
	}
}

func TestStateOfNormalizesHalfSetRanges(t *testing.T) {
	value := edit.EditingValue{
		Document:  styled.Plain("ab"),
		Selection: edit.SelectionRange{Base: -1, Extent: 2},
		Composing: edit.ComposingRange{From: 3, To: 1},
	}
	got := stateOf(value)
	if got.Selection.Base != -1 || got.Selection.Extent != -1 {
		t.Errorf("selection = %+v, want (-1, -1)", got.Selection)
	}
	if got.Composing.From != -1 || got.Composing.To != -1 {
		t.Errorf("composing = %+v, want (-1, -1)", got.Composing)
	}
}

func TestStyleOptionsRoundTrip(t *testing.T) {
	st := styled.Style{Fg: styled.ColorRed, Bold: true, Underlined: true}
	options := styleOptions(st)

	var back styled.Style
	if err := back.MergeFromOptions(options); err != nil {
		t.Fatalf("MergeFromOptions -> error %v", err)
	}
	if back != st {
		t.Errorf("round trip = %+v, want %+v", back, st)
	}
}

func TestStyleOptionsDefaultIsEmpty(t *testing.T) {
	if got := styleOptions(styled.Style{}); len(got) != 0 {
		t.Errorf("styleOptions(default) = %v, want empty map", got)
	}
}
