package edit

import "testing"

func TestSelectionClamp(t *testing.T) {
	tests := []struct {
		name   string
		sel    SelectionRange
		length int
		want   SelectionRange
	}{
		{"in range", SelectionRange{Base: 1, Extent: 2}, 5, SelectionRange{Base: 1, Extent: 2}},
		{"extent beyond", SelectionRange{Base: 1, Extent: 9}, 5, SelectionRange{Base: 1, Extent: 5}},
		{"unset", InvalidSelection(), 5, InvalidSelection()},
		{"half-set", SelectionRange{Base: 3, Extent: -1}, 5, InvalidSelection()},
		{
			"affinity and directionality survive",
			SelectionRange{Base: 0, Extent: 9, Affinity: Upstream, Directional: true}, 4,
			SelectionRange{Base: 0, Extent: 4, Affinity: Upstream, Directional: true},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.sel.clamp(test.length); got != test.want {
				t.Errorf("clamp(%d) = %+v, want %+v", test.length, got, test.want)
			}
		})
	}
}

func TestComposingClamp(t *testing.T) {
	tests := []struct {
		name   string
		comp   ComposingRange
		length int
		want   ComposingRange
	}{
		{"in range", ComposingRange{From: 1, To: 3}, 5, ComposingRange{From: 1, To: 3}},
		{"to beyond length", ComposingRange{From: 1, To: 9}, 5, ComposingRange{From: 1, To: 5}},
		{"from beyond length", ComposingRange{From: 7, To: 9}, 5, InvalidComposing()},
		{"unset", InvalidComposing(), 5, InvalidComposing()},
		{"inverted", ComposingRange{From: 3, To: 1}, 5, InvalidComposing()},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.comp.clamp(test.length); got != test.want {
				t.Errorf("clamp(%d) = %+v, want %+v", test.length, got, test.want)
			}
		})
	}
}

func TestComposingTranslate(t *testing.T) {
	tests := []struct {
		name               string
		comp               ComposingRange
		from, oldTo, newTo int
		want               ComposingRange
	}{
		{"before the edit", ComposingRange{From: 0, To: 2}, 3, 5, 4, ComposingRange{From: 0, To: 2}},
		{"after the edit shifts", ComposingRange{From: 5, To: 6}, 0, 2, 1, ComposingRange{From: 4, To: 5}},
		{"straddling end shrinks", ComposingRange{From: 2, To: 4}, 3, 4, 3, ComposingRange{From: 2, To: 3}},
		{"swallowed resets", ComposingRange{From: 2, To: 4}, 1, 5, 1, InvalidComposing()},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.comp.translate(test.from, test.oldTo, test.newTo)
			if got != test.want {
				t.Errorf("translate(%d, %d, %d) = %+v, want %+v",
					test.from, test.oldTo, test.newTo, got, test.want)
			}
		})
	}
}

func TestEmptyValue(t *testing.T) {
	v := Empty()
	if v.Document.String() != "" {
		t.Errorf("empty value document = %q, want empty", v.Document.String())
	}
	if v.Selection.Valid() {
		t.Errorf("empty value selection %+v, want unset", v.Selection)
	}
	if v.Composing.Valid() {
		t.Errorf("empty value composing %+v, want unset", v.Composing)
	}
	if v.RemotelyEdited {
		t.Errorf("empty value RemotelyEdited = true, want false")
	}
}
