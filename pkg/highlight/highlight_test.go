package highlight

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/TimWhiting/rich-code-editor/pkg/styled"
)

func testTokenizer() *Syntax {
	return NewSyntax(DefaultGrammar(), DefaultTheme())
}

var (
	keyword = styled.Style{Fg: styled.ColorGreen}
	str     = styled.Style{Fg: styled.ColorYellow}
	comment = styled.Style{Fg: styled.ColorCyan}
	number  = styled.Style{Fg: styled.ColorMagenta}
	punct   = styled.Style{Bold: true}
)

var tokenizeTests = []struct {
	name string
	code string
	want styled.Text
}{
	{
		name: "empty code",
		code: "",
		want: styled.Empty(),
	},
	{
		name: "bare word",
		code: "foo",
		want: styled.Plain("foo"),
	},
	{
		name: "keyword and punctuation",
		code: "func foo()",
		want: styled.Text{
			&styled.Run{Style: keyword, Text: "func"},
			&styled.Run{Text: " foo"},
			&styled.Run{Style: punct, Text: "()"},
		},
	},
	{
		name: "string literal",
		code: `x = "hi"`,
		want: styled.Text{
			&styled.Run{Text: "x "},
			&styled.Run{Style: punct, Text: "="},
			&styled.Run{Text: " "},
			&styled.Run{Style: str, Text: `"hi"`},
		},
	},
	{
		name: "string with escaped quote",
		code: `"a\"b"`,
		want: styled.Text{&styled.Run{Style: str, Text: `"a\"b"`}},
	},
	{
		name: "comment runs to end of line",
		code: "x // = 1",
		want: styled.Text{
			&styled.Run{Text: "x "},
			&styled.Run{Style: comment, Text: "// = 1"},
		},
	},
	{
		name: "number",
		code: "n = 0x1f",
		want: styled.Text{
			&styled.Run{Text: "n "},
			&styled.Run{Style: punct, Text: "="},
			&styled.Run{Text: " "},
			&styled.Run{Style: number, Text: "0x1f"},
		},
	},
	{
		name: "keyword inside word is not a keyword",
		code: "iffy",
		want: styled.Plain("iffy"),
	},
	{
		name: "newline starts a new run",
		code: "a\nb",
		want: styled.Text{
			&styled.Run{Text: "a\n"},
			&styled.Run{Text: "b"},
		},
	},
	{
		name: "comment does not cross newline",
		code: "// c\nx",
		want: styled.Text{
			&styled.Run{Style: comment, Text: "// c"},
			&styled.Run{Text: "\n"},
			&styled.Run{Text: "x"},
		},
	},
}

func TestTokenize(t *testing.T) {
	tk := testTokenizer()
	for _, test := range tokenizeTests {
		t.Run(test.name, func(t *testing.T) {
			got, errs := tk.Tokenize(test.code)
			if len(errs) > 0 {
				t.Errorf("Tokenize(%q) -> errors %v, want none", test.code, errs)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Tokenize(%q) diff (-want +got):\n%s", test.code, diff)
			}
		})
	}
}

// Concatenating the run texts must reproduce the input exactly, whatever the
// input looks like.
func TestTokenizeCoversInput(t *testing.T) {
	tk := testTokenizer()
	inputs := []string{
		"", "a", "func main() {\n\treturn 1\n}\n", `"unterminated`,
		"// only a comment", "\n\n\n", `mix "str" 42 // tail`, "\\", `"\`,
	}
	for _, code := range inputs {
		got, _ := tk.Tokenize(code)
		if got.String() != code {
			t.Errorf("Tokenize(%q) covers %q, want exact input", code, got.String())
		}
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	tk := testTokenizer()
	got, errs := tk.Tokenize(`x = "oops`)
	if len(errs) != 1 {
		t.Fatalf("Tokenize -> %d errors, want 1", len(errs))
	}
	serr, ok := errs[0].(SyntaxError)
	if !ok {
		t.Fatalf("error has type %T, want SyntaxError", errs[0])
	}
	if serr.From != 4 || serr.To != 9 {
		t.Errorf("error span (%d, %d), want (4, 9)", serr.From, serr.To)
	}
	// The unparseable span degrades to the default style.
	if got.StyleAt(6) != (styled.Style{}) {
		t.Errorf("unterminated string styled as %+v, want default", got.StyleAt(6))
	}
	if got.String() != `x = "oops` {
		t.Errorf("text not conserved: %q", got.String())
	}
}

var safeRegionTests = []struct {
	name     string
	code     string
	from, to int
	want     [2]int
}{
	{"whole single line", "abc", 1, 2, [2]int{0, 3}},
	{"expands to line start and end", "ab\ncd\nef", 4, 4, [2]int{3, 6}},
	{"keeps trailing newline", "ab\ncd\n", 4, 5, [2]int{3, 6}},
	{"spans multiple lines", "ab\ncd\nef", 1, 4, [2]int{0, 6}},
	{"at end of code", "ab\ncd", 5, 5, [2]int{3, 5}},
	{"clamps out of range", "ab", -1, 10, [2]int{0, 2}},
}

func TestSafeRegion(t *testing.T) {
	tk := testTokenizer()
	for _, test := range safeRegionTests {
		t.Run(test.name, func(t *testing.T) {
			from, to := tk.SafeRegion(test.code, test.from, test.to)
			if from != test.want[0] || to != test.want[1] {
				t.Errorf("SafeRegion(%q, %d, %d) = (%d, %d), want (%d, %d)",
					test.code, test.from, test.to, from, to, test.want[0], test.want[1])
			}
		})
	}
}

// Tokenizing a safe region in isolation must produce the same runs as
// tokenizing the whole code and keeping the slice, for any edit position.
func TestRegionEquivalence(t *testing.T) {
	tk := testTokenizer()
	code := "func main() {\n\tx = \"hi\" // greet\n\treturn 42\n}\n"
	for at := 0; at < len(code); at++ {
		from, to := tk.SafeRegion(code, at, at)
		whole, _ := tk.Tokenize(code)
		region, _ := tk.Tokenize(code[from:to])

		var want styled.Text
		pos := 0
		for _, r := range whole {
			if pos >= from && pos+len(r.Text) <= to {
				want = append(want, r)
			}
			pos += len(r.Text)
		}
		if diff := cmp.Diff(want, region); diff != "" {
			t.Errorf("region (%d, %d) of %q diff (-whole +region):\n%s",
				from, to, code, diff)
		}
	}
}

func TestTokenizeIsPure(t *testing.T) {
	tk := testTokenizer()
	code := "func f() { return \"x\" } // done"
	first, _ := tk.Tokenize(code)
	second, _ := tk.Tokenize(code)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("two runs over identical input differ:\n%s", diff)
	}
}

func TestZeroGrammarStylesNothing(t *testing.T) {
	tk := NewSyntax(Grammar{}, nil)
	code := "func \"x\" // 42\nnext"
	got, errs := tk.Tokenize(code)
	if len(errs) > 0 {
		t.Errorf("errors %v, want none", errs)
	}
	want := styled.Text{
		&styled.Run{Text: "func \"x\" // 42\n"},
		&styled.Run{Text: "next"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diff (-want +got):\n%s", diff)
	}
}

func TestTokenizeLongInputStaysLinear(t *testing.T) {
	// A smoke test: a large input must tokenize without issue.
	tk := testTokenizer()
	code := strings.Repeat("x = \"y\" // z\n", 2000)
	got, _ := tk.Tokenize(code)
	if got.String() != code {
		t.Errorf("text not conserved on large input")
	}
}
