// Package highlight provides pluggable syntax highlighting over plain text.
//
// A Tokenizer maps a plain-text buffer to a sequence of styled runs covering
// the full input, with no gaps and no overlaps. Tokenization is pure: the
// same input always produces the same styling. Unparseable spans degrade to
// the default style and are reported as errors; tokenization itself never
// fails.
package highlight

import (
	"fmt"
	"strings"

	"github.com/TimWhiting/rich-code-editor/pkg/styled"
)

// Tokenizer turns plain text into styled runs.
type Tokenizer interface {
	// Tokenize styles the given code. The returned text's plain content is
	// exactly code. The errors describe unparseable spans, which are styled
	// with the default style.
	Tokenize(code string) (styled.Text, []error)
	// SafeRegion expands [from, to) to the nearest boundaries at which
	// tokenizing the region in isolation yields the same runs as tokenizing
	// the whole code and slicing.
	SafeRegion(code string, from, to int) (int, int)
}

// SyntaxError describes a span that could not be tokenized. The span is
// rendered in the default style; editing continues uninterrupted.
type SyntaxError struct {
	From, To int
	What     string
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("%s from %d to %d", e.What, e.From, e.To)
}

// Grammar configures the generic line-oriented tokenizer. The zero value
// styles nothing, turning Syntax into a plain-text tokenizer.
type Grammar struct {
	// Name of the language.
	Name string `yaml:"name"`
	// Words styled as keywords.
	Keywords []string `yaml:"keywords"`
	// Marker starting a comment that runs to the end of the line.
	LineComment string `yaml:"line-comment"`
	// Characters that delimit string literals. A literal must close on the
	// line it starts on; backslash escapes the next character.
	Quotes string `yaml:"quotes"`
	// Characters styled as punctuation.
	Punctuation string `yaml:"punctuation"`
}

// DefaultGrammar returns a grammar for a generic C-like language.
func DefaultGrammar() Grammar {
	return Grammar{
		Name: "generic",
		Keywords: []string{
			"break", "case", "const", "continue", "default", "else", "for",
			"func", "if", "import", "package", "return", "struct", "switch",
			"type", "var", "while",
		},
		LineComment: "//",
		Quotes:      `"'`,
		Punctuation: "()[]{}<>+-*/%=&|^!~,;:.",
	}
}

// Syntax is a Tokenizer driven by a Grammar and a Theme. Runs it emits never
// cross a line boundary, which makes line boundaries safe region boundaries.
type Syntax struct {
	grammar  Grammar
	keywords map[string]bool
	theme    Theme
}

// NewSyntax creates a Syntax from a grammar and a theme. A nil theme styles
// every token with the default style.
func NewSyntax(g Grammar, theme Theme) *Syntax {
	keywords := make(map[string]bool, len(g.Keywords))
	for _, kw := range g.Keywords {
		keywords[kw] = true
	}
	return &Syntax{g, keywords, theme}
}

// region is a style-relevant span of a single line.
type region struct {
	begin, end int
	kind       Kind
}

// Tokenize styles code line by line. Text between tokens is left unstyled.
func (s *Syntax) Tokenize(code string) (styled.Text, []error) {
	if code == "" {
		return styled.Empty(), nil
	}
	var text styled.Text
	var errs []error
	for base := 0; base < len(code); {
		line := code[base:]
		rest := ""
		if i := strings.IndexByte(line, '\n'); i >= 0 {
			line, rest = line[:i], "\n"
		}
		regions, lineErrs := s.scanLine(line)
		for _, err := range lineErrs {
			err.From += base
			err.To += base
			errs = append(errs, err)
		}
		text = appendLine(text, line+rest, regions, s.theme)
		base += len(line) + len(rest)
	}
	return text, errs
}

// SafeRegion expands [from, to) to whole lines, including the trailing
// newline of the line containing to.
func (s *Syntax) SafeRegion(code string, from, to int) (int, int) {
	if from < 0 {
		from = 0
	}
	if to > len(code) {
		to = len(code)
	}
	if to < from {
		to = from
	}
	begin := strings.LastIndexByte(code[:from], '\n') + 1
	end := len(code)
	if i := strings.IndexByte(code[to:], '\n'); i >= 0 {
		end = to + i + 1
	}
	return begin, end
}

// appendLine converts one line (with its trailing newline, if any) to runs
// and appends them to text. Adjacent equal-style runs within the line are
// merged; a new run always starts after the newline, so no run ever crosses
// a line boundary.
func appendLine(text styled.Text, line string, regions []region, theme Theme) styled.Text {
	start := len(text)
	add := func(span string, style styled.Style) {
		if span == "" {
			return
		}
		if n := len(text); n > start && text[n-1].Style == style {
			text[n-1] = &styled.Run{Style: style, Text: text[n-1].Text + span}
			return
		}
		text = append(text, &styled.Run{Style: style, Text: span})
	}
	last := 0
	for _, r := range regions {
		add(line[last:r.begin], styled.Style{})
		add(line[r.begin:r.end], theme.style(r.kind))
		last = r.end
	}
	add(line[last:], styled.Style{})
	return text
}

// scanLine finds the style-relevant regions of a single line. Offsets are
// relative to the line. Unterminated string literals produce an error and no
// region.
func (s *Syntax) scanLine(line string) ([]region, []SyntaxError) {
	var regions []region
	var errs []SyntaxError
	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case s.grammar.LineComment != "" && strings.HasPrefix(line[i:], s.grammar.LineComment):
			regions = append(regions, region{i, len(line), KindComment})
			i = len(line)
		case strings.IndexByte(s.grammar.Quotes, c) >= 0:
			j, closed := scanString(line, i)
			if closed {
				regions = append(regions, region{i, j, KindString})
			} else {
				errs = append(errs, SyntaxError{i, j, "unterminated string"})
			}
			i = j
		case isDigit(c):
			j := i + 1
			for j < len(line) && isNumberChar(line[j]) {
				j++
			}
			regions = append(regions, region{i, j, KindNumber})
			i = j
		case isWordStart(c):
			j := i + 1
			for j < len(line) && isWordChar(line[j]) {
				j++
			}
			if s.keywords[line[i:j]] {
				regions = append(regions, region{i, j, KindKeyword})
			}
			i = j
		case strings.IndexByte(s.grammar.Punctuation, c) >= 0:
			j := i + 1
			for j < len(line) && strings.IndexByte(s.grammar.Punctuation, line[j]) >= 0 {
				j++
			}
			regions = append(regions, region{i, j, KindPunctuation})
			i = j
		default:
			i++
		}
	}
	return regions, errs
}

// scanString scans a string literal starting at i. It returns the index just
// past the literal and whether the closing quote was found on the line.
func scanString(line string, i int) (int, bool) {
	quote := line[i]
	j := i + 1
	for j < len(line) {
		switch line[j] {
		case '\\':
			j += 2
		case quote:
			return j + 1, true
		default:
			j++
		}
	}
	if j > len(line) {
		j = len(line)
	}
	return j, false
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isWordStart(c byte) bool {
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isWordChar(c byte) bool { return isWordStart(c) || isDigit(c) }

func isNumberChar(c byte) bool { return isWordChar(c) || c == '.' }
