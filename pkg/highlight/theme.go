package highlight

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/TimWhiting/rich-code-editor/pkg/styled"
)

// Kind identifies the kind of a token.
type Kind uint8

const (
	KindDefault Kind = iota
	KindKeyword
	KindString
	KindComment
	KindNumber
	KindPunctuation
)

var kindNames = map[string]Kind{
	"keyword":     KindKeyword,
	"string":      KindString,
	"comment":     KindComment,
	"number":      KindNumber,
	"punctuation": KindPunctuation,
}

// Theme maps token kinds to styles. Kinds without an entry are styled with
// the default style.
type Theme map[Kind]styled.Style

func (t Theme) style(k Kind) styled.Style {
	if t == nil {
		return styled.Style{}
	}
	return t[k]
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		KindKeyword:     {Fg: styled.ColorGreen},
		KindString:      {Fg: styled.ColorYellow},
		KindComment:     {Fg: styled.ColorCyan},
		KindNumber:      {Fg: styled.ColorMagenta},
		KindPunctuation: {Bold: true},
	}
}

// LoadTheme parses a YAML theme definition. The document is a map from token
// kind names to style options:
//
//	keyword: {fg-color: green}
//	comment: {fg-color: cyan, italic: true}
func LoadTheme(data []byte) (Theme, error) {
	var raw map[string]map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	theme := make(Theme, len(raw))
	for name, options := range raw {
		kind, ok := kindNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown token kind '%s'", name)
		}
		var style styled.Style
		if err := style.MergeFromOptions(options); err != nil {
			return nil, fmt.Errorf("token kind '%s': %w", name, err)
		}
		theme[kind] = style
	}
	return theme, nil
}

// LoadGrammar parses a YAML grammar definition; see Grammar for the fields.
func LoadGrammar(data []byte) (Grammar, error) {
	var g Grammar
	if err := yaml.Unmarshal(data, &g); err != nil {
		return Grammar{}, fmt.Errorf("parse grammar: %w", err)
	}
	return g, nil
}
