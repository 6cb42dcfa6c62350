package styled

import (
	"fmt"
	"strings"
)

// Style specifies how a span of text shall be displayed. It is a plain value
// record with structural equality; rendering collaborators translate it to
// their own paint primitives.
type Style struct {
	Fg         Color
	Bg         Color
	Bold       bool
	Dim        bool
	Italic     bool
	Underlined bool
	Blink      bool
	Inverse    bool
}

// IsDefault reports whether s is the zero Style, i.e. unstyled text.
func (s Style) IsDefault() bool { return s == Style{} }

// SGR returns the SGR sequence for the style.
func (s Style) SGR() string {
	var sgr []string

	addIf := func(b bool, code string) {
		if b {
			sgr = append(sgr, code)
		}
	}
	addIf(s.Bold, "1")
	addIf(s.Dim, "2")
	addIf(s.Italic, "3")
	addIf(s.Underlined, "4")
	addIf(s.Blink, "5")
	addIf(s.Inverse, "7")
	if fg := s.Fg.fgSGR(); fg != "" {
		sgr = append(sgr, fg)
	}
	if bg := s.Bg.bgSGR(); bg != "" {
		sgr = append(sgr, bg)
	}

	return strings.Join(sgr, ";")
}

// MergeFromOptions merges all recognized values from a map to the current
// Style. Unrecognized keys and badly typed values are errors.
func (s *Style) MergeFromOptions(options map[string]interface{}) error {
	assignColor := func(val interface{}, colorField *Color) string {
		if name, ok := val.(string); ok {
			if color, ok := ParseColor(name); ok {
				*colorField = color
				return ""
			}
		}
		return "valid color string"
	}
	assignBool := func(val interface{}, attrField *bool) string {
		if b, ok := val.(bool); ok {
			*attrField = b
		} else {
			return "bool value"
		}
		return ""
	}

	for k, v := range options {
		var need string

		switch k {
		case "fg-color":
			need = assignColor(v, &s.Fg)
		case "bg-color":
			need = assignColor(v, &s.Bg)
		case "bold":
			need = assignBool(v, &s.Bold)
		case "dim":
			need = assignBool(v, &s.Dim)
		case "italic":
			need = assignBool(v, &s.Italic)
		case "underlined":
			need = assignBool(v, &s.Underlined)
		case "blink":
			need = assignBool(v, &s.Blink)
		case "inverse":
			need = assignBool(v, &s.Inverse)

		default:
			return fmt.Errorf("unrecognized option '%s'", k)
		}

		if need != "" {
			return fmt.Errorf("value for option '%s' must be a %s", k, need)
		}
	}

	return nil
}
