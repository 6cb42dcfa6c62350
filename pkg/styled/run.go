package styled

import "fmt"

// Run is a contiguous span of text sharing one Style.
type Run struct {
	Style
	Text string
}

// Clone returns a copy of the Run.
func (r *Run) Clone() *Run {
	value := *r
	return &value
}

// VTString renders the run using VT-style escape sequences. Any existing SGR
// state is cleared first.
func (r *Run) VTString() string {
	sgr := r.SGR()
	if sgr == "" {
		return "\033[m" + r.Text
	}
	return fmt.Sprintf("\033[;%sm%s\033[m", sgr, r.Text)
}
